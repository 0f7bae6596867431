// Package pairs builds the shuffled tile values of a board.
package pairs

import "math/rand/v2"

// DefaultPairCount is the number of distinct pairs on a standard board.
const DefaultPairCount = 4

// GenerateShuffled returns 2*pairCount values where each of 1..pairCount
// appears exactly twice, in a uniformly random order drawn from rng.
//
// A non-positive pairCount yields an empty sequence.
func GenerateShuffled(rng *rand.Rand, pairCount int) []int {
	if pairCount <= 0 {
		return []int{}
	}

	values := make([]int, 0, 2*pairCount)
	for v := 1; v <= pairCount; v++ {
		values = append(values, v, v)
	}

	// Fisher-Yates
	for i := len(values) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		values[i], values[j] = values[j], values[i]
	}

	return values
}

// NewRand returns a generator seeded from seed. Identical seeds produce identical boards.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
