package cli

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/memory-match/internal/apperror"
	"github.com/rocketscienceinc/memory-match/internal/pairs"
)

func newShuffleCommand() *cobra.Command {
	var (
		pairCount int
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Print a shuffled pair sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pairCount < 0 {
				return fmt.Errorf("%w: %d", apperror.ErrInvalidPairs, pairCount)
			}

			if seed == 0 {
				seed = rand.Uint64()
			}

			values := pairs.GenerateShuffled(pairs.NewRand(seed), pairCount)

			fields := make([]string, 0, len(values))
			for _, value := range values {
				fields = append(fields, strconv.Itoa(value))
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fields, " "))
			return err
		},
	}

	cmd.Flags().IntVarP(&pairCount, "pairs", "p", pairs.DefaultPairCount, "number of pairs")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed, random when 0")

	return cmd
}
