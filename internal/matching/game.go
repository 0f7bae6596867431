// Package matching implements the rules of the pair-finding game: tile
// selection, deferred match evaluation, scoring and completion.
//
// A Game is not safe for concurrent use. All calls, including callbacks handed
// to the Scheduler, must run on one sequential execution context.
package matching

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/rocketscienceinc/memory-match/internal/entity"
	"github.com/rocketscienceinc/memory-match/internal/pairs"
	"github.com/rocketscienceinc/memory-match/internal/timer"
)

// RevealDelay is how long two revealed tiles stay visible before they are evaluated.
const RevealDelay = 1000 * time.Millisecond

// Listener receives every event emitted by a Game.
type Listener interface {
	Notify(event entity.Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(event entity.Event)

func (that ListenerFunc) Notify(event entity.Event) {
	that(event)
}

type Option func(*Game)

// WithRevealDelay overrides RevealDelay.
func WithRevealDelay(delay time.Duration) Option {
	return func(game *Game) {
		game.revealDelay = delay
	}
}

type Game struct {
	clock       timer.Clock
	scheduler   timer.Scheduler
	rng         *rand.Rand
	revealDelay time.Duration

	tiles            []entity.Tile
	pending          []int
	pairCount        int
	matchedPairCount int
	phase            entity.Phase
	startedAt        time.Time
	finishedAt       time.Time

	// generation is bumped on every start so a stale evaluation can tell it is stale.
	generation uint64
	evaluation timer.Task

	listeners    map[int]Listener
	listenerSeq  int
	listenerKeys []int
}

func NewGame(clock timer.Clock, scheduler timer.Scheduler, rng *rand.Rand, opts ...Option) *Game {
	game := &Game{
		clock:       clock,
		scheduler:   scheduler,
		rng:         rng,
		revealDelay: RevealDelay,
		phase:       entity.PhaseIdle,
		tiles:       []entity.Tile{},
		listeners:   make(map[int]Listener),
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

// Subscribe registers l for all future events and returns a function that removes it.
// Listeners are notified in subscription order.
func (that *Game) Subscribe(l Listener) func() {
	that.listenerSeq++
	key := that.listenerSeq

	that.listeners[key] = l
	that.listenerKeys = append(that.listenerKeys, key)

	return func() {
		delete(that.listeners, key)
		that.listenerKeys = slices.DeleteFunc(that.listenerKeys, func(k int) bool { return k == key })
	}
}

// Start discards the current session and deals a fresh board. It is valid from any phase.
// A non-positive pairCount starts and immediately completes an empty game.
func (that *Game) Start(pairCount int) {
	if pairCount < 0 {
		pairCount = 0
	}

	that.reset()

	that.pairCount = pairCount
	that.tiles = make([]entity.Tile, 0, 2*pairCount)
	for _, value := range pairs.GenerateShuffled(that.rng, pairCount) {
		that.tiles = append(that.tiles, entity.Tile{Value: value, State: entity.TileHidden})
	}
	that.startedAt = that.clock.Now()
	that.phase = entity.PhaseInProgress

	that.emit(entity.GameStarted(that.generation))

	if that.pairCount == 0 {
		that.complete()
	}
}

// SelectTile reveals the tile at index. It reports whether the selection was
// accepted; rejected selections leave the game untouched.
func (that *Game) SelectTile(index int) bool {
	if !that.canSelect(index) {
		return false
	}

	that.tiles[index].State = entity.TileRevealed
	that.pending = append(that.pending, index)

	that.emit(entity.TileSelected(that.generation, index, that.tiles[index].Value))

	if len(that.pending) == 2 {
		generation := that.generation
		that.evaluation = that.scheduler.AfterFunc(that.revealDelay, func() {
			that.evaluatePendingSelection(generation)
		})
	}

	return true
}

func (that *Game) canSelect(index int) bool {
	switch {
	case that.phase != entity.PhaseInProgress:
		return false
	case len(that.pending) >= 2:
		return false
	case index < 0 || index >= len(that.tiles):
		return false
	default:
		return that.tiles[index].IsHidden()
	}
}

// evaluatePendingSelection resolves the two revealed tiles. It is a no-op when
// the callback belongs to an earlier generation.
func (that *Game) evaluatePendingSelection(generation uint64) {
	if generation != that.generation || len(that.pending) != 2 {
		return
	}

	that.evaluation = nil

	first, second := that.pending[0], that.pending[1]
	that.pending = that.pending[:0]

	if that.tiles[first].Value == that.tiles[second].Value {
		that.tiles[first].State = entity.TileMatched
		that.tiles[second].State = entity.TileMatched
		that.matchedPairCount++

		that.emit(entity.TilesMatched(that.generation, first, second, that.tiles[first].Value))

		if that.matchedPairCount == that.pairCount {
			that.complete()
		}

		return
	}

	that.tiles[first].State = entity.TileHidden
	that.tiles[second].State = entity.TileHidden

	that.emit(entity.TilesMismatched(that.generation, first, second))
}

func (that *Game) complete() {
	that.finishedAt = that.clock.Now()
	that.phase = entity.PhaseCompleted
	that.emit(entity.GameCompleted(that.generation, that.ElapsedSeconds()))
}

// reset clears every mutable field and invalidates pending evaluations.
func (that *Game) reset() {
	that.generation++

	if that.evaluation != nil {
		that.evaluation.Stop()
		that.evaluation = nil
	}

	that.pending = nil
	that.matchedPairCount = 0
	that.pairCount = 0
	that.tiles = []entity.Tile{}
}

// ElapsedSeconds is the play time of the session: zero when idle, frozen once completed.
func (that *Game) ElapsedSeconds() float64 {
	switch that.phase {
	case entity.PhaseIdle:
		return 0
	case entity.PhaseCompleted:
		return timer.ElapsedSeconds(that.startedAt, that.finishedAt)
	default:
		return timer.ElapsedSeconds(that.startedAt, that.clock.Now())
	}
}

func (that *Game) Generation() uint64 {
	return that.generation
}

func (that *Game) Phase() entity.Phase {
	return that.phase
}

func (that *Game) emit(event entity.Event) {
	// a listener may unsubscribe while being notified
	for _, key := range slices.Clone(that.listenerKeys) {
		if l, ok := that.listeners[key]; ok {
			l.Notify(event)
		}
	}
}
