package matching

import (
	"fmt"
	"slices"
	"time"

	"github.com/rocketscienceinc/memory-match/internal/apperror"
	"github.com/rocketscienceinc/memory-match/internal/entity"
)

// Snapshot returns a read-only view of the session. Hidden tiles do not expose their value.
func (that *Game) Snapshot() entity.Snapshot {
	tiles := make([]entity.TileView, len(that.tiles))
	for i, tile := range that.tiles {
		view := entity.TileView{Index: i, State: tile.State}
		if !tile.IsHidden() {
			view.Value = tile.Value
		}
		tiles[i] = view
	}

	return entity.Snapshot{
		Phase:            that.phase,
		PairCount:        that.pairCount,
		MatchedPairCount: that.matchedPairCount,
		Pending:          slices.Clone(that.pending),
		Tiles:            tiles,
	}
}

// Record captures the full session, hidden values included.
func (that *Game) Record(id string) *entity.SessionRecord {
	return &entity.SessionRecord{
		ID:               id,
		Phase:            that.phase,
		PairCount:        that.pairCount,
		MatchedPairCount: that.matchedPairCount,
		Tiles:            slices.Clone(that.tiles),
		Pending:          slices.Clone(that.pending),
		ElapsedSeconds:   that.ElapsedSeconds(),
	}
}

// ValidateRecord reports whether record describes a board the game can finish:
// 2*PairCount tiles, every value in 1..PairCount dealt exactly twice, and
// both tiles of a pair either matched or not.
func ValidateRecord(record *entity.SessionRecord) error {
	if record.PairCount < 0 {
		return fmt.Errorf("%w: negative pair count %d", apperror.ErrInvalidSession, record.PairCount)
	}

	if len(record.Tiles) != 2*record.PairCount {
		return fmt.Errorf("%w: %d tiles for %d pairs", apperror.ErrInvalidSession, len(record.Tiles), record.PairCount)
	}

	dealt := make(map[int]int, record.PairCount)
	matched := make(map[int]int, record.PairCount)
	for _, tile := range record.Tiles {
		if tile.Value < 1 || tile.Value > record.PairCount {
			return fmt.Errorf("%w: tile value %d out of range", apperror.ErrInvalidSession, tile.Value)
		}

		dealt[tile.Value]++
		if tile.IsMatched() {
			matched[tile.Value]++
		}
	}

	for value := 1; value <= record.PairCount; value++ {
		if dealt[value] != 2 {
			return fmt.Errorf("%w: value %d dealt %d times", apperror.ErrInvalidSession, value, dealt[value])
		}

		if matched[value] == 1 {
			return fmt.Errorf("%w: value %d matched only once", apperror.ErrInvalidSession, value)
		}
	}

	return nil
}

// Restore replaces the session with record, as a new generation. Tiles that
// were revealed but not yet evaluated are turned face down again, and the
// clock resumes from the recorded elapsed time.
func (that *Game) Restore(record *entity.SessionRecord) {
	that.reset()

	that.pairCount = record.PairCount
	that.tiles = make([]entity.Tile, len(record.Tiles))
	for i, tile := range record.Tiles {
		if tile.State == entity.TileRevealed {
			tile.State = entity.TileHidden
		}
		that.tiles[i] = tile
	}

	that.matchedPairCount = 0
	for _, tile := range that.tiles {
		if tile.IsMatched() {
			that.matchedPairCount++
		}
	}
	that.matchedPairCount /= 2

	now := that.clock.Now()
	that.startedAt = now.Add(-time.Duration(record.ElapsedSeconds * float64(time.Second)))

	that.phase = entity.PhaseInProgress
	if record.Phase == entity.PhaseIdle {
		that.phase = entity.PhaseIdle
	}

	if that.phase == entity.PhaseInProgress && that.matchedPairCount == that.pairCount {
		that.finishedAt = now
		that.phase = entity.PhaseCompleted
	}
}
