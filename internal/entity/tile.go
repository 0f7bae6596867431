package entity

import "fmt"

// TileState is the face of a single tile.
type TileState int

const (
	TileHidden TileState = iota
	TileRevealed
	TileMatched
)

func (that TileState) String() string {
	switch that {
	case TileHidden:
		return "hidden"
	case TileRevealed:
		return "revealed"
	case TileMatched:
		return "matched"
	default:
		return fmt.Sprintf("TileState(%d)", int(that))
	}
}

// Phase is the top-level lifecycle of a game session.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseInProgress Phase = "in_progress"
	PhaseCompleted  Phase = "completed"
)

type Tile struct {
	Value int       `json:"value"`
	State TileState `json:"state"`
}

func (that Tile) IsHidden() bool {
	return that.State == TileHidden
}

func (that Tile) IsMatched() bool {
	return that.State == TileMatched
}
