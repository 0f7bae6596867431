package entity

// TileView is the read-only projection of a tile. Value is zero while the tile is hidden.
type TileView struct {
	Index int       `json:"index"`
	State TileState `json:"state"`
	Value int       `json:"value,omitempty"`
}

type Snapshot struct {
	SessionID        string     `json:"session_id,omitempty"`
	Phase            Phase      `json:"phase"`
	PairCount        int        `json:"pair_count"`
	MatchedPairCount int        `json:"matched_pair_count"`
	Pending          []int      `json:"pending,omitempty"`
	Tiles            []TileView `json:"tiles"`
}

func (that Snapshot) IsCompleted() bool {
	return that.Phase == PhaseCompleted
}

func (that Snapshot) IsInProgress() bool {
	return that.Phase == PhaseInProgress
}

// SessionRecord is the full state of a session, hidden values included, used to save and resume a game.
type SessionRecord struct {
	ID               string  `json:"id"`
	Phase            Phase   `json:"phase"`
	PairCount        int     `json:"pair_count"`
	MatchedPairCount int     `json:"matched_pair_count"`
	Tiles            []Tile  `json:"tiles"`
	Pending          []int   `json:"pending,omitempty"`
	ElapsedSeconds   float64 `json:"elapsed_seconds"`
}
