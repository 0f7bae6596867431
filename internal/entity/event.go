package entity

type EventType string

const (
	EventGameStarted     EventType = "game:started"
	EventTileSelected    EventType = "tile:selected"
	EventTilesMatched    EventType = "tiles:matched"
	EventTilesMismatched EventType = "tiles:mismatched"
	EventGameCompleted   EventType = "game:completed"
)

// Event is emitted by the state machine after every accepted transition.
// Index and Other carry tile indices, Value the revealed or matched value.
type Event struct {
	Type           EventType `json:"type"`
	Index          int       `json:"index"`
	Other          int       `json:"other"`
	Value          int       `json:"value,omitempty"`
	ElapsedSeconds float64   `json:"elapsed_seconds,omitempty"`
	Generation     uint64    `json:"generation"`
}

func GameStarted(generation uint64) Event {
	return Event{Type: EventGameStarted, Generation: generation}
}

func TileSelected(generation uint64, index, value int) Event {
	return Event{Type: EventTileSelected, Index: index, Value: value, Generation: generation}
}

func TilesMatched(generation uint64, i, j, value int) Event {
	return Event{Type: EventTilesMatched, Index: i, Other: j, Value: value, Generation: generation}
}

func TilesMismatched(generation uint64, i, j int) Event {
	return Event{Type: EventTilesMismatched, Index: i, Other: j, Generation: generation}
}

func GameCompleted(generation uint64, elapsedSeconds float64) Event {
	return Event{Type: EventGameCompleted, ElapsedSeconds: elapsedSeconds, Generation: generation}
}
