// Package audio maps game events to sound cues and hands them to a Player.
package audio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/memory-match/internal/entity"
)

var ErrUnknownMode = errors.New("unknown sound mode")

type Cue int

const (
	CueInstruction Cue = iota
	CueSelect
	CueMatch
	CueWrong
	CueFanfare
)

func (that Cue) String() string {
	switch that {
	case CueInstruction:
		return "instruction"
	case CueSelect:
		return "select"
	case CueMatch:
		return "match"
	case CueWrong:
		return "wrong"
	case CueFanfare:
		return "fanfare"
	default:
		return fmt.Sprintf("Cue(%d)", int(that))
	}
}

type Player interface {
	Play(cue Cue) error
}

// CueFor returns the cue played for event, and false when the event has none.
func CueFor(event entity.Event) (Cue, bool) {
	switch event.Type {
	case entity.EventGameStarted:
		return CueInstruction, true
	case entity.EventTileSelected:
		return CueSelect, true
	case entity.EventTilesMatched:
		return CueMatch, true
	case entity.EventTilesMismatched:
		return CueWrong, true
	case entity.EventGameCompleted:
		return CueFanfare, true
	default:
		return 0, false
	}
}

// Dispatcher listens to game events and plays the matching cue. Playback
// failures are logged and never reach the game.
type Dispatcher struct {
	logger *slog.Logger
	player Player
}

func NewDispatcher(logger *slog.Logger, player Player) *Dispatcher {
	return &Dispatcher{
		logger: logger.With("component", "audio"),
		player: player,
	}
}

func (that *Dispatcher) Notify(event entity.Event) {
	cue, ok := CueFor(event)
	if !ok {
		return
	}

	if err := that.player.Play(cue); err != nil {
		that.logger.Warn("failed to play cue", "cue", cue.String(), "error", err)
	}
}

// Bell rings the terminal bell for every cue. The fanfare rings three times.
type Bell struct {
	out io.Writer
}

func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

func (that *Bell) Play(cue Cue) error {
	rings := 1
	if cue == CueFanfare {
		rings = 3
	}

	if _, err := io.WriteString(that.out, strings.Repeat("\a", rings)); err != nil {
		return fmt.Errorf("failed to ring bell: %w", err)
	}

	return nil
}

// LogPlayer records cues in the log instead of playing them.
type LogPlayer struct {
	logger *slog.Logger
}

func NewLogPlayer(logger *slog.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

func (that *LogPlayer) Play(cue Cue) error {
	that.logger.Debug("cue", "name", cue.String())
	return nil
}

type Mute struct{}

func (Mute) Play(Cue) error { return nil }

// NewPlayer builds the player for a configured sound mode: "bell", "log" or "off".
func NewPlayer(mode string, out io.Writer, logger *slog.Logger) (Player, error) {
	switch mode {
	case "bell", "":
		return NewBell(out), nil
	case "log":
		return NewLogPlayer(logger), nil
	case "off":
		return Mute{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
