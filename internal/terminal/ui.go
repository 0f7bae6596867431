// Package terminal is a text presentation of the game: it draws the board,
// reads player commands and reacts to game events. It holds no game rules.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/text/message"

	"github.com/rocketscienceinc/memory-match/internal/entity"
	"github.com/rocketscienceinc/memory-match/internal/pairs"
)

const columns = 4

type gameManager interface {
	Start(ctx context.Context) (entity.Snapshot, error)
	SelectTile(ctx context.Context, index int) (bool, error)
	Snapshot(ctx context.Context) (entity.Snapshot, error)
}

type Option func(*UI)

// WithoutColor disables ANSI colors regardless of the terminal.
func WithoutColor() Option {
	return func(ui *UI) {
		ui.revealed.DisableColor()
		ui.result.DisableColor()
		ui.title.DisableColor()
	}
}

type UI struct {
	mu      sync.Mutex
	out     io.Writer
	printer *message.Printer
	manager gameManager

	title    *color.Color
	revealed *color.Color
	result   *color.Color
}

func New(out io.Writer, printer *message.Printer, manager gameManager, opts ...Option) *UI {
	ui := &UI{
		out:      out,
		printer:  printer,
		manager:  manager,
		title:    color.New(color.Bold),
		revealed: color.New(color.FgYellow, color.Bold),
		result:   color.New(color.FgRed, color.Bold),
	}

	for _, opt := range opts {
		opt(ui)
	}

	return ui
}

// OnEvent redraws after a game event. It is registered as a game manager listener.
func (that *UI) OnEvent(event entity.Event, snapshot entity.Snapshot) {
	that.mu.Lock()
	defer that.mu.Unlock()

	switch event.Type {
	case entity.EventGameStarted:
		that.printer.Fprintf(that.out, "session", snapshot.SessionID)
		fmt.Fprintln(that.out)
		that.drawLocked(snapshot)
	case entity.EventTileSelected, entity.EventTilesMatched, entity.EventTilesMismatched:
		that.drawLocked(snapshot)
	case entity.EventGameCompleted:
		that.drawLocked(snapshot)
		that.result.Fprintln(that.out, that.printer.Sprintf("time.result", event.ElapsedSeconds))
	}
}

// Run reads commands from in until it is exhausted, the player quits or ctx is canceled.
func (that *UI) Run(ctx context.Context, in io.Reader) error {
	snapshot, err := that.manager.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to get snapshot: %w", err)
	}

	that.Draw(snapshot)
	that.help(len(snapshot.Tiles))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		quit, err := that.handle(ctx, strings.TrimSpace(scanner.Text()))
		if err != nil {
			return err
		}

		if quit {
			return nil
		}
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *UI) handle(ctx context.Context, command string) (bool, error) {
	switch strings.ToLower(command) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "s", "start":
		if _, err := that.manager.Start(ctx); err != nil {
			return false, fmt.Errorf("failed to start game: %w", err)
		}
		return false, nil
	case "b", "board":
		snapshot, err := that.manager.Snapshot(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to get snapshot: %w", err)
		}
		that.Draw(snapshot)
		return false, nil
	case "h", "help", "?":
		snapshot, err := that.manager.Snapshot(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to get snapshot: %w", err)
		}
		that.help(len(snapshot.Tiles))
		return false, nil
	}

	number, err := strconv.Atoi(command)
	if err != nil {
		that.mu.Lock()
		that.printer.Fprintf(that.out, "unknown", command)
		fmt.Fprintln(that.out)
		that.mu.Unlock()
		return false, nil
	}

	// tiles are numbered from 1 on screen; illegal taps simply have no effect
	if _, err = that.manager.SelectTile(ctx, number-1); err != nil {
		return false, fmt.Errorf("failed to select tile: %w", err)
	}

	return false, nil
}

// Draw prints the board and the status lines.
func (that *UI) Draw(snapshot entity.Snapshot) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.drawLocked(snapshot)
}

func (that *UI) drawLocked(snapshot entity.Snapshot) {
	that.title.Fprintln(that.out, that.printer.Sprintf("title"))

	for row := 0; row < len(snapshot.Tiles); row += columns {
		end := min(row+columns, len(snapshot.Tiles))

		var labels, faces strings.Builder
		for _, tile := range snapshot.Tiles[row:end] {
			fmt.Fprintf(&labels, " %3d ", tile.Index+1)
			faces.WriteString(" [" + that.face(tile) + "] ")
		}

		fmt.Fprintln(that.out, labels.String())
		fmt.Fprintln(that.out, faces.String())
	}

	if snapshot.IsInProgress() {
		fmt.Fprintln(that.out, that.printer.Sprintf("status.playing")+"  "+that.printer.Sprintf("time.pending"))
		return
	}

	fmt.Fprintln(that.out, "[s] "+that.printer.Sprintf("status.ready"))
}

func (that *UI) face(tile entity.TileView) string {
	switch tile.State {
	case entity.TileRevealed:
		return that.revealed.Sprintf("%d", tile.Value)
	case entity.TileMatched:
		// matched tiles disappear from the board
		return " "
	default:
		return "?"
	}
}

func (that *UI) help(tileCount int) {
	if tileCount == 0 {
		tileCount = 2 * pairs.DefaultPairCount
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.printer.Fprintf(that.out, "help", tileCount)
	fmt.Fprintln(that.out)
}
