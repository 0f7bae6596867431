package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/rocketscienceinc/memory-match/internal/apperror"
	"github.com/rocketscienceinc/memory-match/internal/entity"
	"github.com/rocketscienceinc/memory-match/internal/matching"
)

const storageTimeout = 5 * time.Second

type sessionRepo interface {
	Save(ctx context.Context, record *entity.SessionRecord) error
	GetByID(ctx context.Context, id string) (*entity.SessionRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

// executor runs closures on the execution context that owns the game.
type executor interface {
	Do(ctx context.Context, f func()) error
}

// Listener is called on the game loop after every event, with the state
// right after the event. It must not call back into the GameManager.
type Listener func(event entity.Event, snapshot entity.Snapshot)

// GameManager is the single owner of the current game session. Every
// mutation is executed on the loop the game's scheduler posts to.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	loop        executor
	game        *matching.Game
	pairCount   int

	sessionID string
	listeners []Listener
}

// NewGameManager subscribes the manager to game on the loop that owns it.
func NewGameManager(
	ctx context.Context,
	logger *slog.Logger,
	sessionRepo sessionRepo,
	loop executor,
	game *matching.Game,
	pairCount int,
) (*GameManager, error) {
	manager := &GameManager{
		logger:      logger.With("component", "game-manager"),
		sessionRepo: sessionRepo,
		loop:        loop,
		game:        game,
		pairCount:   pairCount,
	}

	if err := loop.Do(ctx, func() {
		game.Subscribe(matching.ListenerFunc(manager.onEvent))
	}); err != nil {
		return nil, fmt.Errorf("failed to subscribe to game: %w", err)
	}

	return manager, nil
}

// Subscribe registers l for all future events.
func (that *GameManager) Subscribe(ctx context.Context, l Listener) error {
	if err := that.loop.Do(ctx, func() {
		that.listeners = append(that.listeners, l)
	}); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	return nil
}

// Start discards the current session, saved state included, and deals a new board.
func (that *GameManager) Start(ctx context.Context) (entity.Snapshot, error) {
	var snapshot entity.Snapshot

	if err := that.loop.Do(ctx, func() {
		if that.sessionID != "" {
			that.forget(that.sessionID)
		}

		that.sessionID = xid.New().String()
		that.logger.Info("game started", "session", that.sessionID, "pairs", that.pairCount)

		that.game.Start(that.pairCount)
		snapshot = that.snapshot()
	}); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to start game: %w", err)
	}

	return snapshot, nil
}

// SelectTile forwards a player's tap. It reports whether the tap was accepted.
func (that *GameManager) SelectTile(ctx context.Context, index int) (bool, error) {
	var accepted bool

	if err := that.loop.Do(ctx, func() {
		accepted = that.game.SelectTile(index)
	}); err != nil {
		return false, fmt.Errorf("failed to select tile: %w", err)
	}

	return accepted, nil
}

func (that *GameManager) Snapshot(ctx context.Context) (entity.Snapshot, error) {
	var snapshot entity.Snapshot

	if err := that.loop.Do(ctx, func() {
		snapshot = that.snapshot()
	}); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return snapshot, nil
}

// Resume replaces the current session with a saved one. Records that could
// never be completed are rejected with apperror.ErrInvalidSession.
func (that *GameManager) Resume(ctx context.Context, id string) (entity.Snapshot, error) {
	record, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	if err = matching.ValidateRecord(record); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to resume session %s: %w", id, err)
	}

	var snapshot entity.Snapshot

	if err = that.loop.Do(ctx, func() {
		that.sessionID = record.ID
		that.game.Restore(record)
		snapshot = that.snapshot()

		that.logger.Info("game resumed", "session", record.ID, "matched", snapshot.MatchedPairCount)
	}); err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to resume game: %w", err)
	}

	return snapshot, nil
}

// Forget deletes a saved session.
func (that *GameManager) Forget(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to forget session %s: %w", id, err)
	}

	return nil
}

func (that *GameManager) snapshot() entity.Snapshot {
	snapshot := that.game.Snapshot()
	snapshot.SessionID = that.sessionID

	return snapshot
}

// onEvent runs on the loop for every game event.
func (that *GameManager) onEvent(event entity.Event) {
	log := that.logger.With("method", "onEvent", "session", that.sessionID, "event", string(event.Type))

	switch event.Type {
	case entity.EventGameCompleted:
		log.Info("game completed", "elapsed", event.ElapsedSeconds)
		that.forget(that.sessionID)
	default:
		that.save()
	}

	snapshot := that.snapshot()
	for _, l := range that.listeners {
		l(event, snapshot)
	}
}

func (that *GameManager) save() {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	if err := that.sessionRepo.Save(ctx, that.game.Record(that.sessionID)); err != nil {
		that.logger.Error("failed to save session", "session", that.sessionID, "error", err)
	}
}

func (that *GameManager) forget(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	err := that.sessionRepo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		that.logger.Error("failed to delete session", "session", id, "error", err)
	}
}
