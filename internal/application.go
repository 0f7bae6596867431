package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tebeka/atexit"

	"github.com/rocketscienceinc/memory-match/internal/audio"
	"github.com/rocketscienceinc/memory-match/internal/config"
	"github.com/rocketscienceinc/memory-match/internal/matching"
	"github.com/rocketscienceinc/memory-match/internal/pairs"
	"github.com/rocketscienceinc/memory-match/internal/repository"
	"github.com/rocketscienceinc/memory-match/internal/repository/storage"
	"github.com/rocketscienceinc/memory-match/internal/terminal"
	"github.com/rocketscienceinc/memory-match/internal/timer"
	"github.com/rocketscienceinc/memory-match/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// Options describe a single interactive session.
type Options struct {
	ResumeID string
	Seed     uint64
	In       io.Reader
	Out      io.Writer
}

// RunApp - runs the game in the terminal until the player quits or the process is signaled.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	sessionRepo, err := NewSessionRepository(ctx, logger, conf)
	if err != nil {
		return err
	}

	looper := timer.NewLooper()
	go looper.Run(ctx)
	defer func() {
		cancel()
		<-looper.Done()
	}()

	// the bell rings from the game loop while the terminal prints from the input loop
	out := terminal.NewSyncWriter(opts.Out)

	player, err := audio.NewPlayer(conf.Sound.Mode, out, logger)
	if err != nil {
		return fmt.Errorf("could not create sound player: %w", err)
	}

	game := matching.NewGame(timer.SystemClock{}, looper, pairs.NewRand(opts.Seed))
	if err = looper.Do(ctx, func() {
		game.Subscribe(audio.NewDispatcher(logger, player))
	}); err != nil {
		return fmt.Errorf("could not subscribe sound player: %w", err)
	}

	gameManager, err := usecase.NewGameManager(ctx, logger, sessionRepo, looper, game, pairs.DefaultPairCount)
	if err != nil {
		return err
	}

	ui := terminal.New(out, terminal.NewPrinter(conf.Language), gameManager)

	if err = gameManager.Subscribe(ctx, ui.OnEvent); err != nil {
		return err
	}

	if opts.ResumeID != "" {
		if _, err = gameManager.Resume(ctx, opts.ResumeID); err != nil {
			return fmt.Errorf("could not resume session: %w", err)
		}
	}

	// the input loop blocks on reads, so it cannot observe ctx by itself
	uiErrCh := make(chan error, 1)
	go func() {
		uiErrCh <- ui.Run(ctx, opts.In)
	}()

	select {
	case err = <-uiErrCh:
		if err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}
		log.Info("Player quit, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// NewSessionRepository builds the session store selected by the config. The
// redis connection is closed when the process exits through atexit.
func NewSessionRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.SessionRepository, error) {
	if conf.Storage.Driver != config.StorageRedis {
		return repository.NewMemorySessionRepository(), nil
	}

	if conf.Storage.Redis.Host == "" {
		return nil, ErrAddrNotFound
	}

	redisAddrString := conf.Storage.Redis.GetRedisAddr()

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	atexit.Register(func() {
		if err := redisStorage.Close(); err != nil {
			logger.Error("could not close redis storage", "error", err)
		}
	})

	return repository.NewSessionRepository(redisStorage.Connection, conf.Storage.Redis.TTL), nil
}
