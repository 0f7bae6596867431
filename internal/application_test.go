package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/memory-match/internal/apperror"
	"github.com/rocketscienceinc/memory-match/internal/config"
	"github.com/rocketscienceinc/memory-match/internal/entity"
	"github.com/rocketscienceinc/memory-match/internal/matching"
	"github.com/rocketscienceinc/memory-match/testing/suite"
)

func TestNewSessionRepository(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	t.Run("Memory driver", func(t *testing.T) {
		// Given: the default storage driver
		conf := &config.Config{Storage: config.Storage{Driver: config.StorageMemory}}

		// When: building the repository
		sessionRepo, err := NewSessionRepository(ctx, logger, conf)

		// Then: an empty in-memory store is returned
		require.NoError(t, err)
		_, err = sessionRepo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Redis driver without host", func(t *testing.T) {
		// Given: redis selected but no host configured
		conf := &config.Config{Storage: config.Storage{Driver: config.StorageRedis}}

		// When: building the repository
		_, err := NewSessionRepository(ctx, logger, conf)

		// Then: ErrAddrNotFound is returned
		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}

func TestNewSessionRepository_Redis(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("Redis driver connects to the configured address", func(t *testing.T) {
		// Given: redis selected with the container's address
		host, port, err := net.SplitHostPort(s.Addr)
		require.NoError(t, err)

		conf := &config.Config{Storage: config.Storage{
			Driver: config.StorageRedis,
			Redis:  config.Redis{Host: host, Port: port, TTL: time.Minute},
		}}

		// When: building the repository and saving through it
		sessionRepo, err := NewSessionRepository(ctx, slog.New(slog.NewJSONHandler(io.Discard, nil)), conf)
		require.NoError(t, err)
		require.NoError(t, sessionRepo.Save(ctx, &entity.SessionRecord{ID: "abc", Phase: entity.PhaseIdle}))

		// Then: the record lands in the container
		exists, err := s.Storage.Exists(ctx, "session:abc").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})
}

func TestRunApp(t *testing.T) {
	t.Run("Bell and board share the output while a pair is evaluated", func(t *testing.T) {
		// Given: bell sound and an input stream that keeps typing during the reveal delay
		conf := &config.Config{
			Language: "en",
			Sound:    config.Sound{Mode: "bell"},
			Storage:  config.Storage{Driver: config.StorageMemory},
		}

		reader, writer := io.Pipe()
		go func() {
			defer writer.Close()

			if _, err := io.WriteString(writer, "s\n1\n2\n"); err != nil {
				return
			}

			deadline := time.Now().Add(matching.RevealDelay + 300*time.Millisecond)
			for time.Now().Before(deadline) {
				if _, err := io.WriteString(writer, "zz\n"); err != nil {
					return
				}
				time.Sleep(10 * time.Millisecond)
			}

			_, _ = io.WriteString(writer, "q\n")
		}()

		var out bytes.Buffer

		// When: running the app
		err := RunApp(slog.New(slog.NewJSONHandler(io.Discard, nil)), conf, Options{Seed: 5, In: reader, Out: &out})
		_ = reader.Close()

		// Then: the start, both selections and the evaluation rang the bell next to the board text
		require.NoError(t, err)
		assert.GreaterOrEqual(t, strings.Count(out.String(), "\a"), 4)
		assert.Contains(t, out.String(), "unknown command: zz")
		assert.Contains(t, out.String(), "Pair Match")
	})
}
