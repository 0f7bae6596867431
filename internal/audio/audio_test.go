package audio

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/memory-match/internal/entity"
)

var errSpeakerGone = errors.New("speaker gone")

type mockPlayer struct {
	mock.Mock
}

func (that *mockPlayer) Play(cue Cue) error {
	args := that.Called(cue)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestDispatcher_Notify(t *testing.T) {
	cases := []struct {
		event entity.Event
		cue   Cue
	}{
		{entity.GameStarted(1), CueInstruction},
		{entity.TileSelected(1, 0, 3), CueSelect},
		{entity.TilesMatched(1, 0, 5, 3), CueMatch},
		{entity.TilesMismatched(1, 1, 2), CueWrong},
		{entity.GameCompleted(1, 12.5), CueFanfare},
	}

	for _, tc := range cases {
		t.Run(string(tc.event.Type), func(t *testing.T) {
			// Given: a dispatcher over a mocked player
			player := &mockPlayer{}
			player.On("Play", tc.cue).Return(nil).Once()
			dispatcher := NewDispatcher(discardLogger(), player)

			// When: the event is delivered
			dispatcher.Notify(tc.event)

			// Then: exactly the mapped cue is played
			player.AssertExpectations(t)
		})
	}

	t.Run("Player failures are swallowed", func(t *testing.T) {
		// Given: a player that always fails
		player := &mockPlayer{}
		player.On("Play", mock.Anything).Return(errSpeakerGone)
		var logs bytes.Buffer
		dispatcher := NewDispatcher(slog.New(slog.NewJSONHandler(&logs, nil)), player)

		// When: an event is delivered
		assert.NotPanics(t, func() { dispatcher.Notify(entity.TileSelected(1, 0, 1)) })

		// Then: the failure is logged
		assert.Contains(t, logs.String(), "failed to play cue")
		assert.Contains(t, logs.String(), "speaker gone")
	})

	t.Run("Unknown events play nothing", func(t *testing.T) {
		// Given: a player with no expectations
		player := &mockPlayer{}
		dispatcher := NewDispatcher(discardLogger(), player)

		// When: an unknown event arrives
		dispatcher.Notify(entity.Event{Type: "tile:flagged"})

		// Then: the player is never called
		player.AssertNotCalled(t, "Play", mock.Anything)
	})
}

func TestBell_Play(t *testing.T) {
	t.Run("Rings once per cue and three times for the fanfare", func(t *testing.T) {
		// Given: a bell writing to a buffer
		var out bytes.Buffer
		bell := NewBell(&out)

		// When: playing a select cue and the fanfare
		require.NoError(t, bell.Play(CueSelect))
		require.NoError(t, bell.Play(CueFanfare))

		// Then: four BEL characters were written
		assert.Equal(t, "\a\a\a\a", out.String())
	})
}

func TestNewPlayer(t *testing.T) {
	t.Run("Builds a player per mode", func(t *testing.T) {
		bell, err := NewPlayer("bell", io.Discard, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &Bell{}, bell)

		logPlayer, err := NewPlayer("log", io.Discard, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &LogPlayer{}, logPlayer)

		mute, err := NewPlayer("off", io.Discard, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, Mute{}, mute)
	})

	t.Run("Rejects unknown modes", func(t *testing.T) {
		_, err := NewPlayer("surround", io.Discard, discardLogger())
		require.ErrorIs(t, err, ErrUnknownMode)
	})
}
