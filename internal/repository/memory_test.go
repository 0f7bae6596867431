package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/memory-match/internal/apperror"
	"github.com/rocketscienceinc/memory-match/internal/entity"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Save then GetByID returns an equal record", func(t *testing.T) {
		// Given: an empty memory repository
		sessionRepo := NewMemorySessionRepository()
		record := sampleRecord("abc")

		// When: saving and reading back
		require.NoError(t, sessionRepo.Save(ctx, record))
		retrieved, err := sessionRepo.GetByID(ctx, "abc")

		// Then: the records are equal
		require.NoError(t, err)
		assert.Equal(t, record, retrieved)
	})

	t.Run("Stored records do not alias the caller's slices", func(t *testing.T) {
		// Given: a saved record
		sessionRepo := NewMemorySessionRepository()
		record := sampleRecord("abc")
		require.NoError(t, sessionRepo.Save(ctx, record))

		// When: the caller mutates its copy and the returned copy
		record.Tiles[0].State = entity.TileHidden
		retrieved, err := sessionRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		retrieved.Pending[0] = 3

		// Then: the stored record is unchanged
		again, err := sessionRepo.GetByID(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, entity.TileMatched, again.Tiles[0].State)
		assert.Equal(t, []int{1}, again.Pending)
	})

	t.Run("Missing records return ErrSessionNotFound", func(t *testing.T) {
		// Given: an empty memory repository
		sessionRepo := NewMemorySessionRepository()

		// When: reading and deleting an unknown id
		_, getErr := sessionRepo.GetByID(ctx, "missing")
		deleteErr := sessionRepo.DeleteByID(ctx, "missing")

		// Then: both report not found
		require.ErrorIs(t, getErr, apperror.ErrSessionNotFound)
		require.ErrorIs(t, deleteErr, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID removes the record", func(t *testing.T) {
		// Given: a saved record
		sessionRepo := NewMemorySessionRepository()
		require.NoError(t, sessionRepo.Save(ctx, sampleRecord("abc")))

		// When: deleting it
		require.NoError(t, sessionRepo.DeleteByID(ctx, "abc"))

		// Then: it can no longer be read
		_, err := sessionRepo.GetByID(ctx, "abc")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
