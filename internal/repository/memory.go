package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/rocketscienceinc/memory-match/internal/apperror"
	"github.com/rocketscienceinc/memory-match/internal/entity"
)

// memorySession keeps sessions in process memory; they are gone on exit.
type memorySession struct {
	mu       sync.RWMutex
	sessions map[string]entity.SessionRecord
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySession{sessions: make(map[string]entity.SessionRecord)}
}

func (that *memorySession) Save(_ context.Context, record *entity.SessionRecord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.sessions[record.ID] = cloneRecord(*record)

	return nil
}

func (that *memorySession) GetByID(_ context.Context, id string) (*entity.SessionRecord, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	record, ok := that.sessions[id]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	record = cloneRecord(record)

	return &record, nil
}

func (that *memorySession) DeleteByID(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.sessions[id]; !ok {
		return apperror.ErrSessionNotFound
	}

	delete(that.sessions, id)

	return nil
}

func cloneRecord(record entity.SessionRecord) entity.SessionRecord {
	record.Tiles = slices.Clone(record.Tiles)
	record.Pending = slices.Clone(record.Pending)

	return record
}
