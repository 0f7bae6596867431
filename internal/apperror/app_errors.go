package apperror

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrLoopStopped     = errors.New("execution loop is stopped")
	ErrInvalidPairs    = errors.New("invalid pair count")
	ErrInvalidSession  = errors.New("invalid session record")
)
