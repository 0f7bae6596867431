package terminal

import (
	"io"
	"sync"
)

// SyncWriter serializes writes to the terminal. The input loop and the game
// loop both print, so everything that shares the output must go through one.
type SyncWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func NewSyncWriter(out io.Writer) *SyncWriter {
	return &SyncWriter{out: out}
}

func (that *SyncWriter) Write(p []byte) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.out.Write(p)
}
