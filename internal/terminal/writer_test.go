package terminal

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncWriter_Write(t *testing.T) {
	t.Run("Concurrent writers never interleave a write", func(t *testing.T) {
		// Given: a shared buffer behind a SyncWriter
		var buf bytes.Buffer
		writer := NewSyncWriter(&buf)

		// When: two goroutines write at the same time
		var wg sync.WaitGroup
		for _, line := range []string{"aaaa\n", "bbbb\n"} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					_, _ = writer.Write([]byte(line))
				}
			}()
		}
		wg.Wait()

		// Then: every line is intact
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.Len(t, lines, 200)
		for _, line := range lines {
			assert.Contains(t, []string{"aaaa", "bbbb"}, line)
		}
	})
}
