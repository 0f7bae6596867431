package timer

import (
	"context"
	"time"

	"github.com/rocketscienceinc/memory-match/internal/apperror"
)

// Looper runs posted closures one at a time on a single goroutine. Everything
// that touches game state is executed here, including delayed callbacks.
type Looper struct {
	tasks chan func()
	done  chan struct{}
}

func NewLooper() *Looper {
	return &Looper{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
}

// Run drains posted closures until ctx is canceled. It must be called once.
func (that *Looper) Run(ctx context.Context) {
	defer close(that.done)

	for {
		select {
		case task := <-that.tasks:
			task()
		case <-ctx.Done():
			return
		}
	}
}

// Done is closed once Run has returned.
func (that *Looper) Done() <-chan struct{} {
	return that.done
}

// Post queues f for execution. It blocks until the loop accepts f.
func (that *Looper) Post(f func()) error {
	select {
	case that.tasks <- f:
		return nil
	case <-that.done:
		return apperror.ErrLoopStopped
	}
}

// Do runs f on the loop and waits until it has returned.
func (that *Looper) Do(ctx context.Context, f func()) error {
	finished := make(chan struct{})

	task := func() {
		defer close(finished)
		f()
	}

	select {
	case that.tasks <- task:
	case <-that.done:
		return apperror.ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-that.done:
		return apperror.ErrLoopStopped
	}
}

// AfterFunc posts f to the loop once d has elapsed.
func (that *Looper) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, func() {
		// the loop is gone, nothing left to update
		_ = that.Post(f)
	})
}
