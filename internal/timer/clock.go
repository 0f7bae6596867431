// Package timer provides the clock, the one-shot scheduler and the sequential
// execution loop the game runs on.
package timer

import "time"

// Clock returns the current instant. Values returned by SystemClock carry
// Go's monotonic reading, so differences between them are immune to wall-clock
// adjustments.
type Clock interface {
	Now() time.Time
}

// Task is a scheduled one-shot callback.
type Task interface {
	// Stop cancels the task. It returns false if the task already fired or was stopped.
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ElapsedSeconds returns end-start in seconds, never negative.
func ElapsedSeconds(start, end time.Time) float64 {
	elapsed := end.Sub(start)
	if elapsed < 0 {
		return 0
	}

	return elapsed.Seconds()
}
