package timer

import (
	"sort"
	"time"
)

// Fake is a manually driven Clock and Scheduler. Callbacks fire synchronously
// inside Advance, in due order.
type Fake struct {
	now   time.Time
	seq   int
	tasks []*fakeTask
}

type fakeTask struct {
	fake    *Fake
	due     time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (that *Fake) Now() time.Time {
	return that.now
}

func (that *Fake) AfterFunc(d time.Duration, f func()) Task {
	that.seq++

	task := &fakeTask{fake: that, due: that.now.Add(d), seq: that.seq, f: f}
	that.tasks = append(that.tasks, task)

	return task
}

// Advance moves the clock forward by d and fires every task that became due.
func (that *Fake) Advance(d time.Duration) {
	target := that.now.Add(d)

	for {
		task := that.nextDue(target)
		if task == nil {
			break
		}

		that.now = task.due
		task.fired = true
		task.f()
	}

	that.now = target
}

// Set moves the clock without firing anything, e.g. to simulate a backwards wall-clock jump.
func (that *Fake) Set(now time.Time) {
	that.now = now
}

// Pending returns the number of tasks waiting to fire.
func (that *Fake) Pending() int {
	count := 0
	for _, task := range that.tasks {
		if !task.stopped && !task.fired {
			count++
		}
	}

	return count
}

func (that *Fake) nextDue(target time.Time) *fakeTask {
	live := that.tasks[:0]
	for _, task := range that.tasks {
		if !task.stopped && !task.fired {
			live = append(live, task)
		}
	}
	that.tasks = live

	sort.SliceStable(that.tasks, func(i, j int) bool {
		if that.tasks[i].due.Equal(that.tasks[j].due) {
			return that.tasks[i].seq < that.tasks[j].seq
		}
		return that.tasks[i].due.Before(that.tasks[j].due)
	})

	if len(that.tasks) == 0 || that.tasks[0].due.After(target) {
		return nil
	}

	return that.tasks[0]
}

func (that *fakeTask) Stop() bool {
	if that.stopped || that.fired {
		return false
	}

	that.stopped = true

	return true
}
