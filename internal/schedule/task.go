package schedule

import (
	"sync"
	"sync/atomic"
	"time"
)

// Task is a handle on scheduled work. Cancellation is cooperative: a task
// already running completes its current iteration.
type Task struct {
	timer     *time.Timer
	stop      chan struct{}
	stopOnce  sync.Once
	cancelled atomic.Bool
	started   atomic.Bool
	done      atomic.Bool
}

func newTask() *Task {
	return &Task{stop: make(chan struct{})}
}

func (t *Task) begin() bool {
	if t.cancelled.Load() {
		return false
	}
	t.started.Store(true)
	return true
}

func (t *Task) finish() {
	t.done.Store(true)
}

func (t *Task) Cancel() {
	t.cancelled.Store(true)
	if t.timer != nil {
		t.timer.Stop()
	}
	t.stopOnce.Do(func() { close(t.stop) })
}

func (t *Task) Cancelled() bool {
	return t.cancelled.Load()
}

// Done reports that a one-shot task has run to completion.
func (t *Task) Done() bool {
	return t.done.Load()
}
