package schedule

import (
	"sync"
	"time"
)

// Event is a one-shot broadcast latch: many waiters, single fire,
// idempotent.
type Event struct {
	once sync.Once
	ch   chan struct{}
}

func NewEvent() *Event {
	return &Event{ch: make(chan struct{})}
}

func (e *Event) Fire() {
	e.once.Do(func() { close(e.ch) })
}

func (e *Event) Fired() bool {
	select {
	case <-e.ch:
		return true
	default:
		return false
	}
}

// Await blocks until the event fires or timeout elapses. Returns true if the
// event fired.
func (e *Event) Await(timeout time.Duration) bool {
	if timeout <= 0 {
		return e.Fired()
	}
	select {
	case <-e.ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

// C exposes the fired channel for select loops.
func (e *Event) C() <-chan struct{} {
	return e.ch
}
