package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Pool runs the node's background work: download attempts, poll ticks and
// commit finalization. Blocking submissions share a bounded semaphore;
// fixed-rate tasks tick on their own goroutines so a pool full of stalled
// network fetches cannot starve them.
type Pool struct {
	sem    *semaphore.Weighted
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPool(capacity int64) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		sem:    semaphore.NewWeighted(capacity),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Submit runs fn on the pool as soon as a slot is free. After Close,
// submissions are dropped.
func (p *Pool) Submit(fn func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.sem.Acquire(p.ctx, 1); err != nil {
			return
		}
		defer p.sem.Release(1)
		fn()
	}()
}

// Schedule runs fn on the pool once after delay. The returned task can be
// cancelled until it has started.
func (p *Pool) Schedule(delay time.Duration, fn func()) *Task {
	t := newTask()
	timer := time.AfterFunc(delay, func() {
		if !t.begin() {
			return
		}
		p.Submit(func() {
			defer t.finish()
			fn()
		})
	})
	t.timer = timer
	return t
}

// Repeat ticks fn at a fixed rate, first run after interval. Ticks run
// directly on the task goroutine, outside the semaphore.
func (p *Pool) Repeat(interval time.Duration, fn func()) *Task {
	t := newTask()
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if t.Cancelled() {
					return
				}
				fn()
			case <-t.stop:
				return
			case <-p.ctx.Done():
				return
			}
		}
	}()
	return t
}

// Close cancels pending work and waits for running tasks to finish their
// current iteration.
func (p *Pool) Close() {
	p.cancel()
	p.wg.Wait()
	slog.Debug("scheduler pool stopped")
}
