package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_SubmitRunsWork(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	done := make(chan struct{})
	p.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("submitted work never ran")
	}
}

func TestPool_ScheduleRunsAfterDelay(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	done := make(chan struct{})
	task := p.Schedule(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled work never ran")
	}

	deadline := time.Now().Add(time.Second)
	for !task.Done() {
		if time.Now().After(deadline) {
			t.Fatal("task never reported done")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPool_ScheduleCancelBeforeFire(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var ran atomic.Bool
	task := p.Schedule(30*time.Millisecond, func() { ran.Store(true) })
	task.Cancel()

	time.Sleep(80 * time.Millisecond)
	if ran.Load() {
		t.Fatal("cancelled task still ran")
	}
	if !task.Cancelled() {
		t.Fatal("task does not report cancellation")
	}
}

func TestPool_RepeatTicksUntilCancelled(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	var ticks atomic.Int32
	task := p.Repeat(5*time.Millisecond, func() { ticks.Add(1) })

	deadline := time.Now().Add(time.Second)
	for ticks.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("expected at least 3 ticks, got %d", ticks.Load())
		}
		time.Sleep(time.Millisecond)
	}

	task.Cancel()
	settled := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	if got := ticks.Load(); got > settled+1 {
		t.Fatalf("ticks continued after cancel: %d -> %d", settled, got)
	}
}

func TestPool_CloseDropsLaterSubmissions(t *testing.T) {
	p := NewPool(1)
	p.Close()

	var ran atomic.Bool
	p.Submit(func() { ran.Store(true) })

	time.Sleep(30 * time.Millisecond)
	if ran.Load() {
		t.Fatal("submission after close still ran")
	}
}

func TestEvent_FireIsIdempotent(t *testing.T) {
	e := NewEvent()
	if e.Fired() {
		t.Fatal("fresh event reports fired")
	}

	e.Fire()
	e.Fire()

	if !e.Fired() {
		t.Fatal("event did not latch")
	}
	if !e.Await(time.Millisecond) {
		t.Fatal("await on a fired event must return true")
	}
}

func TestEvent_AwaitTimesOut(t *testing.T) {
	e := NewEvent()
	start := time.Now()
	if e.Await(20 * time.Millisecond) {
		t.Fatal("await returned true without a fire")
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatal("await returned before the timeout")
	}
}

func TestEvent_AwaitZeroPollsState(t *testing.T) {
	e := NewEvent()
	if e.Await(0) {
		t.Fatal("zero await on unfired event returned true")
	}
	e.Fire()
	if !e.Await(0) {
		t.Fatal("zero await on fired event returned false")
	}
}

func TestEvent_WakesAllWaiters(t *testing.T) {
	e := NewEvent()
	results := make(chan bool, 3)
	for g := 0; g < 3; g++ {
		go func() { results <- e.Await(time.Second) }()
	}

	e.Fire()
	for g := 0; g < 3; g++ {
		if !<-results {
			t.Fatal("waiter timed out despite fire")
		}
	}
}
