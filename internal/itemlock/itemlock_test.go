package itemlock

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/modsagraphy/universa/internal/types"
)

func TestWithLock_SerializesSameId(t *testing.T) {
	tbl := NewTable()
	id := types.NewHashId([]byte("same"))

	var mu sync.Mutex
	inside, maxInside := 0, 0

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tbl.WithLock(id, func() error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Fatalf("expected at most 1 holder, observed %d", maxInside)
	}
}

func TestWithLock_DistinctIdsProceedInParallel(t *testing.T) {
	tbl := NewTable()
	first := types.NewHashId([]byte("first"))
	second := types.NewHashId([]byte("second"))

	holding := make(chan struct{})
	release := make(chan struct{})
	go tbl.WithLock(first, func() error {
		close(holding)
		<-release
		return nil
	})
	<-holding
	defer close(release)

	done := make(chan struct{})
	go tbl.WithLock(second, func() error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different id blocked")
	}
}

func TestWithLock_PropagatesError(t *testing.T) {
	tbl := NewTable()
	want := errors.New("boom")

	got := tbl.WithLock(types.NewHashId([]byte("x")), func() error { return want })
	if !errors.Is(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTable_ShrinksWhenUncontended(t *testing.T) {
	tbl := NewTable()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := types.NewHashId([]byte{byte(n)})
			for j := 0; j < 50; j++ {
				tbl.WithLock(id, func() error { return nil })
			}
		}(g)
	}
	wg.Wait()

	if tbl.Len() != 0 {
		t.Fatalf("expected empty table, got %d entries", tbl.Len())
	}
}
