package itemlock

import (
	"sync"

	"github.com/modsagraphy/universa/internal/types"
)

// Table serializes critical sections per item id. Entries are reference
// counted and removed as soon as no contender remains, so the table does not
// grow with the history of processed items.
type Table struct {
	mu      sync.Mutex
	entries map[types.HashId]*entry
}

type entry struct {
	mu      sync.Mutex
	waiters int
}

func NewTable() *Table {
	return &Table{entries: make(map[types.HashId]*entry)}
}

// WithLock runs fn while holding the lock for id. Concurrent calls with the
// same id are serialized; distinct ids proceed in parallel. The lock is
// released on every exit path.
func (t *Table) WithLock(id types.HashId, fn func() error) error {
	e := t.acquire(id)
	e.mu.Lock()
	defer func() {
		e.mu.Unlock()
		t.release(id, e)
	}()
	return fn()
}

func (t *Table) acquire(id types.HashId) *entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	if !ok {
		e = &entry{}
		t.entries[id] = e
	}
	e.waiters++
	return e
}

func (t *Table) release(id types.HashId, e *entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e.waiters--
	if e.waiters == 0 {
		delete(t.entries, id)
	}
}

// Len reports the number of ids currently contended.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
