package cache

import (
	"testing"
	"time"

	"github.com/modsagraphy/universa/internal/item"
)

func TestPutGet_ReturnsFreshEntries(t *testing.T) {
	c := New(time.Minute)
	it := item.New(time.Hour)

	c.Put(it)

	got := c.Get(it.ID())
	if got == nil {
		t.Fatal("fresh entry must be returned")
	}
	if got.ID() != it.ID() {
		t.Fatal("cache returned a different item")
	}
	if !c.Has(it.ID()) {
		t.Fatal("Has must report the entry")
	}
}

func TestGet_UnknownIdIsNil(t *testing.T) {
	c := New(time.Minute)
	if c.Get(item.New(time.Hour).ID()) != nil {
		t.Fatal("unknown id must be a miss")
	}
}

func TestGet_EntriesAgeOut(t *testing.T) {
	c := New(30 * time.Millisecond)
	it := item.New(time.Hour)

	c.Put(it)
	time.Sleep(80 * time.Millisecond)

	if c.Get(it.ID()) != nil {
		t.Fatal("entry past max age must be gone")
	}
	if c.Has(it.ID()) {
		t.Fatal("Has must not report an aged-out entry")
	}
}

func TestPut_SameIdReplacesEntry(t *testing.T) {
	c := New(time.Minute)
	it := item.New(time.Hour)

	c.Put(it)
	c.Put(it)

	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}
