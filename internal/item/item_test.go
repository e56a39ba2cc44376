package item

import (
	"testing"
	"time"

	"github.com/modsagraphy/universa/internal/types"
)

func TestItem_IDIsStable(t *testing.T) {
	it := New(time.Hour)
	first := it.ID()
	if first.IsZero() {
		t.Fatal("id must not be zero")
	}
	if it.ID() != first {
		t.Fatal("id changed between calls")
	}
}

func TestItem_DistinctItemsGetDistinctIDs(t *testing.T) {
	if New(time.Hour).ID() == New(time.Hour).ID() {
		t.Fatal("two fresh items share an id")
	}
}

func TestItem_PackUnpackRoundTripsID(t *testing.T) {
	ref := New(time.Hour)
	revoked := New(time.Hour)

	it := New(30 * time.Minute).
		AddReferencedItem(ref.ID()).
		AddRevokingItem(revoked).
		AddNewItem(New(time.Hour))

	packed, err := it.Pack()
	if err != nil {
		t.Fatalf("pack: %v", err)
	}

	got, err := Unpack(packed)
	if err != nil {
		t.Fatalf("unpack: %v", err)
	}
	if got.ID() != it.ID() {
		t.Fatalf("id did not survive the round trip: %s vs %s", got.ID(), it.ID())
	}

	if len(got.ReferencedItems()) != 1 || got.ReferencedItems()[0] != ref.ID() {
		t.Fatal("referenced items lost")
	}
	if len(got.RevokingItems()) != 1 || got.RevokingItems()[0].ID() != revoked.ID() {
		t.Fatal("revoking items lost")
	}
	if len(got.NewItems()) != 1 {
		t.Fatal("new items lost")
	}
}

func TestUnpack_RejectsGarbage(t *testing.T) {
	if _, err := Unpack([]byte{0xff, 0x01, 0x02, 0x03}); err == nil {
		t.Fatal("expected unpack error")
	}
}

func TestItem_CheckAcceptsWellFormed(t *testing.T) {
	it := New(time.Hour)
	if !it.Check() {
		t.Fatalf("check failed: %v", it.Errors())
	}
	if len(it.Errors()) != 0 {
		t.Fatalf("unexpected errors: %v", it.Errors())
	}
}

func TestItem_CheckRejectsNonPositiveLifetime(t *testing.T) {
	it := New(-time.Minute)
	if it.Check() {
		t.Fatal("expected check failure")
	}
	if len(it.Errors()) == 0 {
		t.Fatal("failure must leave an error record")
	}
}

func TestItem_CheckRejectsNestedEffects(t *testing.T) {
	nested := New(time.Hour).AddNewItem(New(time.Hour))
	it := New(time.Hour).AddNewItem(nested)

	if it.Check() {
		t.Fatal("expected check failure for nested effects")
	}
}

func TestItem_ErrorsAccumulate(t *testing.T) {
	it := New(time.Hour)
	it.AddError(types.ErrExpired, "a", "first")
	it.AddError(types.ErrBadRef, "b", "second")

	errs := it.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Code != types.ErrExpired || errs[1].Code != types.ErrBadRef {
		t.Fatalf("unexpected codes: %v", errs)
	}
}
