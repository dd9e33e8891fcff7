package weekly

import (
	"context"
	"testing"

	"finwise/internal/store"
)

func TestListReturnsSeedOnFirstRun(t *testing.T) {
	s := New(store.NewMemory())
	items, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 seed items, got %d", len(items))
	}
	if items[0].Label != "Groceries" || items[0].Amount != "150.00" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
}

func TestUpdateAmount(t *testing.T) {
	items := Seed()
	got := UpdateAmount(items, 1, "200.00")

	if got[0].Amount != "200.00" {
		t.Fatalf("item 1 amount = %q, want 200.00", got[0].Amount)
	}
	if got[0].ID != 1 || got[0].Label != "Groceries" {
		t.Fatalf("item 1 id/label changed: %+v", got[0])
	}
	for i, item := range got[1:] {
		if item != items[i+1] {
			t.Fatalf("item %d changed: %+v vs %+v", i+1, item, items[i+1])
		}
	}
	// Working copy semantics: the input is untouched.
	if items[0].Amount != "150.00" {
		t.Fatalf("input slice mutated: %+v", items[0])
	}
}

func TestUpdateAmountUnknownIDIsNoOp(t *testing.T) {
	items := Seed()
	got := UpdateAmount(items, 99, "5.00")
	for i := range items {
		if got[i] != items[i] {
			t.Fatalf("item %d changed: %+v", i, got[i])
		}
	}
}

func TestUpdateAmountKeepsMalformedText(t *testing.T) {
	got := UpdateAmount(Seed(), 2, "not-a-number")
	if got[1].Amount != "not-a-number" {
		t.Fatalf("amount = %q, want raw text preserved", got[1].Amount)
	}
}

func TestPersistAllRoundTrip(t *testing.T) {
	s := New(store.NewMemory())
	ctx := context.Background()

	mutated := UpdateAmount(Seed(), 1, "200.00")
	if err := s.PersistAll(ctx, mutated); err != nil {
		t.Fatalf("persist: %v", err)
	}

	got, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	for i := range mutated {
		if got[i] != mutated[i] {
			t.Fatalf("item %d = %+v, want %+v", i, got[i], mutated[i])
		}
	}
}
