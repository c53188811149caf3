package cart

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/localstore"
)

func testStore(t *testing.T) (*Store, localstore.Store) {
	t.Helper()
	ls := localstore.NewMemoryStore()
	s := New(ls, log.New(io.Discard, "", 0))
	millis := int64(0)
	s.now = func() time.Time {
		millis++
		return time.UnixMilli(millis)
	}
	return s, ls
}

func line(variantID string, qty int, priceCents int64, opts ...domain.OptionPair) domain.CartLineItem {
	return domain.CartLineItem{
		VariantID:      variantID,
		Title:          "Item " + variantID,
		Quantity:       qty,
		UnitPriceCents: priceCents,
		Currency:       "USD",
		Options:        opts,
	}
}

func TestAdd_MergesOnVariantAndOptions(t *testing.T) {
	s, _ := testStore(t)

	first := s.Add(line("v1", 1, 1000, domain.OptionPair{Name: "Size", Value: "M"}))
	second := s.Add(line("v1", 2, 1000, domain.OptionPair{Name: "Size", Value: "M"}))

	if first.ID != second.ID {
		t.Fatalf("expected merge into one line, got ids %q and %q", first.ID, second.ID)
	}
	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", items[0].Quantity)
	}
}

func TestAdd_DifferentOptionsStaySeparate(t *testing.T) {
	s, _ := testStore(t)

	s.Add(line("v1", 1, 1000, domain.OptionPair{Name: "Size", Value: "M"}))
	s.Add(line("v1", 1, 1000, domain.OptionPair{Name: "Size", Value: "L"}))

	if got := len(s.Items()); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
}

func TestAdd_GeneratesVariantTimestampID(t *testing.T) {
	s, _ := testStore(t)

	added := s.Add(line("v42", 1, 500))
	if added.ID != "v42-1" {
		t.Fatalf("id = %q, want %q", added.ID, "v42-1")
	}
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	s, _ := testStore(t)
	added := s.Add(line("v1", 2, 1000))

	s.UpdateQuantity(added.ID, 0)
	if got := len(s.Items()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}

	added = s.Add(line("v1", 2, 1000))
	s.UpdateQuantity(added.ID, -1)
	if got := len(s.Items()); got != 0 {
		t.Fatalf("expected empty cart after negative quantity, got %d lines", got)
	}
}

func TestUpdateQuantity_SetsValue(t *testing.T) {
	s, _ := testStore(t)
	added := s.Add(line("v1", 1, 1000))

	s.UpdateQuantity(added.ID, 5)

	items := s.Items()
	if items[0].Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	s, _ := testStore(t)
	s.Add(line("v1", 1, 1000))

	s.Remove("does-not-exist")

	if got := len(s.Items()); got != 1 {
		t.Fatalf("expected cart untouched, got %d lines", got)
	}
}

func TestCountAndTotal(t *testing.T) {
	s, _ := testStore(t)
	s.Add(line("v1", 2, 1500))
	s.Add(line("v2", 1, 2999))

	if got := s.Count(); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
	if got := s.TotalCents(); got != 5999 {
		t.Fatalf("total = %d, want 5999", got)
	}
}

func TestClear(t *testing.T) {
	s, _ := testStore(t)
	s.Add(line("v1", 2, 1500))

	s.Clear()

	if got := len(s.Items()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
	if got := s.TotalCents(); got != 0 {
		t.Fatalf("total = %d, want 0", got)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ls := localstore.NewMemoryStore()
	logger := log.New(io.Discard, "", 0)

	s := New(ls, logger)
	s.Add(line("v1", 2, 1500))
	s.Add(line("v2", 1, 2999))

	reloaded := New(ls, logger)
	if got := len(reloaded.Items()); got != 2 {
		t.Fatalf("expected 2 lines after reload, got %d", got)
	}
	if got := reloaded.TotalCents(); got != 5999 {
		t.Fatalf("total = %d, want 5999", got)
	}
}

func TestSaveForLater_MovesLine(t *testing.T) {
	s, _ := testStore(t)
	added := s.Add(line("v1", 2, 1500))

	if err := s.SaveForLater(added.ID); err != nil {
		t.Fatalf("SaveForLater: %v", err)
	}
	if got := len(s.Items()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}
	saved := s.Saved()
	if len(saved) != 1 || saved[0].ID != added.ID {
		t.Fatalf("unexpected saved list %+v", saved)
	}
}

func TestSaveForLater_UnknownID(t *testing.T) {
	s, _ := testStore(t)
	if err := s.SaveForLater("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRestoreSaved_MergesBackIntoCart(t *testing.T) {
	s, _ := testStore(t)
	saved := s.Add(line("v1", 2, 1500, domain.OptionPair{Name: "Size", Value: "M"}))
	if err := s.SaveForLater(saved.ID); err != nil {
		t.Fatalf("SaveForLater: %v", err)
	}
	s.Add(line("v1", 1, 1500, domain.OptionPair{Name: "Size", Value: "M"}))

	if err := s.RestoreSaved(saved.ID); err != nil {
		t.Fatalf("RestoreSaved: %v", err)
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected merged single line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", items[0].Quantity)
	}
	if got := len(s.Saved()); got != 0 {
		t.Fatalf("expected empty saved list, got %d", got)
	}
}

func TestRestoreSaved_UnknownID(t *testing.T) {
	s, _ := testStore(t)
	if err := s.RestoreSaved("nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
