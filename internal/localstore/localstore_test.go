package localstore

import "testing"

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := s.Set("verseandme_cart", doc{Name: "tee", Count: 2}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got doc
	ok, err := s.Get("verseandme_cart", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected key present")
	}
	if got.Name != "tee" || got.Count != 2 {
		t.Fatalf("unexpected value %+v", got)
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	var got map[string]interface{}
	ok, err := s.Get("absent", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected key absent")
	}
}

func TestFileStore_Delete(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	// Deleting an absent key is fine.
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}

	var got string
	ok, err := s.Get("k", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("expected key gone")
	}
}

func TestFileStore_SanitizesKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := s.Set("../escape/attempt", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got string
	ok, err := s.Get("../escape/attempt", &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got != "v" {
		t.Fatalf("unexpected value %q", got)
	}
}
