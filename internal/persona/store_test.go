package persona

import (
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndActive(t *testing.T) {
	s := tempStore(t)

	ov, err := s.Save("conv-1", "pirate", "Speak like a pirate captain.")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ov.OverlayID == "" {
		t.Fatal("expected non-empty overlay ID")
	}
	if !ov.Active {
		t.Fatal("saved overlay should be active")
	}

	got, err := s.Active("conv-1")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if got == nil {
		t.Fatal("expected an active overlay")
	}
	if got.OverlayID != ov.OverlayID {
		t.Errorf("got overlay %s, want %s", got.OverlayID, ov.OverlayID)
	}
	if got.Content != "Speak like a pirate captain." {
		t.Errorf("unexpected content %q", got.Content)
	}
}

func TestActive_NoneReturnsNil(t *testing.T) {
	s := tempStore(t)

	got, err := s.Active("conv-missing")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil overlay, got %+v", got)
	}
}

func TestSave_ReplacesActiveOverlay(t *testing.T) {
	s := tempStore(t)

	first, err := s.Save("conv-1", "pirate", "arr")
	if err != nil {
		t.Fatalf("Save first: %v", err)
	}
	second, err := s.Save("conv-1", "butler", "very good, sir")
	if err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err := s.Active("conv-1")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if got == nil || got.OverlayID != second.OverlayID {
		t.Fatalf("expected second overlay active, got %+v", got)
	}

	overlays, err := s.List("conv-1", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(overlays) != 2 {
		t.Fatalf("expected 2 overlays, got %d", len(overlays))
	}
	for _, ov := range overlays {
		if ov.OverlayID == first.OverlayID && ov.Active {
			t.Error("first overlay should have been deactivated")
		}
	}
}

func TestDeactivate(t *testing.T) {
	s := tempStore(t)

	if _, err := s.Save("conv-1", "pirate", "arr"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Deactivate("conv-1"); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	got, err := s.Active("conv-1")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if got != nil {
		t.Errorf("expected no active overlay after deactivate, got %+v", got)
	}

	// Deactivating again is a no-op.
	if err := s.Deactivate("conv-1"); err != nil {
		t.Errorf("Deactivate on empty: %v", err)
	}
}

func TestConversationsIsolated(t *testing.T) {
	s := tempStore(t)

	if _, err := s.Save("conv-a", "pirate", "arr"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := s.Save("conv-b", "butler", "sir"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	a, err := s.Active("conv-a")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if a == nil || a.Name != "pirate" {
		t.Errorf("conv-a overlay wrong: %+v", a)
	}

	b, err := s.Active("conv-b")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if b == nil || b.Name != "butler" {
		t.Errorf("conv-b overlay wrong: %+v", b)
	}
}
