package suppress

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "suppress.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSuppressRoundtrip(t *testing.T) {
	s := openTestStore(t)

	found, _, err := s.IsSuppressed("delete-confirm")
	if err != nil {
		t.Fatalf("IsSuppressed: %v", err)
	}
	if found {
		t.Fatal("Fresh store should have no suppressions")
	}

	if err := s.Suppress("delete-confirm", 1); err != nil {
		t.Fatalf("Suppress: %v", err)
	}

	found, code, err := s.IsSuppressed("delete-confirm")
	if err != nil {
		t.Fatalf("IsSuppressed: %v", err)
	}
	if !found {
		t.Fatal("Expected key to be suppressed")
	}
	if code != 1 {
		t.Errorf("Expected recorded code 1, got %d", code)
	}
}

func TestSuppressUpdatesExistingKey(t *testing.T) {
	s := openTestStore(t)

	if err := s.Suppress("warn", 0); err != nil {
		t.Fatalf("Suppress: %v", err)
	}
	if err := s.Suppress("warn", 2); err != nil {
		t.Fatalf("Suppress update: %v", err)
	}

	_, code, err := s.IsSuppressed("warn")
	if err != nil {
		t.Fatalf("IsSuppressed: %v", err)
	}
	if code != 2 {
		t.Errorf("Expected updated code 2, got %d", code)
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if len(keys) != 1 {
		t.Errorf("Expected 1 key after upsert, got %d", len(keys))
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)

	if err := s.Suppress("once", 0); err != nil {
		t.Fatalf("Suppress: %v", err)
	}
	if err := s.Clear("once"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	found, _, err := s.IsSuppressed("once")
	if err != nil {
		t.Fatalf("IsSuppressed: %v", err)
	}
	if found {
		t.Error("Cleared key should not be suppressed")
	}
}
