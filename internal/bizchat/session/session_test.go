package session

import "testing"

func TestNewID(t *testing.T) {
	id := NewID()
	if len(id) != IDLength {
		t.Fatalf("NewID() length = %d, want %d", len(id), IDLength)
	}
	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Errorf("NewID() contains unexpected rune %q in %q", r, id)
		}
	}
}

func TestNewIDVaries(t *testing.T) {
	// Best-effort uniqueness: a handful of draws should not collide.
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID() produced duplicate %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestNewSession(t *testing.T) {
	a := New()
	b := New()
	if a.ID == b.ID {
		t.Errorf("two sessions share the identifier %q", a.ID)
	}
	if len(a.ID) != IDLength {
		t.Errorf("session ID length = %d, want %d", len(a.ID), IDLength)
	}
	if a.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}
