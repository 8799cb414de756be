package counts

import (
	"testing"
	"time"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	if _, ok := store.Get("fiction"); ok {
		t.Error("expected miss on empty store")
	}

	store.Set("fiction", 42)
	got, ok := store.Get("fiction")
	if !ok || got != 42 {
		t.Errorf("Get(fiction) = (%d, %v), want (42, true)", got, ok)
	}

	store.InvalidateAll()
	if _, ok := store.Get("fiction"); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	store.Set("fiction", 7)

	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get("fiction"); ok {
		t.Error("expected entry to expire")
	}
}
