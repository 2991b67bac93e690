package realtime

import (
	"sync"
	"testing"
	"time"
)

func newTestStream(userID int64) *Stream {
	return NewStream(userID, time.Minute, time.Second)
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	s := newTestStream(1)

	r.Register(1, s)

	got, ok := r.Lookup(1)
	if !ok || got != s {
		t.Fatalf("Lookup(1) = %v, %v; want the registered stream", got, ok)
	}
	if _, ok := r.Lookup(2); ok {
		t.Error("Lookup(2) must miss")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestRegistryLastConnectionWins(t *testing.T) {
	r := NewRegistry()
	first := newTestStream(1)
	second := newTestStream(1)

	r.Register(1, first)
	r.Register(1, second)

	got, ok := r.Lookup(1)
	if !ok || got != second {
		t.Fatal("the replacement stream must be the current one")
	}
	select {
	case <-first.Done():
	default:
		t.Error("the replaced stream must be closed")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestRegistryRemoveIsIdentityChecked(t *testing.T) {
	r := NewRegistry()
	old := newTestStream(1)
	current := newTestStream(1)

	r.Register(1, old)
	r.Register(1, current)

	// a stale handle must not evict its successor
	r.Remove(1, old)
	if got, ok := r.Lookup(1); !ok || got != current {
		t.Fatal("stale Remove must be a no-op")
	}

	r.Remove(1, current)
	if _, ok := r.Lookup(1); ok {
		t.Error("current stream must be removed")
	}
}

func TestRegistryConcurrentRegister(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Register(7, newTestStream(7))
		}()
	}
	wg.Wait()

	if r.Count() != 1 {
		t.Errorf("Count() = %d, want exactly one live stream per user", r.Count())
	}
	if _, ok := r.Lookup(7); !ok {
		t.Error("one of the racing streams must survive")
	}
}
