// Package ratelimit provides the swappable counter store behind the
// fixed-window request limiter: an in-process store for single-instance
// deployments and a Redis-backed one for multi-instance.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

var now = time.Now

// CounterStore counts hits per key within a fixed window. Incr returns the
// number of hits recorded for the key's current window, including this one.
// Implementations must be safe for concurrent use.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type windowEntry struct {
	count   int64
	expires time.Time
}

// MemoryStore is the in-process CounterStore. Expired windows are dropped on
// access, so the map stays bounded by the active key set.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]windowEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]windowEntry)}
}

var _ CounterStore = (*MemoryStore)(nil)

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := now()
	e, ok := s.entries[key]
	if !ok || t.After(e.expires) {
		e = windowEntry{expires: t.Add(window)}
	}
	e.count++
	s.entries[key] = e
	return e.count, nil
}
