package authlockout

import (
	"context"
	"sync"
	"time"
)

// InMemoryStore counts failures per identifier with window expiry. Used by
// tests and single-node deployments without Redis.
type InMemoryStore struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*entry
}

type entry struct {
	count     int
	expiresAt time.Time
}

// NewInMemory creates an empty in-memory failure counter.
func NewInMemory(window time.Duration) *InMemoryStore {
	return &InMemoryStore{window: window, entries: make(map[string]*entry)}
}

func (s *InMemoryStore) RecordFailure(ctx context.Context, identifier string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, ok := s.entries[identifier]
	if !ok || now.After(e.expiresAt) {
		e = &entry{expiresAt: now.Add(s.window)}
		s.entries[identifier] = e
	}
	e.count++
	return e.count, nil
}

func (s *InMemoryStore) Failures(ctx context.Context, identifier string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[identifier]
	if !ok || time.Now().After(e.expiresAt) {
		return 0, nil
	}
	return e.count, nil
}

func (s *InMemoryStore) Clear(ctx context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, identifier)
	return nil
}
