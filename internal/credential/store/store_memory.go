package store

import (
	"context"
	"sync"
	"time"

	"blocktrust/internal/credential/models"
	id "blocktrust/pkg/domain"
	"blocktrust/pkg/platform/sentinel"
)

// InMemoryStore keeps credential pairs in a map.
type InMemoryStore struct {
	mu    sync.RWMutex
	pairs map[id.UserID]*models.CredentialPair
}

// NewInMemory creates an empty in-memory credential store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{pairs: make(map[id.UserID]*models.CredentialPair)}
}

// Get returns the user's credential pair or sentinel.ErrNotFound.
func (s *InMemoryStore) Get(ctx context.Context, userID id.UserID) (*models.CredentialPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pair, ok := s.pairs[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *pair
	return &cp, nil
}

// CreateNormal stores the normal password hash at registration time.
// Returns sentinel.ErrConflict if credentials already exist.
func (s *InMemoryStore) CreateNormal(ctx context.Context, userID id.UserID, normalHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pairs[userID]; exists {
		return sentinel.ErrConflict
	}
	s.pairs[userID] = &models.CredentialPair{NormalPasswordHash: normalHash}
	return nil
}

// SetDuress configures (or rotates) the duress password hash.
func (s *InMemoryStore) SetDuress(ctx context.Context, userID id.UserID, duressHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pair, ok := s.pairs[userID]
	if !ok {
		return sentinel.ErrNotFound
	}
	pair.DuressPasswordHash = &duressHash
	pair.DuressConfigured = true
	return nil
}

// TouchDuressTrigger records the latest duress trigger time. Monotonic: a
// concurrent older timestamp never overwrites a newer one, so racing duress
// requests settle on a single consistent value.
func (s *InMemoryStore) TouchDuressTrigger(ctx context.Context, userID id.UserID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pair, ok := s.pairs[userID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if pair.LastDuressTriggerAt == nil || at.After(*pair.LastDuressTriggerAt) {
		t := at
		pair.LastDuressTriggerAt = &t
	}
	return nil
}
