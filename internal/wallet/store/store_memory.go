package store

import (
	"context"
	"sync"

	"blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
	"blocktrust/pkg/platform/sentinel"
)

// InMemoryStore keeps wallet records in a map. Used by unit tests and
// no-database deployments; PostgresStore is the production implementation.
type InMemoryStore struct {
	mu      sync.RWMutex
	wallets map[id.UserID]*models.WalletRecord
}

// NewInMemory creates an empty in-memory wallet store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{wallets: make(map[id.UserID]*models.WalletRecord)}
}

// Create persists a wallet record. Each user owns at most one wallet;
// a second create returns sentinel.ErrConflict.
func (s *InMemoryStore) Create(ctx context.Context, rec *models.WalletRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.wallets[rec.UserID]; exists {
		return sentinel.ErrConflict
	}
	cp := *rec
	s.wallets[rec.UserID] = &cp
	return nil
}

// GetByUser returns the user's wallet or sentinel.ErrNotFound.
func (s *InMemoryStore) GetByUser(ctx context.Context, userID id.UserID) (*models.WalletRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.wallets[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}
