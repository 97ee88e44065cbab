package store

import (
	"context"
	"sync"

	"blocktrust/internal/history/models"
	id "blocktrust/pkg/domain"
)

// InMemoryStore keeps signature records in a slice, newest last.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []*models.SignatureRecord
}

// NewInMemory creates an empty in-memory history store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{}
}

// Append records one signature. Append-only.
func (s *InMemoryStore) Append(ctx context.Context, rec *models.SignatureRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	s.records = append(s.records, &cp)
	return nil
}

// ListByUser returns the user's signing history, newest first.
func (s *InMemoryStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.SignatureRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.SignatureRecord
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].UserID == userID {
			cp := *s.records[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
