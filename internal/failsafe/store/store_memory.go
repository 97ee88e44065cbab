package store

import (
	"context"
	"sync"
	"time"

	"blocktrust/internal/failsafe/models"
	id "blocktrust/pkg/domain"
	"blocktrust/pkg/platform/sentinel"
)

// InMemoryStore keeps failsafe events and identity assets in maps.
type InMemoryStore struct {
	mu         sync.RWMutex
	events     []*models.FailsafeEvent
	identities map[id.UserID]*models.IdentityAsset
}

// NewInMemory creates an empty in-memory failsafe store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{identities: make(map[id.UserID]*models.IdentityAsset)}
}

// AppendEvent persists a new failsafe event. Append-only.
func (s *InMemoryStore) AppendEvent(ctx context.Context, event *models.FailsafeEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *event
	s.events = append(s.events, &cp)
	return nil
}

// SettleRevocation backfills the revocation outcome exactly once.
// A second settle attempt returns sentinel.ErrInvalidState.
func (s *InMemoryStore) SettleRevocation(ctx context.Context, eventID id.EventID, revoked bool, txRef *string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range s.events {
		if event.ID != eventID {
			continue
		}
		if !event.Pending() {
			return sentinel.ErrInvalidState
		}
		event.IdentityRevoked = revoked
		event.RevocationTxRef = txRef
		t := at
		event.SettledAt = &t
		return nil
	}
	return sentinel.ErrNotFound
}

// ListEventsByUser returns the user's failsafe events, oldest first.
func (s *InMemoryStore) ListEventsByUser(ctx context.Context, userID id.UserID) ([]*models.FailsafeEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.FailsafeEvent
	for _, event := range s.events {
		if event.UserID == userID {
			cp := *event
			out = append(out, &cp)
		}
	}
	return out, nil
}

// GetIdentity returns the user's identity asset, or nil when none was minted.
func (s *InMemoryStore) GetIdentity(ctx context.Context, userID id.UserID) (*models.IdentityAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.identities[userID]
	if !ok {
		return nil, nil
	}
	cp := *asset
	return &cp, nil
}

// SaveIdentity records a minted identity asset for the user.
func (s *InMemoryStore) SaveIdentity(ctx context.Context, asset *models.IdentityAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *asset
	s.identities[asset.UserID] = &cp
	return nil
}

// DeactivateIdentity flips the active flag off. One-way and idempotent:
// deactivating an already-inactive identity is a no-op.
func (s *InMemoryStore) DeactivateIdentity(ctx context.Context, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if asset, ok := s.identities[userID]; ok {
		asset.Active = false
	}
	return nil
}
