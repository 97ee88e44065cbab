package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "blocktrust/pkg/domain"
	"blocktrust/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx    context.Context
	store  *InMemoryStore
	userID id.UserID
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()
	s.userID = id.UserID(uuid.New())
}

func (s *MemoryStoreSuite) TestCreateNormalAndGet() {
	s.Require().NoError(s.store.CreateNormal(s.ctx, s.userID, "normal-hash"))

	pair, err := s.store.Get(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("normal-hash", pair.NormalPasswordHash)
	s.False(pair.DuressConfigured)
	s.Nil(pair.DuressPasswordHash)
	s.Nil(pair.LastDuressTriggerAt)
}

func (s *MemoryStoreSuite) TestCreateNormalConflict() {
	s.Require().NoError(s.store.CreateNormal(s.ctx, s.userID, "normal-hash"))
	s.ErrorIs(s.store.CreateNormal(s.ctx, s.userID, "other-hash"), sentinel.ErrConflict)
}

func (s *MemoryStoreSuite) TestGetUnknownUser() {
	_, err := s.store.Get(s.ctx, s.userID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestSetDuress() {
	s.Require().NoError(s.store.CreateNormal(s.ctx, s.userID, "normal-hash"))
	s.Require().NoError(s.store.SetDuress(s.ctx, s.userID, "duress-hash"))

	pair, err := s.store.Get(s.ctx, s.userID)
	s.Require().NoError(err)
	s.True(pair.DuressConfigured)
	s.Require().NotNil(pair.DuressPasswordHash)
	s.Equal("duress-hash", *pair.DuressPasswordHash)
}

func (s *MemoryStoreSuite) TestSetDuressRotates() {
	s.Require().NoError(s.store.CreateNormal(s.ctx, s.userID, "normal-hash"))
	s.Require().NoError(s.store.SetDuress(s.ctx, s.userID, "first"))
	s.Require().NoError(s.store.SetDuress(s.ctx, s.userID, "second"))

	pair, err := s.store.Get(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("second", *pair.DuressPasswordHash)
}

func (s *MemoryStoreSuite) TestSetDuressUnknownUser() {
	s.ErrorIs(s.store.SetDuress(s.ctx, s.userID, "duress-hash"), sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestTouchDuressTriggerIsMonotonic() {
	s.Require().NoError(s.store.CreateNormal(s.ctx, s.userID, "normal-hash"))

	newer := time.Now().UTC()
	older := newer.Add(-time.Minute)

	s.Require().NoError(s.store.TouchDuressTrigger(s.ctx, s.userID, newer))
	s.Require().NoError(s.store.TouchDuressTrigger(s.ctx, s.userID, older))

	pair, err := s.store.Get(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().NotNil(pair.LastDuressTriggerAt)
	s.True(pair.LastDuressTriggerAt.Equal(newer))
}
