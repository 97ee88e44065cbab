//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"blocktrust/internal/failsafe/models"
	id "blocktrust/pkg/domain"
	"blocktrust/pkg/platform/sentinel"
	"blocktrust/pkg/testutil/containers"
)

type PostgresFailsafeSuite struct {
	suite.Suite
	ctx   context.Context
	pg    *containers.PostgresContainer
	store *PostgresStore
}

func TestPostgresFailsafeSuite(t *testing.T) {
	suite.Run(t, new(PostgresFailsafeSuite))
}

func (s *PostgresFailsafeSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresFailsafeSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(s.ctx, "failsafe_events", "identity_assets"))
}

func (s *PostgresFailsafeSuite) newEvent(userID id.UserID, at time.Time) *models.FailsafeEvent {
	return &models.FailsafeEvent{
		ID:          id.NewEventID(),
		UserID:      userID,
		TriggeredAt: at,
		Reason:      "duress password used",
	}
}

func (s *PostgresFailsafeSuite) TestAppendAndList() {
	userID := id.UserID(uuid.New())
	now := time.Now().UTC().Truncate(time.Microsecond)

	first := s.newEvent(userID, now.Add(-time.Minute))
	second := s.newEvent(userID, now)
	s.Require().NoError(s.store.AppendEvent(s.ctx, first))
	s.Require().NoError(s.store.AppendEvent(s.ctx, second))
	s.Require().NoError(s.store.AppendEvent(s.ctx, s.newEvent(id.UserID(uuid.New()), now)))

	events, err := s.store.ListEventsByUser(s.ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	// Oldest first.
	s.Equal(first.ID, events[0].ID)
	s.Equal(second.ID, events[1].ID)
	s.True(events[0].Pending())
}

func (s *PostgresFailsafeSuite) TestSettleRevocationExactlyOnce() {
	userID := id.UserID(uuid.New())
	event := s.newEvent(userID, time.Now().UTC())
	s.Require().NoError(s.store.AppendEvent(s.ctx, event))

	txRef := "0xcancel1"
	s.Require().NoError(s.store.SettleRevocation(s.ctx, event.ID, true, &txRef, time.Now().UTC()))

	// Second settle hits the settled_at guard.
	err := s.store.SettleRevocation(s.ctx, event.ID, false, nil, time.Now().UTC())
	s.Require().ErrorIs(err, sentinel.ErrInvalidState)

	events, err := s.store.ListEventsByUser(s.ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.False(events[0].Pending())
	s.True(events[0].IdentityRevoked)
	s.Require().NotNil(events[0].RevocationTxRef)
	s.Equal(txRef, *events[0].RevocationTxRef)
}

func (s *PostgresFailsafeSuite) TestSettleUnknownEvent() {
	err := s.store.SettleRevocation(s.ctx, id.NewEventID(), true, nil, time.Now().UTC())
	s.Require().ErrorIs(err, sentinel.ErrInvalidState)
}

func (s *PostgresFailsafeSuite) TestIdentityLifecycle() {
	userID := id.UserID(uuid.New())

	asset, err := s.store.GetIdentity(s.ctx, userID)
	s.Require().NoError(err)
	s.Nil(asset)

	s.Require().NoError(s.store.SaveIdentity(s.ctx, &models.IdentityAsset{
		UserID: userID, IdentityID: "7", Active: true,
	}))

	asset, err = s.store.GetIdentity(s.ctx, userID)
	s.Require().NoError(err)
	s.Require().NotNil(asset)
	s.True(asset.Active)

	s.Require().NoError(s.store.DeactivateIdentity(s.ctx, userID))
	// Idempotent.
	s.Require().NoError(s.store.DeactivateIdentity(s.ctx, userID))

	asset, err = s.store.GetIdentity(s.ctx, userID)
	s.Require().NoError(err)
	s.False(asset.Active)
}
