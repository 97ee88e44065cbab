//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"blocktrust/internal/history/models"
	walletModels "blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
	"blocktrust/pkg/testutil/containers"
)

type PostgresHistorySuite struct {
	suite.Suite
	ctx   context.Context
	pg    *containers.PostgresContainer
	store *PostgresStore
}

func TestPostgresHistorySuite(t *testing.T) {
	suite.Run(t, new(PostgresHistorySuite))
}

func (s *PostgresHistorySuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresHistorySuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(s.ctx, "signature_records"))
}

func (s *PostgresHistorySuite) record(userID id.UserID, mode walletModels.SignatureMode, at time.Time) *models.SignatureRecord {
	return &models.SignatureRecord{
		ID:          id.NewEventID(),
		UserID:      userID,
		PayloadHash: "abcd1234",
		Signature:   "0xsignature",
		Mode:        mode,
		SignedAt:    at,
	}
}

func (s *PostgresHistorySuite) TestAppendAndList() {
	userID := id.UserID(uuid.New())
	now := time.Now().UTC().Truncate(time.Microsecond)

	older := s.record(userID, walletModels.ModeNormal, now.Add(-time.Hour))
	newer := s.record(userID, walletModels.ModeDuress, now)
	s.Require().NoError(s.store.Append(s.ctx, older))
	s.Require().NoError(s.store.Append(s.ctx, newer))
	s.Require().NoError(s.store.Append(s.ctx, s.record(id.UserID(uuid.New()), walletModels.ModeNormal, now)))

	records, err := s.store.ListByUser(s.ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	// Newest first; duress rows are stored like any other.
	s.Equal(newer.ID, records[0].ID)
	s.Equal(walletModels.ModeDuress, records[0].Mode)
	s.Equal(older.ID, records[1].ID)
}

func (s *PostgresHistorySuite) TestListEmpty() {
	records, err := s.store.ListByUser(s.ctx, id.UserID(uuid.New()))
	s.Require().NoError(err)
	s.Empty(records)
}
