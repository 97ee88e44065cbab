package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"blocktrust/internal/failsafe/models"
	id "blocktrust/pkg/domain"
	"blocktrust/pkg/platform/sentinel"
)

// PostgresStore persists failsafe events and identity assets in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed failsafe store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) AppendEvent(ctx context.Context, event *models.FailsafeEvent) error {
	query := `
		INSERT INTO failsafe_events (id, user_id, triggered_at, reason, identity_revoked, revocation_tx_ref, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(event.ID),
		uuid.UUID(event.UserID),
		event.TriggeredAt,
		event.Reason,
		event.IdentityRevoked,
		event.RevocationTxRef,
		event.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("append failsafe event: %w", err)
	}
	return nil
}

// SettleRevocation backfills the revocation outcome. The settled_at guard in
// the WHERE clause makes the backfill atomic and exactly-once.
func (s *PostgresStore) SettleRevocation(ctx context.Context, eventID id.EventID, revoked bool, txRef *string, at time.Time) error {
	query := `
		UPDATE failsafe_events
		SET identity_revoked = $2, revocation_tx_ref = $3, settled_at = $4
		WHERE id = $1 AND settled_at IS NULL
	`
	res, err := s.db.ExecContext(ctx, query, uuid.UUID(eventID), revoked, txRef, at)
	if err != nil {
		return fmt.Errorf("settle revocation: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("settle revocation: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrInvalidState
	}
	return nil
}

func (s *PostgresStore) ListEventsByUser(ctx context.Context, userID id.UserID) ([]*models.FailsafeEvent, error) {
	query := `
		SELECT id, user_id, triggered_at, reason, identity_revoked, revocation_tx_ref, settled_at
		FROM failsafe_events
		WHERE user_id = $1
		ORDER BY triggered_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list failsafe events: %w", err)
	}
	defer rows.Close()

	var out []*models.FailsafeEvent
	for rows.Next() {
		var (
			event      models.FailsafeEvent
			eventID    uuid.UUID
			eventOwner uuid.UUID
		)
		if err := rows.Scan(&eventID, &eventOwner, &event.TriggeredAt, &event.Reason,
			&event.IdentityRevoked, &event.RevocationTxRef, &event.SettledAt); err != nil {
			return nil, fmt.Errorf("scan failsafe event: %w", err)
		}
		event.ID = id.EventID(eventID)
		event.UserID = id.UserID(eventOwner)
		out = append(out, &event)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetIdentity(ctx context.Context, userID id.UserID) (*models.IdentityAsset, error) {
	query := `
		SELECT user_id, identity_id, active
		FROM identity_assets
		WHERE user_id = $1
	`
	var (
		asset models.IdentityAsset
		uid   uuid.UUID
	)
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(userID)).Scan(&uid, &asset.IdentityID, &asset.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get identity asset: %w", err)
	}
	asset.UserID = id.UserID(uid)
	return &asset, nil
}

func (s *PostgresStore) SaveIdentity(ctx context.Context, asset *models.IdentityAsset) error {
	query := `
		INSERT INTO identity_assets (user_id, identity_id, active)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			identity_id = EXCLUDED.identity_id,
			active = EXCLUDED.active
	`
	_, err := s.db.ExecContext(ctx, query, uuid.UUID(asset.UserID), asset.IdentityID, asset.Active)
	if err != nil {
		return fmt.Errorf("save identity asset: %w", err)
	}
	return nil
}

// DeactivateIdentity is a one-way, idempotent atomic write.
func (s *PostgresStore) DeactivateIdentity(ctx context.Context, userID id.UserID) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE identity_assets SET active = FALSE WHERE user_id = $1`,
		uuid.UUID(userID),
	)
	if err != nil {
		return fmt.Errorf("deactivate identity asset: %w", err)
	}
	return nil
}
