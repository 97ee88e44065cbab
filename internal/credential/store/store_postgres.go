package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"blocktrust/internal/credential/models"
	id "blocktrust/pkg/domain"
	"blocktrust/pkg/platform/sentinel"
)

// PostgresStore persists credential pairs in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed credential store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, userID id.UserID) (*models.CredentialPair, error) {
	query := `
		SELECT normal_password_hash, duress_password_hash, duress_configured, last_duress_trigger_at
		FROM credentials
		WHERE user_id = $1
	`
	var pair models.CredentialPair
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(userID)).Scan(
		&pair.NormalPasswordHash,
		&pair.DuressPasswordHash,
		&pair.DuressConfigured,
		&pair.LastDuressTriggerAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get credentials: %w", err)
	}
	return &pair, nil
}

func (s *PostgresStore) CreateNormal(ctx context.Context, userID id.UserID, normalHash string) error {
	query := `
		INSERT INTO credentials (user_id, normal_password_hash, duress_configured)
		VALUES ($1, $2, FALSE)
	`
	_, err := s.db.ExecContext(ctx, query, uuid.UUID(userID), normalHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create credentials: %w", err)
	}
	return nil
}

func (s *PostgresStore) SetDuress(ctx context.Context, userID id.UserID, duressHash string) error {
	query := `
		UPDATE credentials
		SET duress_password_hash = $2, duress_configured = TRUE
		WHERE user_id = $1
	`
	res, err := s.db.ExecContext(ctx, query, uuid.UUID(userID), duressHash)
	if err != nil {
		return fmt.Errorf("set duress hash: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set duress hash: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// TouchDuressTrigger advances last_duress_trigger_at atomically. GREATEST
// makes the write monotonic so two concurrent duress requests cannot race
// the column backwards.
func (s *PostgresStore) TouchDuressTrigger(ctx context.Context, userID id.UserID, at time.Time) error {
	query := `
		UPDATE credentials
		SET last_duress_trigger_at = GREATEST(COALESCE(last_duress_trigger_at, $2), $2)
		WHERE user_id = $1
	`
	res, err := s.db.ExecContext(ctx, query, uuid.UUID(userID), at)
	if err != nil {
		return fmt.Errorf("touch duress trigger: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("touch duress trigger: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
