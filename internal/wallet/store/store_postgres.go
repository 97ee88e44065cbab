package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
	"blocktrust/pkg/platform/sentinel"
)

// PostgresStore persists wallet records in PostgreSQL. Pure I/O — uniqueness
// and not-found facts surface as sentinels for the service to translate.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed wallet store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, rec *models.WalletRecord) error {
	query := `
		INSERT INTO wallets (user_id, wallet_id, address, encrypted_private_key, salt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(rec.UserID),
		rec.WalletID,
		rec.Address,
		rec.EncryptedPrivateKey,
		rec.Salt,
		rec.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create wallet: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetByUser(ctx context.Context, userID id.UserID) (*models.WalletRecord, error) {
	query := `
		SELECT user_id, wallet_id, address, encrypted_private_key, salt, created_at
		FROM wallets
		WHERE user_id = $1
	`
	var (
		rec models.WalletRecord
		uid uuid.UUID
	)
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(userID)).Scan(
		&uid, &rec.WalletID, &rec.Address, &rec.EncryptedPrivateKey, &rec.Salt, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	rec.UserID = id.UserID(uid)
	return &rec, nil
}
