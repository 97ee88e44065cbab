package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"blocktrust/internal/history/models"
	walletModels "blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
)

// PostgresStore persists signature records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed history store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, rec *models.SignatureRecord) error {
	query := `
		INSERT INTO signature_records (id, user_id, payload_hash, signature, document_name, document_url, mode, tx_ref, signed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(rec.ID),
		uuid.UUID(rec.UserID),
		rec.PayloadHash,
		rec.Signature,
		rec.DocumentName,
		rec.DocumentURL,
		string(rec.Mode),
		rec.TxRef,
		rec.SignedAt,
	)
	if err != nil {
		return fmt.Errorf("append signature record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.SignatureRecord, error) {
	query := `
		SELECT id, user_id, payload_hash, signature, document_name, document_url, mode, tx_ref, signed_at
		FROM signature_records
		WHERE user_id = $1
		ORDER BY signed_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list signature records: %w", err)
	}
	defer rows.Close()

	var out []*models.SignatureRecord
	for rows.Next() {
		var (
			rec   models.SignatureRecord
			recID uuid.UUID
			uid   uuid.UUID
			mode  string
		)
		if err := rows.Scan(&recID, &uid, &rec.PayloadHash, &rec.Signature, &rec.DocumentName,
			&rec.DocumentURL, &mode, &rec.TxRef, &rec.SignedAt); err != nil {
			return nil, fmt.Errorf("scan signature record: %w", err)
		}
		rec.ID = id.EventID(recID)
		rec.UserID = id.UserID(uid)
		rec.Mode = walletModels.SignatureMode(mode)
		out = append(out, &rec)
	}
	return out, rows.Err()
}
