package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocktrust/internal/history/models"
	walletModels "blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
)

func TestInMemoryStore_NewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	userID := id.UserID(uuid.New())

	base := time.Now().UTC()
	for i, name := range []string{"first.pdf", "second.pdf", "third.pdf"} {
		require.NoError(t, store.Append(ctx, &models.SignatureRecord{
			ID:           id.EventID(uuid.New()),
			UserID:       userID,
			DocumentName: name,
			Mode:         walletModels.ModeNormal,
			SignedAt:     base.Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := store.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third.pdf", records[0].DocumentName)
	assert.Equal(t, "first.pdf", records[2].DocumentName)
}

func TestInMemoryStore_ScopedToUser(t *testing.T) {
	ctx := context.Background()
	store := NewInMemory()
	owner := id.UserID(uuid.New())

	require.NoError(t, store.Append(ctx, &models.SignatureRecord{
		ID:     id.EventID(uuid.New()),
		UserID: owner,
	}))
	require.NoError(t, store.Append(ctx, &models.SignatureRecord{
		ID:     id.EventID(uuid.New()),
		UserID: id.UserID(uuid.New()),
	}))

	records, err := store.ListByUser(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = store.ListByUser(ctx, id.UserID(uuid.New()))
	require.NoError(t, err)
	assert.Empty(t, records)
}
