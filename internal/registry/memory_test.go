package registry

import (
	"context"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "0x1111111111111111111111111111111111111111"

func TestMemory_MintActivates(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory()

	active, err := reg.IsActive(ctx, owner)
	require.NoError(t, err)
	assert.False(t, active)

	identityID, txRef, err := reg.Mint(ctx, owner, []byte(`{"kyc":"verified"}`), "")
	require.NoError(t, err)
	assert.NotEmpty(t, identityID)
	assert.NotEmpty(t, txRef)

	active, err = reg.IsActive(ctx, owner)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestMemory_CancelIsIdempotent(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory()

	identityID, _, err := reg.Mint(ctx, owner, nil, "")
	require.NoError(t, err)

	_, err = reg.Cancel(ctx, owner, identityID)
	require.NoError(t, err)

	active, err := reg.IsActive(ctx, owner)
	require.NoError(t, err)
	assert.False(t, active)

	// Cancelling an already-inactive identity is a contractual no-op.
	txRef, err := reg.Cancel(ctx, owner, identityID)
	require.NoError(t, err)
	assert.NotEmpty(t, txRef)
	assert.Equal(t, 2, reg.CancelCalls)
}

func TestMemory_FailCancel(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory()
	reg.FailCancel = errors.New("chain unavailable")

	identityID, _, err := reg.Mint(ctx, owner, nil, "")
	require.NoError(t, err)

	_, err = reg.Cancel(ctx, owner, identityID)
	require.Error(t, err)

	// A failed cancel leaves the asset untouched.
	active, err := reg.IsActive(ctx, owner)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestMemory_RegisterProof(t *testing.T) {
	reg := NewMemory()

	hash := sha256.Sum256([]byte("document"))
	txRef, err := reg.RegisterProof(context.Background(), hash, "https://proofs.example.com/1")
	require.NoError(t, err)
	assert.NotEmpty(t, txRef)
}
