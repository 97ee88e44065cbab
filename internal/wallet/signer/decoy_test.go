package signer

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blocktrust/internal/wallet/models"
)

func TestDecoySign(t *testing.T) {
	decoy := NewDecoy()
	payload := []byte("coerced signing request")

	result, err := decoy.Sign(payload)
	require.NoError(t, err)

	sig, err := hex.DecodeString(strings.TrimPrefix(result.Signature, "0x"))
	require.NoError(t, err)
	assert.Len(t, sig, SignatureLen)
	assert.Contains(t, []byte{27, 28}, sig[64])

	assert.Equal(t, ZeroAddress, result.SignerAddress)
	assert.Equal(t, models.ModeDuress, result.Mode)
	assert.NotEmpty(t, result.Warning)
}

// A decoy must carry the same message hash a real signature would, so the
// response shape gives nothing away.
func TestDecoyHashMatchesEngine(t *testing.T) {
	decoy := NewDecoy()
	engine := New(1)
	payload := []byte("same payload")

	fromDecoy, err := decoy.Sign(payload)
	require.NoError(t, err)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	fromEngine, err := engine.SignMessage(payload, key)
	require.NoError(t, err)

	assert.Equal(t, fromEngine.MessageHash, fromDecoy.MessageHash)
}

func TestDecoyNeverVerifies(t *testing.T) {
	decoy := NewDecoy()
	engine := New(1)
	payload := []byte("coerced signing request")

	result, err := decoy.Sign(payload)
	require.NoError(t, err)

	assert.False(t, engine.Verify(payload, result.Signature, result.SignerAddress))
}

func TestDecoyIsNonDeterministic(t *testing.T) {
	decoy := NewDecoy()
	payload := []byte("same payload, different signatures")

	first, err := decoy.Sign(payload)
	require.NoError(t, err)
	second, err := decoy.Sign(payload)
	require.NoError(t, err)

	assert.NotEqual(t, first.Signature, second.Signature)
}
