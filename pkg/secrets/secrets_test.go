package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "blocktrust/pkg/domain-errors"
)

func TestHashAndMatches(t *testing.T) {
	hash, err := Hash("hunter2-but-longer")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2-but-longer", hash)

	assert.True(t, Matches("hunter2-but-longer", hash))
	assert.False(t, Matches("wrong", hash))
	assert.False(t, Matches("hunter2-but-longer", "not-a-bcrypt-hash"))
}

func TestHashRejectsEmptySecret(t *testing.T) {
	_, err := Hash("")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestHashRejectsOverlongSecret(t *testing.T) {
	// bcrypt caps input at 72 bytes.
	_, err := Hash(strings.Repeat("a", 100))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestVerify(t *testing.T) {
	hash, err := Hash("correct-horse-battery")
	require.NoError(t, err)

	require.NoError(t, Verify("correct-horse-battery", hash))

	err = Verify("wrong", hash)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeAuthentication))
}
