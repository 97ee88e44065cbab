package registry

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "blocktrust/pkg/domain-errors"
)

func TestSelector(t *testing.T) {
	// Known keccak selectors, checkable against any ABI tool.
	assert.Equal(t, "a9059cbb", hex.EncodeToString(selector("transfer(address,uint256)")))
	assert.Equal(t, "70a08231", hex.EncodeToString(selector("balanceOf(address)")))
}

func TestPadAddress(t *testing.T) {
	got := padAddress("0x1111111111111111111111111111111111111111")
	require.Len(t, got, 32)
	assert.Equal(t,
		"0000000000000000000000001111111111111111111111111111111111111111",
		hex.EncodeToString(got))
}

func TestPadUint(t *testing.T) {
	got := padUint(big.NewInt(255))
	require.Len(t, got, 32)
	assert.Equal(t, byte(0xff), got[31])
}

func TestPadBytes(t *testing.T) {
	got := padBytes([]byte("abc"))
	// One length word plus one right-padded data word.
	require.Len(t, got, 64)
	assert.Equal(t, byte(3), got[31])
	assert.Equal(t, "abc", string(got[32:35]))
	assert.Equal(t, byte(0), got[63])

	// Word-aligned input gains no padding.
	aligned := padBytes(make([]byte, 32))
	assert.Len(t, aligned, 64)

	empty := padBytes(nil)
	assert.Len(t, empty, 32)
}

func TestParseIdentityID(t *testing.T) {
	n, err := parseIdentityID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.Int64())

	for _, bad := range []string{"", "abc", "-1", "0x10"} {
		_, err := parseIdentityID(bad)
		require.Error(t, err, bad)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	}
}
