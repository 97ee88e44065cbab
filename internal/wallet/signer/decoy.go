package signer

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"blocktrust/internal/wallet/models"
)

// SignatureLen is the byte length of an encoded signature (r || s || v).
const SignatureLen = 65

// ZeroAddress is the sentinel signer for decoy signatures. The design goal is
// "this document was never really signed", not "signed by an impostor", so a
// decoy never claims the user's real address.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Decoy produces structurally valid signatures from pure randomness. It holds
// no key material and shares no RNG state with key generation, so a decoy can
// neither be produced from nor reversed to a real key.
type Decoy struct{}

// NewDecoy constructs a Decoy signer.
func NewDecoy() *Decoy {
	return &Decoy{}
}

// Sign fabricates a signature with the exact byte length and encoding of a
// real one. The message hash uses the same prefix convention as the engine so
// the response shape is indistinguishable from the normal path.
func (d *Decoy) Sign(payload []byte) (models.SignatureResult, error) {
	sig := make([]byte, SignatureLen)
	if _, err := io.ReadFull(rand.Reader, sig); err != nil {
		return models.SignatureResult{}, fmt.Errorf("generate decoy signature: %w", err)
	}
	// Clamp v to the 27/28 convention so the output parses like any other
	// signature.
	sig[64] = 27 + (sig[64] & 1)

	return models.SignatureResult{
		Signature:     hexutil.Encode(sig),
		MessageHash:   hexutil.Encode(accounts.TextHash(payload)),
		SignerAddress: ZeroAddress,
		Mode:          models.ModeDuress,
		Warning:       "emergency signature - identity asset will be revoked",
	}, nil
}
