// Package signer produces signatures: real ones from decrypted keys, and
// decoys from nothing at all.
package signer

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"blocktrust/internal/wallet/models"
	dErrors "blocktrust/pkg/domain-errors"
)

// Engine signs messages and transactions with a real private key. It is
// deterministic given identical inputs and has no side effects; key custody
// belongs to the keymanager.
type Engine struct {
	chainID *big.Int
}

// New constructs an Engine. chainID is only used for transaction signing.
func New(chainID int64) *Engine {
	return &Engine{chainID: big.NewInt(chainID)}
}

// SignMessage signs payload under the personal-message domain-separation
// prefix ("\x19Ethereum Signed Message:\n" + len). Verifiers depend on this
// convention bit-for-bit; do not change the prefix.
func (e *Engine) SignMessage(payload []byte, priv *ecdsa.PrivateKey) (models.SignatureResult, error) {
	if len(payload) == 0 {
		return models.SignatureResult{}, dErrors.New(dErrors.CodeInvalidInput, "payload cannot be empty")
	}

	hash := accounts.TextHash(payload)
	sig, err := crypto.Sign(hash, priv)
	if err != nil {
		return models.SignatureResult{}, fmt.Errorf("sign message: %w", err)
	}
	// Shift the recovery id into the 27/28 convention wallets expect.
	sig[64] += 27

	return models.SignatureResult{
		Signature:     hexutil.Encode(sig),
		MessageHash:   hexutil.Encode(hash),
		SignerAddress: crypto.PubkeyToAddress(priv.PublicKey).Hex(),
		Mode:          models.ModeNormal,
	}, nil
}

// TxParams carries chain-state inputs (nonce, gas) supplied by the external
// chain collaborator. The engine embeds them verbatim before signing.
type TxParams struct {
	Nonce    uint64
	To       string
	Value    *big.Int
	GasLimit uint64
	GasPrice *big.Int
	Data     []byte
}

// SignTransaction signs a legacy transaction under EIP-155 replay protection
// and returns the raw RLP-encoded transaction as hex.
func (e *Engine) SignTransaction(params TxParams, priv *ecdsa.PrivateKey) (string, error) {
	if !common.IsHexAddress(params.To) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid recipient address")
	}

	to := common.HexToAddress(params.To)
	value := params.Value
	if value == nil {
		value = big.NewInt(0)
	}

	tx := types.NewTransaction(params.Nonce, to, value, params.GasLimit, params.GasPrice, params.Data)
	signed, err := types.SignTx(tx, types.NewEIP155Signer(e.chainID), priv)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("encode transaction: %w", err)
	}
	return hexutil.Encode(raw), nil
}

// Verify reports whether signature recovers to address for payload under the
// same message prefix used by SignMessage.
func (e *Engine) Verify(payload []byte, signature, address string) bool {
	sig, err := decodeSignature(signature)
	if err != nil {
		return false
	}
	// Normalize the recovery id back for Ecrecover.
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(payload), sig)
	if err != nil {
		return false
	}
	recovered := crypto.PubkeyToAddress(*pub).Hex()
	return strings.EqualFold(recovered, address)
}

func decodeSignature(signature string) ([]byte, error) {
	s := strings.TrimPrefix(signature, "0x")
	sig, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(sig) != SignatureLen {
		return nil, fmt.Errorf("signature must be %d bytes, got %d", SignatureLen, len(sig))
	}
	return sig, nil
}
