package models

import (
	"time"

	id "blocktrust/pkg/domain"
)

// WalletRecord is the persisted custody record for one user identity.
// Created once, never mutated, deleted only with the owning account.
//
// Invariants:
//   - EncryptedPrivateKey is only decryptable by re-deriving the key from the
//     correct password and the stored Salt
//   - no plaintext copy of the private key is ever persisted or logged
type WalletRecord struct {
	UserID              id.UserID
	WalletID            string
	Address             string
	EncryptedPrivateKey []byte
	Salt                []byte
	CreatedAt           time.Time
}

// SignatureMode discriminates real signatures from duress decoys. The field
// is surfaced to the legitimate caller on purpose: the coerced account owner
// needs to see, later, that the decoy fired. It is not a leak because the
// threat model assumes the adversary is physically present, not reading raw
// API responses.
type SignatureMode string

const (
	ModeNormal SignatureMode = "normal"
	ModeDuress SignatureMode = "duress"
)

// SignatureResult is the tagged outcome of a signing request. Both modes
// produce the exact same shape; only Mode and Warning differ.
type SignatureResult struct {
	Signature     string        `json:"signature"`
	MessageHash   string        `json:"message_hash"`
	SignerAddress string        `json:"address"`
	Mode          SignatureMode `json:"mode"`
	Warning       string        `json:"warning,omitempty"`
}

// SigningRequest is the ephemeral unit of work entering the orchestrator.
// Never persisted; the password lives only as long as the request.
type SigningRequest struct {
	Payload          []byte
	Password         string
	FailsafeOverride bool
	DocumentName     string
	DocumentURL      string
}
