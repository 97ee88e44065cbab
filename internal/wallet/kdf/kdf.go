// Package kdf derives symmetric encryption keys from passwords.
package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	dErrors "blocktrust/pkg/domain-errors"
)

const (
	// SaltLen is the per-wallet salt size. Fixed at wallet creation.
	SaltLen = 16
	// KeyLen is the derived AES-256 key size.
	KeyLen = 32
)

// Derive stretches a password into a symmetric key with PBKDF2-HMAC-SHA256.
// Deterministic: the same (password, salt, iterations) always yields the same
// key. The iteration count is configuration, not a constant, because it is a
// security/latency tradeoff that deployments must pick deliberately.
func Derive(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if len(password) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "password cannot be empty")
	}
	if len(salt) != SaltLen {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "salt must be 16 bytes")
	}
	if iterations <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "iterations must be positive")
	}
	if keyLen <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "key length must be positive")
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New), nil
}
