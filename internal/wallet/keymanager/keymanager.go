// Package keymanager owns generation and at-rest protection of signing keys.
// Keys never leave this package in plaintext except inside the scoped
// WithDecryptedKey callback.
package keymanager

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"blocktrust/internal/wallet/kdf"
	"blocktrust/internal/wallet/models"
	id "blocktrust/pkg/domain"
	dErrors "blocktrust/pkg/domain-errors"
)

const (
	nonceLen = 12
	// walletIDLen is the hex length of the derived wallet identifier.
	walletIDLen = 16
)

// Manager generates wallets and encrypts/decrypts their private keys under a
// password-derived key.
type Manager struct {
	iterations int
}

// New constructs a Manager with the configured KDF iteration count.
func New(iterations int) *Manager {
	return &Manager{iterations: iterations}
}

// Generate creates a fresh secp256k1 keypair and returns the custody record
// with the private key sealed under the password. The plaintext key exists
// only inside this call.
func (m *Manager) Generate(userID id.UserID, password string) (*models.WalletRecord, error) {
	if password == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "password cannot be empty")
	}

	priv, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	address := crypto.PubkeyToAddress(priv.PublicKey).Hex()

	salt := make([]byte, kdf.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	keyBytes := crypto.FromECDSA(priv)
	defer clear(keyBytes)

	blob, err := m.seal(keyBytes, []byte(password), salt)
	if err != nil {
		return nil, err
	}

	return &models.WalletRecord{
		UserID:              userID,
		WalletID:            deriveWalletID(address, salt),
		Address:             address,
		EncryptedPrivateKey: blob,
		Salt:                salt,
		CreatedAt:           time.Now().UTC(),
	}, nil
}

// WithDecryptedKey decrypts the wallet's private key, hands it to fn, and
// wipes it before returning. This is the only sanctioned way to use the key:
// no caching, no copies outliving the signing operation.
func (m *Manager) WithDecryptedKey(rec *models.WalletRecord, password string, fn func(priv *ecdsa.PrivateKey) error) error {
	keyBytes, err := m.open(rec.EncryptedPrivateKey, []byte(password), rec.Salt)
	if err != nil {
		return err
	}
	defer clear(keyBytes)

	priv, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		// Ciphertext authenticated but does not hold a valid key. Surface the
		// same error as a wrong password; see the CodeAuthentication doc.
		return dErrors.New(dErrors.CodeAuthentication, "invalid password or corrupted key data")
	}
	defer zeroKey(priv)

	return fn(priv)
}

// seal encrypts key material with AES-256-GCM under the password-derived key.
// Blob layout: nonce || ciphertext (the salt is stored beside the blob).
func (m *Manager) seal(plaintext, password, salt []byte) ([]byte, error) {
	aead, err := m.aead(password, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return append(nonce, aead.Seal(nil, nonce, plaintext, nil)...), nil
}

// open decrypts a sealed blob. Any failure — wrong password, truncated blob,
// flipped ciphertext bit — produces the identical AUTHENTICATION_FAILED
// error. The conflation is the contract: callers must not be able to tell
// "wrong password" from "corrupted ciphertext".
func (m *Manager) open(blob, password, salt []byte) ([]byte, error) {
	if len(blob) <= nonceLen {
		return nil, dErrors.New(dErrors.CodeAuthentication, "invalid password or corrupted key data")
	}

	aead, err := m.aead(password, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, blob[:nonceLen], blob[nonceLen:], nil)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeAuthentication, "invalid password or corrupted key data")
	}
	return plaintext, nil
}

func (m *Manager) aead(password, salt []byte) (cipher.AEAD, error) {
	key, err := kdf.Derive(password, salt, m.iterations, kdf.KeyLen)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// deriveWalletID produces the opaque stable wallet identifier from the
// address and salt.
func deriveWalletID(address string, salt []byte) string {
	sum := sha256.Sum256([]byte(address + hex.EncodeToString(salt)))
	return hex.EncodeToString(sum[:])[:walletIDLen]
}

func zeroKey(priv *ecdsa.PrivateKey) {
	if priv != nil && priv.D != nil {
		priv.D.SetInt64(0)
	}
}
