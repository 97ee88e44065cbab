package keymanager

import (
	"crypto/ecdsa"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "blocktrust/pkg/domain"
	dErrors "blocktrust/pkg/domain-errors"
)

const testIterations = 1024

type KeyManagerSuite struct {
	suite.Suite
	mgr    *Manager
	userID id.UserID
}

func TestKeyManagerSuite(t *testing.T) {
	suite.Run(t, new(KeyManagerSuite))
}

func (s *KeyManagerSuite) SetupTest() {
	s.mgr = New(testIterations)
	s.userID = id.UserID(uuid.New())
}

func (s *KeyManagerSuite) TestGenerate() {
	rec, err := s.mgr.Generate(s.userID, "correct-horse")
	s.Require().NoError(err)

	s.Equal(s.userID, rec.UserID)
	s.Len(rec.WalletID, 16)
	s.Regexp("^0x[0-9a-fA-F]{40}$", rec.Address)
	s.Len(rec.Salt, 16)
	s.NotEmpty(rec.EncryptedPrivateKey)
	s.False(rec.CreatedAt.IsZero())
}

func (s *KeyManagerSuite) TestGenerateEmptyPassword() {
	_, err := s.mgr.Generate(s.userID, "")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *KeyManagerSuite) TestGenerateIsUnique() {
	first, err := s.mgr.Generate(s.userID, "correct-horse")
	s.Require().NoError(err)
	second, err := s.mgr.Generate(s.userID, "correct-horse")
	s.Require().NoError(err)

	s.NotEqual(first.Address, second.Address)
	s.NotEqual(first.WalletID, second.WalletID)
	s.NotEqual(first.Salt, second.Salt)
}

func (s *KeyManagerSuite) TestDecryptRoundTrip() {
	rec, err := s.mgr.Generate(s.userID, "correct-horse")
	s.Require().NoError(err)

	err = s.mgr.WithDecryptedKey(rec, "correct-horse", func(priv *ecdsa.PrivateKey) error {
		// The decrypted key must recover the address on the record.
		s.Equal(rec.Address, crypto.PubkeyToAddress(priv.PublicKey).Hex())
		return nil
	})
	s.Require().NoError(err)
}

// Wrong password and damaged ciphertext must be indistinguishable to the
// caller: same code, same message.
func (s *KeyManagerSuite) TestDecryptFailuresAreUniform() {
	rec, err := s.mgr.Generate(s.userID, "correct-horse")
	s.Require().NoError(err)

	noCall := func(priv *ecdsa.PrivateKey) error {
		s.Fail("callback must not run on decryption failure")
		return nil
	}

	wrongPassword := s.mgr.WithDecryptedKey(rec, "wrong-password", noCall)
	s.Require().Error(wrongPassword)
	s.True(dErrors.HasCode(wrongPassword, dErrors.CodeAuthentication))

	corrupted := *rec
	corrupted.EncryptedPrivateKey = append([]byte(nil), rec.EncryptedPrivateKey...)
	corrupted.EncryptedPrivateKey[len(corrupted.EncryptedPrivateKey)-1] ^= 0xFF
	corruptedErr := s.mgr.WithDecryptedKey(&corrupted, "correct-horse", noCall)
	s.Require().Error(corruptedErr)
	s.True(dErrors.HasCode(corruptedErr, dErrors.CodeAuthentication))

	truncated := *rec
	truncated.EncryptedPrivateKey = rec.EncryptedPrivateKey[:8]
	truncatedErr := s.mgr.WithDecryptedKey(&truncated, "correct-horse", noCall)
	s.Require().Error(truncatedErr)
	s.True(dErrors.HasCode(truncatedErr, dErrors.CodeAuthentication))

	s.Equal(wrongPassword.Error(), corruptedErr.Error())
	s.Equal(wrongPassword.Error(), truncatedErr.Error())
}

func (s *KeyManagerSuite) TestIterationCountBindsCiphertext() {
	rec, err := s.mgr.Generate(s.userID, "correct-horse")
	s.Require().NoError(err)

	// A manager with a different iteration count derives a different key and
	// cannot open the blob.
	other := New(testIterations * 2)
	err = other.WithDecryptedKey(rec, "correct-horse", func(priv *ecdsa.PrivateKey) error { return nil })
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeAuthentication))
}

func (s *KeyManagerSuite) TestWalletIDDerivation() {
	salt := []byte("0123456789abcdef")
	address := "0x1111111111111111111111111111111111111111"

	s.Equal(deriveWalletID(address, salt), deriveWalletID(address, salt))
	s.NotEqual(deriveWalletID(address, salt), deriveWalletID(address, []byte("fedcba9876543210")))
	s.Len(deriveWalletID(address, salt), 16)
}
