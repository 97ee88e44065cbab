package jwttoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "blocktrust/pkg/domain-errors"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-signing-key", "blocktrust", "blocktrust-api")
	userID := uuid.New()
	sessionID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, sessionID, time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, sessionID.String(), claims.SessionID)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-signing-key", "blocktrust", "blocktrust-api")

	token, err := svc.GenerateAccessToken(uuid.New(), uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestJWTService_RejectsWrongKey(t *testing.T) {
	svc := NewJWTService("test-signing-key", "blocktrust", "blocktrust-api")
	other := NewJWTService("different-key", "blocktrust", "blocktrust-api")

	token, err := svc.GenerateAccessToken(uuid.New(), uuid.New(), time.Minute)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-signing-key", "blocktrust", "blocktrust-api")

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
