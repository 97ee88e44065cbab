package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"blocktrust/internal/credential/models"
	"blocktrust/internal/credential/resolver"
	"blocktrust/internal/failsafe/service/mocks"
	"blocktrust/internal/registry"
	walletModels "blocktrust/internal/wallet/models"
	"blocktrust/internal/wallet/signer"
	id "blocktrust/pkg/domain"
	dErrors "blocktrust/pkg/domain-errors"
	"blocktrust/pkg/platform/sentinel"
	"blocktrust/pkg/secrets"
)

type mockDeps struct {
	wallets  *mocks.MockWalletStore
	creds    *mocks.MockCredentialStore
	events   *mocks.MockFailsafeStore
	history  *mocks.MockHistoryStore
	keys     *mocks.MockKeyManager
	classify *mocks.MockClassifier
	lockout  *mocks.MockLockout
	registry *registry.Memory
}

func newMockedService(t *testing.T, opts ...Option) (*Service, mockDeps) {
	ctrl := gomock.NewController(t)
	deps := mockDeps{
		wallets:  mocks.NewMockWalletStore(ctrl),
		creds:    mocks.NewMockCredentialStore(ctrl),
		events:   mocks.NewMockFailsafeStore(ctrl),
		history:  mocks.NewMockHistoryStore(ctrl),
		keys:     mocks.NewMockKeyManager(ctrl),
		classify: mocks.NewMockClassifier(ctrl),
		lockout:  mocks.NewMockLockout(ctrl),
		registry: registry.NewMemory(),
	}
	opts = append([]Option{WithLockout(deps.lockout), WithRevocationRetry(1, 0)}, opts...)
	svc := New(
		deps.wallets,
		deps.creds,
		deps.events,
		deps.history,
		deps.registry,
		deps.keys,
		signer.New(1337),
		deps.classify,
		opts...,
	)
	return svc, deps
}

func TestSignLockedOut(t *testing.T) {
	svc, deps := newMockedService(t)
	userID := id.UserID(uuid.New())

	deps.lockout.EXPECT().
		Check(gomock.Any(), userID.String()).
		Return(dErrors.New(dErrors.CodeForbidden, "too many failed attempts"))

	_, err := svc.Sign(context.Background(), userID, walletModels.SigningRequest{
		Payload:  []byte("doc"),
		Password: "pw",
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}

func TestSignWalletStoreFailure(t *testing.T) {
	svc, deps := newMockedService(t)
	userID := id.UserID(uuid.New())

	deps.lockout.EXPECT().Check(gomock.Any(), userID.String()).Return(nil)
	deps.wallets.EXPECT().
		GetByUser(gomock.Any(), userID).
		Return(nil, errors.New("connection refused"))

	_, err := svc.Sign(context.Background(), userID, walletModels.SigningRequest{
		Payload:  []byte("doc"),
		Password: "pw",
	})
	require.Error(t, err)
	assert.False(t, dErrors.HasCode(err, dErrors.CodeAuthentication))
}

// A duress trigger whose event append fails must abort the whole request:
// no decoy success, no trigger-time write, and above all no revocation
// without its durable audit record.
func TestDuressAbortsOnEventStoreFailure(t *testing.T) {
	svc, deps := newMockedService(t)
	userID := id.UserID(uuid.New())
	hash, err := secrets.Hash("normal-pw")
	require.NoError(t, err)
	pair := &models.CredentialPair{NormalPasswordHash: hash, DuressConfigured: true}
	rec := &walletModels.WalletRecord{UserID: userID, Address: "0x00000000000000000000000000000000deadbeef"}

	deps.lockout.EXPECT().Check(gomock.Any(), userID.String()).Return(nil)
	deps.wallets.EXPECT().GetByUser(gomock.Any(), userID).Return(rec, nil)
	deps.creds.EXPECT().Get(gomock.Any(), userID).Return(pair, nil)
	deps.classify.EXPECT().Classify("duress-pw", *pair).Return(resolver.Duress)
	deps.lockout.EXPECT().OnSuccess(gomock.Any(), userID.String())
	deps.events.EXPECT().AppendEvent(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err = svc.Sign(context.Background(), userID, walletModels.SigningRequest{
		Payload:  []byte("doc"),
		Password: "duress-pw",
	})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, svc.Close(ctx))
	assert.Zero(t, deps.registry.CancelCalls)
}

func TestCreateWalletKeyGenerationFailure(t *testing.T) {
	svc, deps := newMockedService(t)
	userID := id.UserID(uuid.New())

	deps.creds.EXPECT().Get(gomock.Any(), userID).Return(nil, sentinel.ErrNotFound)
	deps.creds.EXPECT().CreateNormal(gomock.Any(), userID, gomock.Any()).Return(nil)
	deps.keys.EXPECT().Generate(userID, "pw").Return(nil, errors.New("entropy exhausted"))

	_, err := svc.CreateWallet(context.Background(), userID, "pw")
	require.Error(t, err)
}
