// Package service orchestrates wallet custody, signing, and the duress
// failsafe. It is the only place where password classification, key access,
// decoy signing, and identity revocation meet.
package service

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"blocktrust/internal/audit"
	credentialModels "blocktrust/internal/credential/models"
	"blocktrust/internal/credential/resolver"
	failsafeModels "blocktrust/internal/failsafe/models"
	historyModels "blocktrust/internal/history/models"
	"blocktrust/internal/platform/metrics"
	"blocktrust/internal/registry"
	walletModels "blocktrust/internal/wallet/models"
	"blocktrust/internal/wallet/signer"
	id "blocktrust/pkg/domain"
	dErrors "blocktrust/pkg/domain-errors"
	"blocktrust/pkg/platform/sentinel"
	"blocktrust/pkg/secrets"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mocks.go -package=mocks

// WalletStore persists custody records.
type WalletStore interface {
	Create(ctx context.Context, rec *walletModels.WalletRecord) error
	GetByUser(ctx context.Context, userID id.UserID) (*walletModels.WalletRecord, error)
}

// CredentialStore persists password hashes and the duress configuration.
type CredentialStore interface {
	Get(ctx context.Context, userID id.UserID) (*credentialModels.CredentialPair, error)
	CreateNormal(ctx context.Context, userID id.UserID, normalHash string) error
	SetDuress(ctx context.Context, userID id.UserID, duressHash string) error
	TouchDuressTrigger(ctx context.Context, userID id.UserID, at time.Time) error
}

// FailsafeStore persists duress events and identity assets.
type FailsafeStore interface {
	AppendEvent(ctx context.Context, event *failsafeModels.FailsafeEvent) error
	SettleRevocation(ctx context.Context, eventID id.EventID, revoked bool, txRef *string, at time.Time) error
	ListEventsByUser(ctx context.Context, userID id.UserID) ([]*failsafeModels.FailsafeEvent, error)
	GetIdentity(ctx context.Context, userID id.UserID) (*failsafeModels.IdentityAsset, error)
	SaveIdentity(ctx context.Context, asset *failsafeModels.IdentityAsset) error
	DeactivateIdentity(ctx context.Context, userID id.UserID) error
}

// HistoryStore persists the user-visible signing history.
type HistoryStore interface {
	Append(ctx context.Context, rec *historyModels.SignatureRecord) error
	ListByUser(ctx context.Context, userID id.UserID) ([]*historyModels.SignatureRecord, error)
}

// Lockout throttles repeated authentication failures.
type Lockout interface {
	Check(ctx context.Context, identifier string) error
	OnFailure(ctx context.Context, identifier string) int
	OnSuccess(ctx context.Context, identifier string)
}

// KeyManager generates wallets and grants scoped access to decrypted keys.
type KeyManager interface {
	Generate(userID id.UserID, password string) (*walletModels.WalletRecord, error)
	WithDecryptedKey(rec *walletModels.WalletRecord, password string, fn func(priv *ecdsa.PrivateKey) error) error
}

// Classifier decides whether a submitted password is normal, duress, or
// neither.
type Classifier interface {
	Classify(submitted string, pair credentialModels.CredentialPair) resolver.Outcome
}

const (
	// revocationAttempts bounds how often a failed registry revocation is
	// retried before the event settles as deferred.
	revocationAttempts = 3
	revocationBackoff  = 2 * time.Second
	// revocationTimeout caps one revocation attempt; the background goroutine
	// must not hang on a stuck chain connection forever.
	revocationTimeout = 90 * time.Second
)

// Status is the owner-facing view of the failsafe subsystem.
type Status struct {
	DuressConfigured    bool                            `json:"duress_configured"`
	LastDuressTriggerAt *time.Time                      `json:"last_duress_trigger_at,omitempty"`
	IdentityActive      bool                            `json:"identity_active"`
	Events              []*failsafeModels.FailsafeEvent `json:"events"`
}

// Service implements wallet creation, signing, duress configuration, and the
// failsafe state machine.
type Service struct {
	wallets  WalletStore
	creds    CredentialStore
	events   FailsafeStore
	history  HistoryStore
	registry registry.Client
	keys     KeyManager
	engine   *signer.Engine
	decoy    *signer.Decoy
	classify Classifier
	lockout  Lockout

	audit   audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer

	retryAttempts int
	retryBackoff  time.Duration
	now           func() time.Time

	// revocations tracks in-flight background revocation goroutines so Close
	// can drain them before shutdown.
	revocations sync.WaitGroup
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithAuditPublisher(p audit.Publisher) Option {
	return func(s *Service) { s.audit = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLockout(l Lockout) Option {
	return func(s *Service) { s.lockout = l }
}

// WithRevocationRetry overrides the retry policy for registry revocation
// calls. Tests use short backoffs.
func WithRevocationRetry(attempts int, backoff time.Duration) Option {
	return func(s *Service) {
		if attempts > 0 {
			s.retryAttempts = attempts
		}
		s.retryBackoff = backoff
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New wires the orchestrator. All stores and the registry client are
// required; lockout, audit, and metrics default to no-op/in-memory.
func New(
	wallets WalletStore,
	creds CredentialStore,
	events FailsafeStore,
	history HistoryStore,
	reg registry.Client,
	keys KeyManager,
	engine *signer.Engine,
	classify Classifier,
	opts ...Option,
) *Service {
	s := &Service{
		wallets:       wallets,
		creds:         creds,
		events:        events,
		history:       history,
		registry:      reg,
		keys:          keys,
		engine:        engine,
		decoy:         signer.NewDecoy(),
		classify:      classify,
		lockout:       noopLockout{},
		audit:         audit.NewMemoryPublisher(),
		logger:        slog.Default(),
		tracer:        otel.Tracer("blocktrust/failsafe"),
		retryAttempts: revocationAttempts,
		retryBackoff:  revocationBackoff,
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close drains in-flight revocation goroutines. Returns the context error if
// the deadline expires first; pending events stay settleable by a reconciler.
func (s *Service) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.revocations.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for revocations: %w", ctx.Err())
	}
}

// CreateWallet generates a wallet for the user. First-time users register
// their normal password here; returning users must present it. At most one
// wallet per user.
func (s *Service) CreateWallet(ctx context.Context, userID id.UserID, password string) (*walletModels.WalletRecord, error) {
	ctx, span := s.tracer.Start(ctx, "failsafe.CreateWallet")
	defer span.End()

	if password == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "password cannot be empty")
	}

	pair, err := s.creds.Get(ctx, userID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		hash, err := secrets.Hash(password)
		if err != nil {
			return nil, err
		}
		if err := s.creds.CreateNormal(ctx, userID, hash); err != nil && !errors.Is(err, sentinel.ErrConflict) {
			return nil, fmt.Errorf("create credentials: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("load credentials: %w", err)
	default:
		if err := secrets.Verify(password, pair.NormalPasswordHash); err != nil {
			s.lockout.OnFailure(ctx, userID.String())
			return nil, err
		}
	}

	rec, err := s.keys.Generate(userID, password)
	if err != nil {
		return nil, err
	}

	if err := s.wallets.Create(ctx, rec); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "wallet already exists for this user")
		}
		return nil, fmt.Errorf("persist wallet: %w", err)
	}

	s.mintIdentity(ctx, userID, rec.Address)

	if s.metrics != nil {
		s.metrics.WalletsCreated.Inc()
	}
	s.emit(ctx, audit.Event{
		UserID: userID,
		Action: audit.EventWalletCreated,
		Reason: "wallet " + rec.WalletID,
	})
	s.logger.InfoContext(ctx, "wallet created",
		slog.String("user_id", userID.String()),
		slog.String("wallet_id", rec.WalletID))

	return rec, nil
}

// mintIdentity issues the user's on-chain identity asset. Best effort: a
// registry outage must not block wallet creation, and a reconciler can mint
// later from the missing-identity state.
func (s *Service) mintIdentity(ctx context.Context, userID id.UserID, address string) {
	identityID, txRef, err := s.registry.Mint(ctx, address, []byte(userID.String()), "")
	if err != nil {
		s.logger.WarnContext(ctx, "identity mint deferred",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return
	}
	asset := &failsafeModels.IdentityAsset{UserID: userID, IdentityID: identityID, Active: true}
	if err := s.events.SaveIdentity(ctx, asset); err != nil {
		s.logger.ErrorContext(ctx, "persisting identity asset failed",
			slog.String("user_id", userID.String()),
			slog.String("identity_id", identityID),
			slog.String("error", err.Error()))
		return
	}
	s.logger.InfoContext(ctx, "identity minted",
		slog.String("user_id", userID.String()),
		slog.String("identity_id", identityID),
		slog.String("tx_ref", txRef))
}

// Sign executes one signing request. The returned result is shaped the same
// for both modes; the duress path additionally triggers asynchronous identity
// revocation and never fails the caller because of it.
func (s *Service) Sign(ctx context.Context, userID id.UserID, req walletModels.SigningRequest) (walletModels.SignatureResult, error) {
	ctx, span := s.tracer.Start(ctx, "failsafe.Sign")
	defer span.End()

	if len(req.Payload) == 0 {
		return walletModels.SignatureResult{}, dErrors.New(dErrors.CodeInvalidInput, "payload cannot be empty")
	}
	if req.Password == "" && !req.FailsafeOverride {
		return walletModels.SignatureResult{}, dErrors.New(dErrors.CodeInvalidInput, "password cannot be empty")
	}

	if err := s.lockout.Check(ctx, userID.String()); err != nil {
		return walletModels.SignatureResult{}, err
	}

	rec, err := s.wallets.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return walletModels.SignatureResult{}, dErrors.New(dErrors.CodeNotFound, "wallet not found")
		}
		return walletModels.SignatureResult{}, fmt.Errorf("load wallet: %w", err)
	}

	pair, err := s.creds.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return walletModels.SignatureResult{}, dErrors.New(dErrors.CodeNotFound, "credentials not found")
		}
		return walletModels.SignatureResult{}, fmt.Errorf("load credentials: %w", err)
	}

	outcome := resolver.Duress
	if !req.FailsafeOverride {
		outcome = s.classify.Classify(req.Password, *pair)
	}
	span.SetAttributes(attribute.String("signing.outcome", outcome.String()))

	switch outcome {
	case resolver.Normal:
		return s.signNormal(ctx, userID, rec, req)
	case resolver.Duress:
		return s.signDuress(ctx, userID, rec, req)
	default:
		count := s.lockout.OnFailure(ctx, userID.String())
		if s.metrics != nil {
			s.metrics.AuthFailures.Inc()
		}
		s.emit(ctx, audit.Event{
			UserID:   userID,
			Action:   audit.EventAuthFailed,
			Decision: "rejected",
		})
		s.logger.WarnContext(ctx, "signing attempt rejected",
			slog.String("user_id", userID.String()),
			slog.Int("failure_count", count))
		return walletModels.SignatureResult{}, dErrors.New(dErrors.CodeAuthentication, "invalid password or corrupted key data")
	}
}

func (s *Service) signNormal(ctx context.Context, userID id.UserID, rec *walletModels.WalletRecord, req walletModels.SigningRequest) (walletModels.SignatureResult, error) {
	var result walletModels.SignatureResult
	err := s.keys.WithDecryptedKey(rec, req.Password, func(priv *ecdsa.PrivateKey) error {
		var signErr error
		result, signErr = s.engine.SignMessage(req.Payload, priv)
		return signErr
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeAuthentication) {
			// Classification said normal but decryption failed, so the stored
			// ciphertext is damaged. Same surface as a bad password.
			s.lockout.OnFailure(ctx, userID.String())
			if s.metrics != nil {
				s.metrics.AuthFailures.Inc()
			}
			s.emit(ctx, audit.Event{UserID: userID, Action: audit.EventAuthFailed, Decision: "rejected"})
		}
		return walletModels.SignatureResult{}, err
	}
	s.lockout.OnSuccess(ctx, userID.String())

	payloadHash := hashPayload(req.Payload)
	txRef := s.registerProof(ctx, req)
	s.recordHistory(ctx, userID, payloadHash, result, req, txRef)

	if s.metrics != nil {
		s.metrics.ObserveSignature(string(walletModels.ModeNormal))
	}
	s.emit(ctx, audit.Event{
		UserID:      userID,
		Action:      audit.EventSignatureIssued,
		Decision:    string(walletModels.ModeNormal),
		PayloadHash: payloadHash,
		TxRef:       deref(txRef),
	})
	return result, nil
}

// signDuress handles a duress-classified request. The decoy response returns
// immediately; revocation happens in a tracked background goroutine with its
// own deadline, detached from the request context on purpose — the coerced
// request finishing must not cancel the revocation.
func (s *Service) signDuress(ctx context.Context, userID id.UserID, rec *walletModels.WalletRecord, req walletModels.SigningRequest) (walletModels.SignatureResult, error) {
	result, err := s.decoy.Sign(req.Payload)
	if err != nil {
		return walletModels.SignatureResult{}, err
	}
	// The duress password is a valid credential; a streak of real failures
	// must not survive it and lock the owner out mid-coercion.
	s.lockout.OnSuccess(ctx, userID.String())

	now := s.now()
	reason := "duress password used"
	action := audit.EventFailsafeTriggered
	if req.FailsafeOverride {
		reason = "failsafe override"
		action = audit.EventPanicOverride
	}

	event := &failsafeModels.FailsafeEvent{
		ID:          id.NewEventID(),
		UserID:      userID,
		TriggeredAt: now,
		Reason:      reason,
	}
	// Persist the event before touching the registry: a crash between the two
	// leaves an auditable pending row, never silence. An append failure is
	// fatal for the same reason — revocation must never run without its
	// audit record, so the whole request aborts instead.
	if err := s.events.AppendEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "persisting failsafe event failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return walletModels.SignatureResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not record failsafe event")
	}
	if err := s.creds.TouchDuressTrigger(ctx, userID, now); err != nil {
		s.logger.ErrorContext(ctx, "recording duress trigger time failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}

	payloadHash := hashPayload(req.Payload)
	s.recordHistory(ctx, userID, payloadHash, result, req, nil)

	if s.metrics != nil {
		s.metrics.FailsafeTriggers.Inc()
		s.metrics.ObserveSignature(string(walletModels.ModeDuress))
	}
	s.emit(ctx, audit.Event{
		UserID:      userID,
		Action:      action,
		Decision:    string(walletModels.ModeDuress),
		Reason:      reason,
		PayloadHash: payloadHash,
	})
	s.logger.WarnContext(ctx, "failsafe triggered",
		slog.String("user_id", userID.String()),
		slog.String("event_id", event.ID.String()),
		slog.String("reason", reason))

	s.revocations.Add(1)
	go func() {
		defer s.revocations.Done()
		s.revokeIdentity(event, rec.Address)
	}()

	return result, nil
}

// revokeIdentity cancels the user's identity asset on the registry and
// settles the failsafe event exactly once, whatever happens. Runs detached
// from any request context.
func (s *Service) revokeIdentity(event *failsafeModels.FailsafeEvent, ownerAddress string) {
	ctx, cancel := context.WithTimeout(context.Background(), revocationTimeout)
	defer cancel()
	ctx, span := s.tracer.Start(ctx, "failsafe.revokeIdentity")
	defer span.End()

	asset, err := s.events.GetIdentity(ctx, event.UserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "loading identity asset failed",
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()))
	}
	if asset == nil || !asset.Active {
		// Nothing to revoke: never minted, or already revoked by an earlier
		// trigger. Settling keeps the event's outcome auditable either way.
		s.settle(ctx, event, false, nil, "skipped")
		return
	}

	var txRef string
	var lastErr error
	for attempt := 1; attempt <= s.retryAttempts; attempt++ {
		txRef, lastErr = s.registry.Cancel(ctx, ownerAddress, asset.IdentityID)
		if lastErr == nil {
			break
		}
		s.logger.WarnContext(ctx, "identity revocation attempt failed",
			slog.String("event_id", event.ID.String()),
			slog.Int("attempt", attempt),
			slog.String("error", lastErr.Error()))
		if attempt < s.retryAttempts {
			select {
			case <-ctx.Done():
				lastErr = ctx.Err()
				attempt = s.retryAttempts
			case <-time.After(s.retryBackoff):
			}
		}
	}

	if lastErr != nil {
		s.settle(ctx, event, false, nil, "failed")
		s.emit(ctx, audit.Event{
			UserID: event.UserID,
			Action: audit.EventRevocationDeferred,
			Reason: lastErr.Error(),
		})
		return
	}

	if err := s.events.DeactivateIdentity(ctx, event.UserID); err != nil {
		s.logger.ErrorContext(ctx, "deactivating identity asset failed",
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()))
	}
	s.settle(ctx, event, true, &txRef, "succeeded")
	s.emit(ctx, audit.Event{
		UserID: event.UserID,
		Action: audit.EventRevocationSettled,
		TxRef:  txRef,
	})
	s.logger.InfoContext(ctx, "identity revoked",
		slog.String("event_id", event.ID.String()),
		slog.String("tx_ref", txRef))
}

func (s *Service) settle(ctx context.Context, event *failsafeModels.FailsafeEvent, revoked bool, txRef *string, outcome string) {
	if err := s.events.SettleRevocation(ctx, event.ID, revoked, txRef, s.now()); err != nil {
		if errors.Is(err, sentinel.ErrInvalidState) {
			// Already settled by a concurrent path; exactly-once held.
			return
		}
		s.logger.ErrorContext(ctx, "settling failsafe event failed",
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()))
		return
	}
	if s.metrics != nil {
		s.metrics.ObserveRevocation(outcome)
	}
}

// ConfigureDuress sets or rotates the duress password. The sameness check
// runs before anything else: a duress password equal to the normal one would
// make classification ambiguous forever.
func (s *Service) ConfigureDuress(ctx context.Context, userID id.UserID, currentPassword, duressPassword string) error {
	ctx, span := s.tracer.Start(ctx, "failsafe.ConfigureDuress")
	defer span.End()

	if duressPassword == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "duress password cannot be empty")
	}
	if duressPassword == currentPassword {
		return dErrors.New(dErrors.CodeInvalidInput, "duress password must differ from the normal password")
	}

	if err := s.lockout.Check(ctx, userID.String()); err != nil {
		return err
	}

	pair, err := s.creds.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "credentials not found")
		}
		return fmt.Errorf("load credentials: %w", err)
	}

	if err := secrets.Verify(currentPassword, pair.NormalPasswordHash); err != nil {
		s.lockout.OnFailure(ctx, userID.String())
		if s.metrics != nil {
			s.metrics.AuthFailures.Inc()
		}
		s.emit(ctx, audit.Event{UserID: userID, Action: audit.EventAuthFailed, Decision: "rejected"})
		return err
	}
	s.lockout.OnSuccess(ctx, userID.String())

	hash, err := secrets.Hash(duressPassword)
	if err != nil {
		return err
	}
	if err := s.creds.SetDuress(ctx, userID, hash); err != nil {
		return fmt.Errorf("store duress credential: %w", err)
	}

	s.emit(ctx, audit.Event{UserID: userID, Action: audit.EventDuressConfigured})
	s.logger.InfoContext(ctx, "duress password configured",
		slog.String("user_id", userID.String()),
		slog.Bool("rotation", pair.DuressConfigured))
	return nil
}

// GetFailsafeStatus returns the owner-facing failsafe view: configuration
// state, trigger history, and identity liveness.
func (s *Service) GetFailsafeStatus(ctx context.Context, userID id.UserID) (*Status, error) {
	ctx, span := s.tracer.Start(ctx, "failsafe.GetFailsafeStatus")
	defer span.End()

	pair, err := s.creds.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "credentials not found")
		}
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	events, err := s.events.ListEventsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list failsafe events: %w", err)
	}

	identityActive := false
	if asset, err := s.events.GetIdentity(ctx, userID); err == nil && asset != nil {
		identityActive = asset.Active
	}

	return &Status{
		DuressConfigured:    pair.DuressConfigured,
		LastDuressTriggerAt: pair.LastDuressTriggerAt,
		IdentityActive:      identityActive,
		Events:              events,
	}, nil
}

// GetWallet returns the user's custody record metadata.
func (s *Service) GetWallet(ctx context.Context, userID id.UserID) (*walletModels.WalletRecord, error) {
	rec, err := s.wallets.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "wallet not found")
		}
		return nil, fmt.Errorf("load wallet: %w", err)
	}
	return rec, nil
}

// Verify reports whether signature recovers to address for payload. A decoy
// signature never verifies: it recovers to a random address, and the zero
// sentinel it claims is not a recoverable signer.
func (s *Service) Verify(ctx context.Context, payload []byte, signature, address string) bool {
	_, span := s.tracer.Start(ctx, "failsafe.Verify")
	defer span.End()
	return s.engine.Verify(payload, signature, address)
}

// History returns the user's signing history, newest first. Duress entries
// are included and shaped identically to normal ones.
func (s *Service) History(ctx context.Context, userID id.UserID) ([]*historyModels.SignatureRecord, error) {
	return s.history.ListByUser(ctx, userID)
}

// registerProof notarizes the document hash on chain when the request names a
// document. Best effort: proof registration failing never fails the signing.
func (s *Service) registerProof(ctx context.Context, req walletModels.SigningRequest) *string {
	if req.DocumentURL == "" {
		return nil
	}
	txRef, err := s.registry.RegisterProof(ctx, sha256.Sum256(req.Payload), req.DocumentURL)
	if err != nil {
		s.logger.WarnContext(ctx, "proof registration failed",
			slog.String("document_url", req.DocumentURL),
			slog.String("error", err.Error()))
		return nil
	}
	return &txRef
}

func (s *Service) recordHistory(ctx context.Context, userID id.UserID, payloadHash string, result walletModels.SignatureResult, req walletModels.SigningRequest, txRef *string) {
	rec := &historyModels.SignatureRecord{
		ID:           id.NewEventID(),
		UserID:       userID,
		PayloadHash:  payloadHash,
		Signature:    result.Signature,
		DocumentName: req.DocumentName,
		DocumentURL:  req.DocumentURL,
		Mode:         result.Mode,
		TxRef:        txRef,
		SignedAt:     s.now(),
	}
	if err := s.history.Append(ctx, rec); err != nil {
		s.logger.ErrorContext(ctx, "recording signature history failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			slog.String("action", string(event.Action)),
			slog.String("error", err.Error()))
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func hashPayload(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

type noopLockout struct{}

func (noopLockout) Check(context.Context, string) error   { return nil }
func (noopLockout) OnFailure(context.Context, string) int { return 0 }
func (noopLockout) OnSuccess(context.Context, string)     {}
