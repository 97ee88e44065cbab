package authlockout

import (
	"context"
	"log/slog"
	"time"

	dErrors "blocktrust/pkg/domain-errors"
)

const (
	// DefaultMaxFailures locks out an identifier after this many consecutive
	// failed password attempts within the window.
	DefaultMaxFailures = 10
	// DefaultWindow is how long a failure streak is remembered.
	DefaultWindow = 15 * time.Minute
)

// Store counts authentication failures per identifier.
type Store interface {
	RecordFailure(ctx context.Context, identifier string) (int, error)
	Failures(ctx context.Context, identifier string) (int, error)
	Clear(ctx context.Context, identifier string) error
}

// Service enforces a lockout after repeated authentication failures. Lockout
// applies before password classification so a locked-out attacker cannot
// probe for the duress password either.
type Service struct {
	store       Store
	maxFailures int
	logger      *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithMaxFailures(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxFailures = n
		}
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		maxFailures: DefaultMaxFailures,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check returns CodeForbidden when the identifier has exceeded the failure
// threshold. Store errors fail open: a broken counter must not block signing.
func (s *Service) Check(ctx context.Context, identifier string) error {
	count, err := s.store.Failures(ctx, identifier)
	if err != nil {
		s.logger.WarnContext(ctx, "lockout check failed, failing open",
			slog.String("error", err.Error()))
		return nil
	}
	if count >= s.maxFailures {
		return dErrors.New(dErrors.CodeForbidden, "too many failed attempts, try again later")
	}
	return nil
}

// OnFailure records a failed attempt and returns the updated count.
func (s *Service) OnFailure(ctx context.Context, identifier string) int {
	count, err := s.store.RecordFailure(ctx, identifier)
	if err != nil {
		s.logger.WarnContext(ctx, "recording auth failure failed",
			slog.String("error", err.Error()))
		return 0
	}
	return count
}

// OnSuccess resets the failure streak.
func (s *Service) OnSuccess(ctx context.Context, identifier string) {
	if err := s.store.Clear(ctx, identifier); err != nil {
		s.logger.WarnContext(ctx, "clearing auth failures failed",
			slog.String("error", err.Error()))
	}
}
