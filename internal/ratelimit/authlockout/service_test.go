package authlockout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	dErrors "blocktrust/pkg/domain-errors"
)

type LockoutSuite struct {
	suite.Suite
	ctx context.Context
	svc *Service
}

func TestLockoutSuite(t *testing.T) {
	suite.Run(t, new(LockoutSuite))
}

func (s *LockoutSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc = NewService(NewInMemory(time.Minute), WithMaxFailures(3))
}

func (s *LockoutSuite) TestAllowsUnderThreshold() {
	s.svc.OnFailure(s.ctx, "user-1")
	s.svc.OnFailure(s.ctx, "user-1")

	s.Require().NoError(s.svc.Check(s.ctx, "user-1"))
}

func (s *LockoutSuite) TestLocksOutAtThreshold() {
	for i := 0; i < 3; i++ {
		s.svc.OnFailure(s.ctx, "user-1")
	}

	err := s.svc.Check(s.ctx, "user-1")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *LockoutSuite) TestSuccessClearsStreak() {
	for i := 0; i < 3; i++ {
		s.svc.OnFailure(s.ctx, "user-1")
	}
	s.svc.OnSuccess(s.ctx, "user-1")

	s.Require().NoError(s.svc.Check(s.ctx, "user-1"))
}

func (s *LockoutSuite) TestIdentifiersAreIndependent() {
	for i := 0; i < 3; i++ {
		s.svc.OnFailure(s.ctx, "user-1")
	}

	s.Require().NoError(s.svc.Check(s.ctx, "user-2"))
}

func (s *LockoutSuite) TestWindowExpiry() {
	store := NewInMemory(10 * time.Millisecond)
	svc := NewService(store, WithMaxFailures(1))
	svc.OnFailure(s.ctx, "user-1")
	s.Require().Error(svc.Check(s.ctx, "user-1"))

	time.Sleep(20 * time.Millisecond)
	s.Require().NoError(svc.Check(s.ctx, "user-1"))
}
