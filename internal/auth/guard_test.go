package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

type GuardSuite struct {
	suite.Suite
	workspaces *repository.MemoryWorkspaceRepository
	guard      *Guard
	ctx        context.Context
}

func (s *GuardSuite) SetupTest() {
	s.workspaces = repository.NewMemoryWorkspaceRepository()
	s.guard = NewGuard(s.workspaces)
	s.ctx = context.Background()

	s.Require().NoError(s.workspaces.Create(s.ctx, &domain.Workspace{
		ID:      "ws-1",
		Name:    "Acme",
		OwnerID: "admin-1",
		Members: []domain.Member{
			{UserID: "admin-1", Role: domain.RoleAdmin},
			{UserID: "member-1", Role: domain.RoleMember},
		},
		CreatedAt: time.Now(),
	}))
}

func TestGuardSuite(t *testing.T) {
	suite.Run(t, new(GuardSuite))
}

func (s *GuardSuite) TestMembershipCheck() {
	s.Run("member without role requirement passes", func() {
		ws, err := s.guard.Authorize(s.ctx, "member-1", "ws-1", nil)
		s.Require().NoError(err)
		s.Equal("ws-1", ws.ID)
	})

	s.Run("non-member is denied", func() {
		_, err := s.guard.Authorize(s.ctx, "stranger", "ws-1", nil)
		s.assertCode(err, "ACCESS_DENIED")
	})
}

func (s *GuardSuite) TestAdminRequirement() {
	adminRole := domain.RoleAdmin

	s.Run("admin member passes", func() {
		ws, err := s.guard.Authorize(s.ctx, "admin-1", "ws-1", &adminRole)
		s.Require().NoError(err)
		s.Equal("ws-1", ws.ID)
	})

	s.Run("plain member is denied", func() {
		_, err := s.guard.Authorize(s.ctx, "member-1", "ws-1", &adminRole)
		s.assertCode(err, "ACCESS_DENIED")
	})

	s.Run("non-member is denied identically", func() {
		_, err := s.guard.Authorize(s.ctx, "stranger", "ws-1", &adminRole)
		s.assertCode(err, "ACCESS_DENIED")
	})
}

func (s *GuardSuite) TestUnknownWorkspaceTakesPrecedence() {
	adminRole := domain.RoleAdmin
	_, err := s.guard.Authorize(s.ctx, "stranger", "nope", &adminRole)
	s.assertCode(err, "NOT_FOUND")
}

func (s *GuardSuite) TestReadsFreshMembership() {
	_, err := s.guard.Authorize(s.ctx, "new-user", "ws-1", nil)
	s.assertCode(err, "ACCESS_DENIED")

	s.Require().NoError(s.workspaces.AddMember(s.ctx, "ws-1", domain.Member{UserID: "new-user", Role: domain.RoleMember}))

	_, err = s.guard.Authorize(s.ctx, "new-user", "ws-1", nil)
	s.NoError(err)
}

func (s *GuardSuite) assertCode(err error, code string) {
	s.Require().Error(err)
	var de *apperrors.DomainError
	s.Require().True(errors.As(err, &de))
	s.Equal(code, de.Code)
}
