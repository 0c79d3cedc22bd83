package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

type WorkspaceServiceSuite struct {
	suite.Suite
	users      *repository.MemoryUserRepository
	workspaces *repository.MemoryWorkspaceRepository
	invites    *repository.MemoryInviteRepository
	authSvc    *AuthService
	svc        *WorkspaceService
	guard      *auth.Guard
	ctx        context.Context
}

func (s *WorkspaceServiceSuite) SetupTest() {
	s.users = repository.NewMemoryUserRepository()
	s.workspaces = repository.NewMemoryWorkspaceRepository()
	s.invites = repository.NewMemoryInviteRepository()
	s.authSvc = NewAuthService(testConfig(), AuthDependencies{
		UserRepo:      s.users,
		WorkspaceRepo: s.workspaces,
	})
	s.svc = NewWorkspaceService(testConfig(), WorkspaceDependencies{
		WorkspaceRepo: s.workspaces,
		UserRepo:      s.users,
		InviteRepo:    s.invites,
	})
	s.guard = auth.NewGuard(s.workspaces)
	s.ctx = context.Background()
}

func TestWorkspaceServiceSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceSuite))
}

func (s *WorkspaceServiceSuite) register(name, email string) *RegisterResult {
	result, err := s.authSvc.Register(s.ctx, name, email, "password1")
	s.Require().NoError(err)
	return result
}

func (s *WorkspaceServiceSuite) TestInviteLinkFlow() {
	admin := s.register("Alice", "a@x.com")
	workspaceID := admin.Workspace.ID

	invite, err := s.svc.CreateInvite(s.ctx, workspaceID, admin.User.ID, "b@x.com")
	s.Require().NoError(err)
	s.NotEmpty(invite.Token)
	s.WithinDuration(time.Now().Add(7*24*time.Hour), invite.ExpiresAt, time.Minute)

	details, err := s.svc.InviteDetails(s.ctx, invite.Token)
	s.Require().NoError(err)
	s.Equal(admin.Workspace.Name, details.WorkspaceName)
	s.Equal("b@x.com", details.Email)

	invitee := s.register("Bob", "b@x.com")

	joinedID, already, err := s.svc.AcceptInvite(s.ctx, invite.Token, invitee.User)
	s.Require().NoError(err)
	s.False(already)
	s.Equal(workspaceID, joinedID)

	// Membership now passes, admin requirement still denied.
	_, err = s.guard.Authorize(s.ctx, invitee.User.ID, workspaceID, nil)
	s.NoError(err)
	adminRole := domain.RoleAdmin
	_, err = s.guard.Authorize(s.ctx, invitee.User.ID, workspaceID, &adminRole)
	s.assertCode(err, "ACCESS_DENIED")

	// Accepting again is benign.
	_, already, err = s.svc.AcceptInvite(s.ctx, invite.Token, invitee.User)
	s.Require().NoError(err)
	s.True(already)
}

func (s *WorkspaceServiceSuite) TestExpiredInvite() {
	admin := s.register("Alice", "a@x.com")
	invitee := s.register("Bob", "b@x.com")

	expired := &domain.Invite{
		ID:          "inv-1",
		WorkspaceID: admin.Workspace.ID,
		Token:       "expired-token",
		CreatedBy:   admin.User.ID,
		CreatedAt:   time.Now().Add(-8 * 24 * time.Hour),
		ExpiresAt:   time.Now().Add(-24 * time.Hour),
	}
	s.Require().NoError(s.invites.Create(s.ctx, expired))

	_, err := s.svc.InviteDetails(s.ctx, "expired-token")
	s.assertCode(err, "INVALID_INPUT")

	_, _, err = s.svc.AcceptInvite(s.ctx, "expired-token", invitee.User)
	s.assertCode(err, "INVALID_INPUT")
}

func (s *WorkspaceServiceSuite) TestUnknownInvite() {
	_, err := s.svc.InviteDetails(s.ctx, "missing")
	s.assertCode(err, "NOT_FOUND")
}

func (s *WorkspaceServiceSuite) TestDirectInvite() {
	admin := s.register("Alice", "a@x.com")
	other := s.register("Bob", "b@x.com")

	workspace, err := s.workspaces.GetByID(s.ctx, admin.Workspace.ID)
	s.Require().NoError(err)

	s.Run("unregistered email not found", func() {
		_, err := s.svc.InviteByEmail(s.ctx, workspace, "nobody@x.com")
		s.assertCode(err, "NOT_FOUND")
	})

	s.Run("registered user is added as member", func() {
		invited, err := s.svc.InviteByEmail(s.ctx, workspace, "b@x.com")
		s.Require().NoError(err)
		s.Equal(other.User.ID, invited.ID)

		refreshed, err := s.workspaces.GetByID(s.ctx, workspace.ID)
		s.Require().NoError(err)
		member, ok := refreshed.MemberByUserID(other.User.ID)
		s.Require().True(ok)
		s.Equal(domain.RoleMember, member.Role)
	})

	s.Run("double invite conflicts", func() {
		refreshed, err := s.workspaces.GetByID(s.ctx, workspace.ID)
		s.Require().NoError(err)
		_, err = s.svc.InviteByEmail(s.ctx, refreshed, "b@x.com")
		s.assertCode(err, "CONFLICT")
	})
}

func (s *WorkspaceServiceSuite) TestCreateMemberAccount() {
	admin := s.register("Alice", "a@x.com")

	member, err := s.svc.CreateMemberAccount(s.ctx, admin.Workspace.ID, "Carol", "c@x.com", "initialpass")
	s.Require().NoError(err)
	s.True(member.MustChangePassword)
	s.Equal([]string{admin.Workspace.ID}, member.Workspaces)

	_, err = s.svc.CreateMemberAccount(s.ctx, admin.Workspace.ID, "Carol Again", "c@x.com", "otherpass")
	s.assertCode(err, "CONFLICT")
}

func (s *WorkspaceServiceSuite) TestListForUserHydratesMembers() {
	admin := s.register("Alice", "a@x.com")
	invitee := s.register("Bob", "b@x.com")

	workspace, err := s.workspaces.GetByID(s.ctx, admin.Workspace.ID)
	s.Require().NoError(err)
	_, err = s.svc.InviteByEmail(s.ctx, workspace, "b@x.com")
	s.Require().NoError(err)

	listed, err := s.svc.ListForUser(s.ctx, invitee.User.ID)
	s.Require().NoError(err)

	var shared *WorkspaceDetail
	for i := range listed {
		if listed[i].ID == workspace.ID {
			shared = &listed[i]
		}
	}
	s.Require().NotNil(shared)
	s.Len(shared.Members, 2)
	for _, m := range shared.Members {
		s.NotEmpty(m.Name)
		s.NotEmpty(m.Email)
	}
}

func (s *WorkspaceServiceSuite) assertCode(err error, code string) {
	s.Require().Error(err)
	var de *apperrors.DomainError
	s.Require().True(errors.As(err, &de))
	s.Equal(code, de.Code)
}
