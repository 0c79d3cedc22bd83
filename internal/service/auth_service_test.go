package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

type AuthServiceSuite struct {
	suite.Suite
	users      *repository.MemoryUserRepository
	workspaces *repository.MemoryWorkspaceRepository
	svc        *AuthService
	ctx        context.Context
}

func (s *AuthServiceSuite) SetupTest() {
	s.users = repository.NewMemoryUserRepository()
	s.workspaces = repository.NewMemoryWorkspaceRepository()
	s.svc = NewAuthService(testConfig(), AuthDependencies{
		UserRepo:      s.users,
		WorkspaceRepo: s.workspaces,
	})
	s.ctx = context.Background()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) TestRegisterCreatesDefaultWorkspace() {
	result, err := s.svc.Register(s.ctx, "Alice", "a@x.com", "password1")
	s.Require().NoError(err)

	s.NotEmpty(result.Token)
	s.Equal("Alice's Workspace", result.Workspace.Name)
	s.Equal(result.User.ID, result.Workspace.OwnerID)
	s.Equal([]string{result.Workspace.ID}, result.User.Workspaces)

	s.Require().Len(result.Workspace.Members, 1)
	s.Equal(domain.Member{UserID: result.User.ID, Role: domain.RoleAdmin}, result.Workspace.Members[0])

	subject, err := s.svc.TokenManager().Verify(result.Token)
	s.Require().NoError(err)
	s.Equal(result.User.ID, subject)
}

func (s *AuthServiceSuite) TestRegisterDuplicateEmail() {
	_, err := s.svc.Register(s.ctx, "Alice", "a@x.com", "password1")
	s.Require().NoError(err)

	_, err = s.svc.Register(s.ctx, "Other Alice", "a@x.com", "password2")
	s.assertCode(err, "CONFLICT")
}

func (s *AuthServiceSuite) TestLogin() {
	result, err := s.svc.Register(s.ctx, "Alice", "a@x.com", "password1")
	s.Require().NoError(err)

	s.Run("valid credentials", func() {
		user, token, _, err := s.svc.Login(s.ctx, "a@x.com", "password1")
		s.Require().NoError(err)
		s.Equal(result.User.ID, user.ID)
		s.NotEmpty(token)
	})

	s.Run("wrong password", func() {
		_, _, _, err := s.svc.Login(s.ctx, "a@x.com", "wrong")
		s.assertCode(err, "UNAUTHENTICATED")
	})

	s.Run("unknown email", func() {
		_, _, _, err := s.svc.Login(s.ctx, "nobody@x.com", "password1")
		s.assertCode(err, "UNAUTHENTICATED")
	})
}

func (s *AuthServiceSuite) TestChangePassword() {
	result, err := s.svc.Register(s.ctx, "Alice", "a@x.com", "password1")
	s.Require().NoError(err)

	s.Run("wrong current password rejected", func() {
		err := s.svc.ChangePassword(s.ctx, result.User, "nope", "password2")
		s.assertCode(err, "INVALID_INPUT")
	})

	s.Run("correct current password accepted", func() {
		s.Require().NoError(s.svc.ChangePassword(s.ctx, result.User, "password1", "password2"))

		_, _, _, err := s.svc.Login(s.ctx, "a@x.com", "password1")
		s.Error(err)
		_, _, _, err = s.svc.Login(s.ctx, "a@x.com", "password2")
		s.NoError(err)
	})
}

func (s *AuthServiceSuite) assertCode(err error, code string) {
	s.Require().Error(err)
	var de *apperrors.DomainError
	s.Require().True(errors.As(err, &de))
	s.Equal(code, de.Code)
}
