package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/config"
	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	workspaces repository.WorkspaceRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo      repository.UserRepository
	WorkspaceRepo repository.WorkspaceRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		workspaces: deps.WorkspaceRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLDays),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// RegisterResult carries the artifacts of a successful registration.
type RegisterResult struct {
	User      *domain.User
	Workspace *domain.Workspace
	Token     string
	ExpiresAt time.Time
}

// Register creates a new account plus its default workspace, with the new
// user as the workspace's sole admin member.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*RegisterResult, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	now := time.Now().UTC()
	userID := primitive.NewObjectID().Hex()
	workspaceID := primitive.NewObjectID().Hex()

	user := &domain.User{
		ID:           userID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Avatar:       avatarURL(name),
		Workspaces:   []string{workspaceID},
		CreatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}

	workspace := &domain.Workspace{
		ID:        workspaceID,
		Name:      fmt.Sprintf("%s's Workspace", name),
		OwnerID:   userID,
		Members:   []domain.Member{{UserID: userID, Role: domain.RoleAdmin}},
		CreatedAt: now,
	}
	if err := s.workspaces.Create(ctx, workspace); err != nil {
		return nil, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.Issue(userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &RegisterResult{User: user, Workspace: workspace, Token: token, ExpiresAt: exp}, nil
}

// Login authenticates a user and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// ChangePassword verifies the current password before setting a new one.
// Setting a new password also clears the must-change flag.
func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, oldPassword, newPassword string) error {
	if !auth.VerifyPassword(oldPassword, user.PasswordHash) {
		return apperrors.NewValidationError("incorrect current password", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func avatarURL(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(name)
}
