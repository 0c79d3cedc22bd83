package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/config"
	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

const inviteTTL = 7 * 24 * time.Hour

// MemberDetail is a membership entry hydrated with user profile fields.
type MemberDetail struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Avatar string      `json:"avatar,omitempty"`
	Role   domain.Role `json:"role"`
}

// WorkspaceDetail is a workspace with hydrated members.
type WorkspaceDetail struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	OwnerID   string         `json:"owner_id"`
	Members   []MemberDetail `json:"members"`
	CreatedAt time.Time      `json:"created_at"`
}

// InviteDetails is the public view of an invite link.
type InviteDetails struct {
	WorkspaceName string    `json:"workspace_name"`
	Email         string    `json:"email,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// WorkspaceService coordinates workspace, membership and invite workflows.
type WorkspaceService struct {
	workspaces repository.WorkspaceRepository
	users      repository.UserRepository
	invites    repository.InviteRepository
	bcryptCost int
}

// WorkspaceDependencies bundles repositories for the workspace service.
type WorkspaceDependencies struct {
	WorkspaceRepo repository.WorkspaceRepository
	UserRepo      repository.UserRepository
	InviteRepo    repository.InviteRepository
}

// NewWorkspaceService constructs the service.
func NewWorkspaceService(cfg config.Config, deps WorkspaceDependencies) *WorkspaceService {
	return &WorkspaceService{
		workspaces: deps.WorkspaceRepo,
		users:      deps.UserRepo,
		invites:    deps.InviteRepo,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// ListForUser returns all workspaces whose membership contains the user,
// with member profiles hydrated.
func (s *WorkspaceService) ListForUser(ctx context.Context, userID string) ([]WorkspaceDetail, error) {
	workspaces, err := s.workspaces.ListByMember(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	result := make([]WorkspaceDetail, 0, len(workspaces))
	for i := range workspaces {
		members, err := s.MemberDetails(ctx, &workspaces[i])
		if err != nil {
			return nil, err
		}
		result = append(result, WorkspaceDetail{
			ID:        workspaces[i].ID,
			Name:      workspaces[i].Name,
			OwnerID:   workspaces[i].OwnerID,
			Members:   members,
			CreatedAt: workspaces[i].CreatedAt,
		})
	}
	return result, nil
}

// Create makes a new workspace with the owner as its sole admin member.
func (s *WorkspaceService) Create(ctx context.Context, owner *domain.User, name string) (*domain.Workspace, error) {
	workspace := &domain.Workspace{
		ID:        primitive.NewObjectID().Hex(),
		Name:      name,
		OwnerID:   owner.ID,
		Members:   []domain.Member{{UserID: owner.ID, Role: domain.RoleAdmin}},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.workspaces.Create(ctx, workspace); err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.users.AddWorkspace(ctx, owner.ID, workspace.ID); err != nil {
		return nil, apperrors.MapError(err)
	}
	return workspace, nil
}

// MemberDetails hydrates a workspace's membership with user profiles.
// Members whose accounts no longer resolve are skipped.
func (s *WorkspaceService) MemberDetails(ctx context.Context, workspace *domain.Workspace) ([]MemberDetail, error) {
	details := make([]MemberDetail, 0, len(workspace.Members))
	for _, member := range workspace.Members {
		user, err := s.users.GetByID(ctx, member.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, apperrors.MapError(err)
		}
		details = append(details, MemberDetail{
			UserID: member.UserID,
			Name:   user.Name,
			Email:  user.Email,
			Avatar: user.Avatar,
			Role:   member.Role,
		})
	}
	return details, nil
}

// InviteByEmail adds an already-registered user directly to the workspace
// with the member role.
func (s *WorkspaceService) InviteByEmail(ctx context.Context, workspace *domain.Workspace, email string) (*domain.User, error) {
	invited, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}

	if _, ok := workspace.MemberByUserID(invited.ID); ok {
		return nil, apperrors.NewConflict("user is already a member", nil)
	}

	if err := s.workspaces.AddMember(ctx, workspace.ID, domain.Member{UserID: invited.ID, Role: domain.RoleMember}); err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.users.AddWorkspace(ctx, invited.ID, workspace.ID); err != nil {
		return nil, apperrors.MapError(err)
	}
	return invited, nil
}

// CreateMemberAccount registers a new account directly into the workspace.
// The account is flagged to change its password on first login.
func (s *WorkspaceService) CreateMemberAccount(ctx context.Context, workspaceID, name, email, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	member := &domain.User{
		ID:                 primitive.NewObjectID().Hex(),
		Name:               name,
		Email:              email,
		PasswordHash:       hash,
		Avatar:             avatarURL(name),
		Workspaces:         []string{workspaceID},
		MustChangePassword: true,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.users.Create(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.workspaces.AddMember(ctx, workspaceID, domain.Member{UserID: member.ID, Role: domain.RoleMember}); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// CreateInvite issues a shareable invite link token, valid for seven days.
func (s *WorkspaceService) CreateInvite(ctx context.Context, workspaceID, createdBy, email string) (*domain.Invite, error) {
	now := time.Now().UTC()
	invite := &domain.Invite{
		ID:          primitive.NewObjectID().Hex(),
		WorkspaceID: workspaceID,
		Token:       uuid.NewString(),
		Email:       email,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		ExpiresAt:   now.Add(inviteTTL),
	}
	if err := s.invites.Create(ctx, invite); err != nil {
		return nil, apperrors.MapError(err)
	}
	return invite, nil
}

// InviteDetails resolves an invite token to its public details. Expired
// invites never resolve.
func (s *WorkspaceService) InviteDetails(ctx context.Context, token string) (*InviteDetails, error) {
	invite, err := s.lookupInvite(ctx, token)
	if err != nil {
		return nil, err
	}

	workspace, err := s.workspaces.GetByID(ctx, invite.WorkspaceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("workspace", nil)
		}
		return nil, apperrors.MapError(err)
	}

	return &InviteDetails{
		WorkspaceName: workspace.Name,
		Email:         invite.Email,
		ExpiresAt:     invite.ExpiresAt,
	}, nil
}

// AcceptInvite joins the caller to the invite's workspace as a member.
// Accepting while already a member is benign and reports alreadyMember.
func (s *WorkspaceService) AcceptInvite(ctx context.Context, token string, user *domain.User) (workspaceID string, alreadyMember bool, err error) {
	invite, err := s.lookupInvite(ctx, token)
	if err != nil {
		return "", false, err
	}

	workspace, err := s.workspaces.GetByID(ctx, invite.WorkspaceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, apperrors.NewNotFound("workspace", nil)
		}
		return "", false, apperrors.MapError(err)
	}

	if _, ok := workspace.MemberByUserID(user.ID); ok {
		return workspace.ID, true, nil
	}

	if err := s.workspaces.AddMember(ctx, workspace.ID, domain.Member{UserID: user.ID, Role: domain.RoleMember}); err != nil {
		return "", false, apperrors.MapError(err)
	}
	if err := s.users.AddWorkspace(ctx, user.ID, workspace.ID); err != nil {
		return "", false, apperrors.MapError(err)
	}
	return workspace.ID, false, nil
}

func (s *WorkspaceService) lookupInvite(ctx context.Context, token string) (*domain.Invite, error) {
	invite, err := s.invites.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("invite", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if invite.Expired(time.Now().UTC()) {
		return nil, apperrors.NewValidationError("invite expired", nil)
	}
	return invite, nil
}
