package auth

import (
	"context"
	"errors"

	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// WorkspaceLookup is the read-only collaborator the guard checks against.
type WorkspaceLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
}

// Guard confirms workspace membership and role for a caller identity. It
// never mutates the membership relation, only reads it, and reads it fresh
// on every call; membership may change between requests.
type Guard struct {
	workspaces WorkspaceLookup
}

// NewGuard constructs a guard over the given workspace lookup.
func NewGuard(workspaces WorkspaceLookup) *Guard {
	return &Guard{workspaces: workspaces}
}

// Authorize returns the workspace snapshot when userID is a member holding
// at least requiredRole. A nil requiredRole means any membership suffices.
// The owner is not special-cased; any admin member satisfies an admin
// requirement identically.
func (g *Guard) Authorize(ctx context.Context, userID, workspaceID string, requiredRole *domain.Role) (*domain.Workspace, error) {
	workspace, err := g.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("workspace", nil)
		}
		return nil, err
	}

	member, ok := workspace.MemberByUserID(userID)
	if !ok {
		return nil, apperrors.NewAccessDenied("access denied")
	}

	if requiredRole != nil && *requiredRole == domain.RoleAdmin && member.Role != domain.RoleAdmin {
		return nil, apperrors.NewAccessDenied("admin access required")
	}

	return workspace, nil
}
