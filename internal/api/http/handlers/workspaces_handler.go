package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lakshita-01/devPulse/internal/api/dto"
	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/service"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// WorkspacesHandler manages workspace, membership and invite endpoints.
type WorkspacesHandler struct {
	guard      *auth.Guard
	workspaces *service.WorkspaceService
}

// NewWorkspacesHandler constructs handler.
func NewWorkspacesHandler(guard *auth.Guard, workspaceService *service.WorkspaceService) *WorkspacesHandler {
	return &WorkspacesHandler{guard: guard, workspaces: workspaceService}
}

// List handles GET /api/workspaces.
func (h *WorkspacesHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	workspaces, err := h.workspaces.ListForUser(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(workspaces)
}

// Create handles POST /api/workspaces.
func (h *WorkspacesHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	var req dto.WorkspaceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	workspace, err := h.workspaces.Create(c.Context(), user, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(workspace)
}

// Members handles GET /api/workspaces/:workspace_id/members.
func (h *WorkspacesHandler) Members(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	workspace, err := h.guard.Authorize(c.Context(), user.ID, c.Params("workspace_id"), nil)
	if err != nil {
		return err
	}

	members, err := h.workspaces.MemberDetails(c.Context(), workspace)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"members": members})
}

// InviteMember handles POST /api/workspaces/:workspace_id/invite. Admin only.
func (h *WorkspacesHandler) InviteMember(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	email := c.Query("email")
	if email == "" {
		return apperrors.NewValidationError("email required", nil)
	}

	adminRole := domain.RoleAdmin
	workspace, err := h.guard.Authorize(c.Context(), user.ID, c.Params("workspace_id"), &adminRole)
	if err != nil {
		return err
	}

	invited, err := h.workspaces.InviteByEmail(c.Context(), workspace, email)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Member invited successfully",
		"user":    dto.UserSummary{ID: invited.ID, Name: invited.Name, Email: invited.Email},
	})
}

// CreateMember handles POST /api/workspaces/:workspace_id/members. Admin only.
func (h *WorkspacesHandler) CreateMember(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email, password required", nil)
	}

	adminRole := domain.RoleAdmin
	workspace, err := h.guard.Authorize(c.Context(), user.ID, c.Params("workspace_id"), &adminRole)
	if err != nil {
		return err
	}

	member, err := h.workspaces.CreateMemberAccount(c.Context(), workspace.ID, req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Member created successfully",
		"user":    dto.UserSummary{ID: member.ID, Name: member.Name, Email: member.Email},
	})
}

// CreateInvite handles POST /api/workspaces/:workspace_id/invites. Admin only.
func (h *WorkspacesHandler) CreateInvite(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	var req dto.InviteCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	adminRole := domain.RoleAdmin
	workspace, err := h.guard.Authorize(c.Context(), user.ID, c.Params("workspace_id"), &adminRole)
	if err != nil {
		return err
	}

	invite, err := h.workspaces.CreateInvite(c.Context(), workspace.ID, user.ID, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(dto.InviteResponse{
		ID:          invite.ID,
		WorkspaceID: invite.WorkspaceID,
		Token:       invite.Token,
		Email:       invite.Email,
		CreatedAt:   invite.CreatedAt,
		ExpiresAt:   invite.ExpiresAt,
	})
}

// InviteDetails handles GET /api/invites/:token. Public endpoint.
func (h *WorkspacesHandler) InviteDetails(c *fiber.Ctx) error {
	details, err := h.workspaces.InviteDetails(c.Context(), c.Params("token"))
	if err != nil {
		return err
	}
	return c.JSON(details)
}

// AcceptInvite handles POST /api/invites/:token/accept.
func (h *WorkspacesHandler) AcceptInvite(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	workspaceID, alreadyMember, err := h.workspaces.AcceptInvite(c.Context(), c.Params("token"), user)
	if err != nil {
		return err
	}
	if alreadyMember {
		return c.JSON(fiber.Map{"message": "You are already a member of this workspace"})
	}
	return c.JSON(fiber.Map{
		"message":      "Successfully joined workspace",
		"workspace_id": workspaceID,
	})
}
