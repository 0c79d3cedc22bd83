package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lakshita-01/devPulse/internal/api/dto"
	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/service"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// ProjectsHandler manages project endpoints.
type ProjectsHandler struct {
	guard    *auth.Guard
	projects *service.ProjectService
}

// NewProjectsHandler constructs handler.
func NewProjectsHandler(guard *auth.Guard, projectService *service.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{guard: guard, projects: projectService}
}

// List handles GET /api/projects/:workspace_id.
func (h *ProjectsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	workspaceID := c.Params("workspace_id")
	if _, err := h.guard.Authorize(c.Context(), user.ID, workspaceID, nil); err != nil {
		return err
	}

	projects, err := h.projects.List(c.Context(), workspaceID)
	if err != nil {
		return err
	}
	return c.JSON(projects)
}

// Create handles POST /api/projects.
func (h *ProjectsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	var req dto.ProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.WorkspaceID == "" {
		return apperrors.NewValidationError("name and workspace_id required", nil)
	}

	if _, err := h.guard.Authorize(c.Context(), user.ID, req.WorkspaceID, nil); err != nil {
		return err
	}

	project, err := h.projects.Create(c.Context(), req.WorkspaceID, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(project)
}
