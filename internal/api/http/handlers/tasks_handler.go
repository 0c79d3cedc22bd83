package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lakshita-01/devPulse/internal/api/dto"
	"github.com/lakshita-01/devPulse/internal/auth"
	"github.com/lakshita-01/devPulse/internal/repository"
	"github.com/lakshita-01/devPulse/internal/service"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// TasksHandler manages task endpoints.
type TasksHandler struct {
	guard *auth.Guard
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(guard *auth.Guard, taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{guard: guard, tasks: taskService}
}

// List handles GET /api/tasks/:workspace_id.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	workspaceID := c.Params("workspace_id")
	if _, err := h.guard.Authorize(c.Context(), user.ID, workspaceID, nil); err != nil {
		return err
	}

	tasks, err := h.tasks.List(c.Context(), workspaceID, c.Query("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

// Create handles POST /api/tasks.
func (h *TasksHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	var req dto.TaskCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.ProjectID == "" || req.WorkspaceID == "" {
		return apperrors.NewValidationError("title, project_id, workspace_id required", nil)
	}

	if _, err := h.guard.Authorize(c.Context(), user.ID, req.WorkspaceID, nil); err != nil {
		return err
	}

	task, err := h.tasks.Create(c.Context(), service.TaskCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		ProjectID:   req.ProjectID,
		WorkspaceID: req.WorkspaceID,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Subtasks:    req.Subtasks,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"task": task})
}

// Update handles PATCH /api/tasks/:task_id.
func (h *TasksHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	task, err := h.tasks.Get(c.Context(), c.Params("task_id"))
	if err != nil {
		return err
	}
	if _, err := h.guard.Authorize(c.Context(), user.ID, task.WorkspaceID, nil); err != nil {
		return err
	}

	var req dto.TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	updated, err := h.tasks.Update(c.Context(), task, repository.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Subtasks:    req.Subtasks,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"task": updated})
}

// Delete handles DELETE /api/tasks/:task_id.
func (h *TasksHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("not authenticated")
	}

	task, err := h.tasks.Get(c.Context(), c.Params("task_id"))
	if err != nil {
		return err
	}
	if _, err := h.guard.Authorize(c.Context(), user.ID, task.WorkspaceID, nil); err != nil {
		return err
	}

	if err := h.tasks.Delete(c.Context(), task); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}
