package dto

import (
	"time"

	"github.com/lakshita-01/devPulse/internal/domain"
)

// TaskCreateRequest payload for new tasks.
type TaskCreateRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Status      domain.TaskStatus   `json:"status,omitempty"`
	Priority    domain.TaskPriority `json:"priority,omitempty"`
	ProjectID   string              `json:"project_id"`
	WorkspaceID string              `json:"workspace_id"`
	AssigneeID  string              `json:"assignee_id,omitempty"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
	Subtasks    []domain.Subtask    `json:"subtasks,omitempty"`
	// GenerateAI is client-driven: clients that set it call the
	// generate-subtasks endpoint themselves after creation.
	GenerateAI bool `json:"generate_ai,omitempty"`
}

// TaskUpdateRequest payload for partial task updates. Absent fields are
// left unchanged.
type TaskUpdateRequest struct {
	Title       *string              `json:"title,omitempty"`
	Description *string              `json:"description,omitempty"`
	Status      *domain.TaskStatus   `json:"status,omitempty"`
	Priority    *domain.TaskPriority `json:"priority,omitempty"`
	AssigneeID  *string              `json:"assignee_id,omitempty"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
	Subtasks    *[]domain.Subtask    `json:"subtasks,omitempty"`
}
