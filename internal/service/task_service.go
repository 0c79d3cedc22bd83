package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/events"
	"github.com/lakshita-01/devPulse/internal/realtime"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// AssigneeSummary is the public profile of a task assignee.
type AssigneeSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// TaskView is a task hydrated with its assignee's profile.
type TaskView struct {
	domain.Task
	Assignee *AssigneeSummary `json:"assignee,omitempty"`
}

// TaskCreateInput describes task creation payload.
type TaskCreateInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	ProjectID   string
	WorkspaceID string
	AssigneeID  string
	DueDate     *time.Time
	Subtasks    []domain.Subtask
}

// TaskService coordinates task workflows. Successful mutations hand a
// broadcast event to the realtime layer after the persistence write; the
// pair is not atomic, clients reconcile by refetching.
type TaskService struct {
	tasks       repository.TaskRepository
	users       repository.UserRepository
	broadcaster realtime.Broadcaster
}

// TaskDependencies bundles collaborators for the task service.
type TaskDependencies struct {
	TaskRepo    repository.TaskRepository
	UserRepo    repository.UserRepository
	Broadcaster realtime.Broadcaster
}

// NewTaskService constructs the service.
func NewTaskService(deps TaskDependencies) *TaskService {
	return &TaskService{
		tasks:       deps.TaskRepo,
		users:       deps.UserRepo,
		broadcaster: deps.Broadcaster,
	}
}

// List returns the workspace's tasks, optionally filtered by project,
// with assignees hydrated.
func (s *TaskService) List(ctx context.Context, workspaceID, projectID string) ([]TaskView, error) {
	tasks, err := s.tasks.ListByWorkspace(ctx, workspaceID, projectID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		view, err := s.hydrate(ctx, task)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Get fetches a task by id.
func (s *TaskService) Get(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("task", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// Create persists a new task and broadcasts task_created to its workspace.
func (s *TaskService) Create(ctx context.Context, input TaskCreateInput) (*TaskView, error) {
	if input.Status == "" {
		input.Status = domain.TaskStatusTodo
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	if !domain.ValidStatus(input.Status) {
		return nil, apperrors.NewValidationError("unknown task status", nil)
	}
	if !domain.ValidPriority(input.Priority) {
		return nil, apperrors.NewValidationError("unknown task priority", nil)
	}

	now := time.Now().UTC()
	task := domain.Task{
		ID:          primitive.NewObjectID().Hex(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		ProjectID:   input.ProjectID,
		WorkspaceID: input.WorkspaceID,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
		Subtasks:    input.Subtasks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Subtasks == nil {
		task.Subtasks = []domain.Subtask{}
	}

	if err := s.tasks.Create(ctx, &task); err != nil {
		return nil, apperrors.MapError(err)
	}

	view, err := s.hydrate(ctx, task)
	if err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(task.WorkspaceID, events.TaskCreated(task.WorkspaceID, view))
	return &view, nil
}

// Update applies a partial update and broadcasts task_updated.
func (s *TaskService) Update(ctx context.Context, task *domain.Task, patch repository.TaskPatch) (*TaskView, error) {
	if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
		return nil, apperrors.NewValidationError("unknown task status", nil)
	}
	if patch.Priority != nil && !domain.ValidPriority(*patch.Priority) {
		return nil, apperrors.NewValidationError("unknown task priority", nil)
	}

	if err := s.tasks.Update(ctx, task.ID, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("task", nil)
		}
		return nil, apperrors.MapError(err)
	}

	updated, err := s.tasks.GetByID(ctx, task.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	view, err := s.hydrate(ctx, *updated)
	if err != nil {
		return nil, err
	}
	s.broadcaster.Broadcast(updated.WorkspaceID, events.TaskUpdated(updated.WorkspaceID, view))
	return &view, nil
}

// Delete removes a task and broadcasts task_deleted.
func (s *TaskService) Delete(ctx context.Context, task *domain.Task) error {
	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("task", nil)
		}
		return apperrors.MapError(err)
	}
	s.broadcaster.Broadcast(task.WorkspaceID, events.TaskDeleted(task.WorkspaceID, task.ID))
	return nil
}

// ApplyGeneratedSubtasks replaces a task's subtasks with generated ones,
// marks the task AI-generated and broadcasts task_ai_complete.
func (s *TaskService) ApplyGeneratedSubtasks(ctx context.Context, taskID string, subtasks []domain.Subtask) error {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.tasks.SetSubtasks(ctx, taskID, subtasks, true); err != nil {
		return apperrors.MapError(err)
	}
	s.broadcaster.Broadcast(task.WorkspaceID, events.TaskAIComplete(task.WorkspaceID, taskID))
	return nil
}

func (s *TaskService) hydrate(ctx context.Context, task domain.Task) (TaskView, error) {
	view := TaskView{Task: task}
	if task.AssigneeID == "" {
		return view, nil
	}

	assignee, err := s.users.GetByID(ctx, task.AssigneeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return view, nil
		}
		return view, apperrors.MapError(err)
	}
	view.Assignee = &AssigneeSummary{
		ID:     assignee.ID,
		Name:   assignee.Name,
		Email:  assignee.Email,
		Avatar: assignee.Avatar,
	}
	return view, nil
}
