package repository

import (
	"context"
	"sync"
	"time"

	"github.com/lakshita-01/devPulse/internal/domain"
)

// In-memory repository implementations, interchangeable with the MongoDB
// ones. They back unit tests and local development without a running store.

// MemoryUserRepository keeps users in a map guarded by a mutex.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewMemoryUserRepository creates an empty in-memory user store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]domain.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneUser(user)
	return &copied, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := cloneUser(user)
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) AddWorkspace(_ context.Context, userID, workspaceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Workspaces = append(user.Workspaces, workspaceID)
	r.users[userID] = user
	return nil
}

func (r *MemoryUserRepository) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.PasswordHash = passwordHash
	user.MustChangePassword = false
	r.users[userID] = user
	return nil
}

// MemoryWorkspaceRepository keeps workspaces in a map guarded by a mutex.
type MemoryWorkspaceRepository struct {
	mu         sync.RWMutex
	workspaces map[string]domain.Workspace
}

// NewMemoryWorkspaceRepository creates an empty in-memory workspace store.
func NewMemoryWorkspaceRepository() *MemoryWorkspaceRepository {
	return &MemoryWorkspaceRepository{workspaces: make(map[string]domain.Workspace)}
}

func (r *MemoryWorkspaceRepository) Create(_ context.Context, workspace *domain.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspaces[workspace.ID] = cloneWorkspace(*workspace)
	return nil
}

func (r *MemoryWorkspaceRepository) GetByID(_ context.Context, id string) (*domain.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ws, ok := r.workspaces[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneWorkspace(ws)
	return &copied, nil
}

func (r *MemoryWorkspaceRepository) ListByMember(_ context.Context, userID string) ([]domain.Workspace, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Workspace
	for _, ws := range r.workspaces {
		if _, ok := ws.MemberByUserID(userID); ok {
			result = append(result, cloneWorkspace(ws))
		}
	}
	return result, nil
}

func (r *MemoryWorkspaceRepository) AddMember(_ context.Context, workspaceID string, member domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.workspaces[workspaceID]
	if !ok {
		return ErrNotFound
	}
	ws.Members = append(ws.Members, member)
	r.workspaces[workspaceID] = ws
	return nil
}

// MemoryProjectRepository keeps projects in a map guarded by a mutex.
type MemoryProjectRepository struct {
	mu       sync.RWMutex
	projects map[string]domain.Project
}

// NewMemoryProjectRepository creates an empty in-memory project store.
func NewMemoryProjectRepository() *MemoryProjectRepository {
	return &MemoryProjectRepository{projects: make(map[string]domain.Project)}
}

func (r *MemoryProjectRepository) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = *project
	return nil
}

func (r *MemoryProjectRepository) ListByWorkspace(_ context.Context, workspaceID string) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Project
	for _, p := range r.projects {
		if p.WorkspaceID == workspaceID {
			result = append(result, p)
		}
	}
	return result, nil
}

// MemoryTaskRepository keeps tasks in a map guarded by a mutex.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
}

// NewMemoryTaskRepository creates an empty in-memory task store.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{tasks: make(map[string]domain.Task)}
}

func (r *MemoryTaskRepository) Create(_ context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = cloneTask(*task)
	return nil
}

func (r *MemoryTaskRepository) GetByID(_ context.Context, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneTask(task)
	return &copied, nil
}

func (r *MemoryTaskRepository) ListByWorkspace(_ context.Context, workspaceID, projectID string) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Task
	for _, task := range r.tasks {
		if task.WorkspaceID != workspaceID {
			continue
		}
		if projectID != "" && task.ProjectID != projectID {
			continue
		}
		result = append(result, cloneTask(task))
	}
	return result, nil
}

func (r *MemoryTaskRepository) Update(_ context.Context, id string, patch TaskPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return ErrNotFound
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.AssigneeID != nil {
		task.AssigneeID = *patch.AssigneeID
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		task.DueDate = &due
	}
	if patch.Subtasks != nil {
		task.Subtasks = append([]domain.Subtask(nil), (*patch.Subtasks)...)
	}
	task.UpdatedAt = time.Now().UTC()
	r.tasks[id] = task
	return nil
}

func (r *MemoryTaskRepository) SetSubtasks(_ context.Context, id string, subtasks []domain.Subtask, aiGenerated bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return ErrNotFound
	}
	task.Subtasks = append([]domain.Subtask(nil), subtasks...)
	task.AIGenerated = aiGenerated
	task.UpdatedAt = time.Now().UTC()
	r.tasks[id] = task
	return nil
}

func (r *MemoryTaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

// MemoryInviteRepository keeps invites in a map guarded by a mutex.
type MemoryInviteRepository struct {
	mu      sync.RWMutex
	invites map[string]domain.Invite
}

// NewMemoryInviteRepository creates an empty in-memory invite store.
func NewMemoryInviteRepository() *MemoryInviteRepository {
	return &MemoryInviteRepository{invites: make(map[string]domain.Invite)}
}

func (r *MemoryInviteRepository) Create(_ context.Context, invite *domain.Invite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invites[invite.Token] = *invite
	return nil
}

func (r *MemoryInviteRepository) GetByToken(_ context.Context, token string) (*domain.Invite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	invite, ok := r.invites[token]
	if !ok {
		return nil, ErrNotFound
	}
	copied := invite
	return &copied, nil
}

func cloneUser(u domain.User) domain.User {
	u.Workspaces = append([]string(nil), u.Workspaces...)
	return u
}

func cloneWorkspace(w domain.Workspace) domain.Workspace {
	w.Members = append([]domain.Member(nil), w.Members...)
	return w
}

func cloneTask(t domain.Task) domain.Task {
	t.Subtasks = append([]domain.Subtask(nil), t.Subtasks...)
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}
