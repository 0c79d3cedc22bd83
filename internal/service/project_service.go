package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// ProjectService coordinates project workflows.
type ProjectService struct {
	projects repository.ProjectRepository
}

// NewProjectService constructs the service.
func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns the workspace's projects.
func (s *ProjectService) List(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	projects, err := s.projects.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// Create makes a project inside a workspace.
func (s *ProjectService) Create(ctx context.Context, workspaceID, name, description string) (*domain.Project, error) {
	project := &domain.Project{
		ID:          primitive.NewObjectID().Hex(),
		Name:        name,
		Description: description,
		WorkspaceID: workspaceID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, apperrors.MapError(err)
	}
	return project, nil
}
