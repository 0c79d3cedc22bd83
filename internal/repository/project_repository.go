package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lakshita-01/devPulse/internal/domain"
)

// ProjectRepository defines persistence access for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Project, error)
}

type projectRepository struct {
	coll *mongo.Collection
}

// NewProjectRepository returns a MongoDB-backed implementation.
func NewProjectRepository(db *mongo.Database) ProjectRepository {
	return &projectRepository{coll: db.Collection("projects")}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.coll.InsertOne(ctx, project)
	return err
}

func (r *projectRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]domain.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"workspace_id": workspaceID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []domain.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}
