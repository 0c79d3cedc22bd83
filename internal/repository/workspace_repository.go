package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lakshita-01/devPulse/internal/domain"
)

// WorkspaceRepository defines persistence access for workspaces.
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *domain.Workspace) error
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
	ListByMember(ctx context.Context, userID string) ([]domain.Workspace, error)
	AddMember(ctx context.Context, workspaceID string, member domain.Member) error
}

type workspaceRepository struct {
	coll *mongo.Collection
}

// NewWorkspaceRepository returns a MongoDB-backed implementation.
func NewWorkspaceRepository(db *mongo.Database) WorkspaceRepository {
	return &workspaceRepository{coll: db.Collection("workspaces")}
}

func (r *workspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	_, err := r.coll.InsertOne(ctx, workspace)
	return err
}

func (r *workspaceRepository) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	var ws domain.Workspace
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ws); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ws, nil
}

func (r *workspaceRepository) ListByMember(ctx context.Context, userID string) ([]domain.Workspace, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"members.user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workspaces []domain.Workspace
	if err := cursor.All(ctx, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *workspaceRepository) AddMember(ctx context.Context, workspaceID string, member domain.Member) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": workspaceID},
		bson.M{"$push": bson.M{"members": member}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
