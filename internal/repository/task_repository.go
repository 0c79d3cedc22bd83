package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lakshita-01/devPulse/internal/domain"
)

// TaskPatch describes a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssigneeID  *string
	DueDate     *time.Time
	Subtasks    *[]domain.Subtask
}

// TaskRepository defines persistence access for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByWorkspace(ctx context.Context, workspaceID, projectID string) ([]domain.Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) error
	SetSubtasks(ctx context.Context, id string, subtasks []domain.Subtask, aiGenerated bool) error
	Delete(ctx context.Context, id string) error
}

type taskRepository struct {
	coll *mongo.Collection
}

// NewTaskRepository returns a MongoDB-backed implementation.
func NewTaskRepository(db *mongo.Database) TaskRepository {
	return &taskRepository{coll: db.Collection("tasks")}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.coll.InsertOne(ctx, task)
	return err
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByWorkspace(ctx context.Context, workspaceID, projectID string) ([]domain.Task, error) {
	filter := bson.M{"workspace_id": workspaceID}
	if projectID != "" {
		filter["project_id"] = projectID
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, id string, patch TaskPatch) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.AssigneeID != nil {
		set["assignee_id"] = *patch.AssigneeID
	}
	if patch.DueDate != nil {
		set["due_date"] = *patch.DueDate
	}
	if patch.Subtasks != nil {
		set["subtasks"] = *patch.Subtasks
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taskRepository) SetSubtasks(ctx context.Context, id string, subtasks []domain.Subtask, aiGenerated bool) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"subtasks":     subtasks,
			"ai_generated": aiGenerated,
			"updated_at":   time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
