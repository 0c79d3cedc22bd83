package domain

import "time"

// Project groups tasks inside a workspace.
type Project struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	WorkspaceID string    `bson:"workspace_id" json:"workspace_id"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
