package domain

import "time"

// Invite is a shareable workspace invitation link.
type Invite struct {
	ID          string    `bson:"id" json:"id"`
	WorkspaceID string    `bson:"workspace_id" json:"workspace_id"`
	Token       string    `bson:"token" json:"token"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	CreatedBy   string    `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expires_at"`
}

// Expired reports whether the invite has passed its expiry instant.
func (i *Invite) Expired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
