package domain

import "time"

// User is the domain model for registered accounts.
type User struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email" json:"email"`
	PasswordHash       string    `bson:"password" json:"-"`
	Avatar             string    `bson:"avatar" json:"avatar,omitempty"`
	Workspaces         []string  `bson:"workspaces" json:"workspaces"`
	MustChangePassword bool      `bson:"must_change_password" json:"must_change_password"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}
