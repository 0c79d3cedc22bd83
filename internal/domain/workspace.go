package domain

import "time"

// Role enumerates workspace membership roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Member is one entry in a workspace's membership relation.
type Member struct {
	UserID string `bson:"user_id" json:"user_id"`
	Role   Role   `bson:"role" json:"role"`
}

// Workspace is the tenant boundary owning projects, tasks and members.
// Every workspace has at least one admin member (its creator).
type Workspace struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Members   []Member  `bson:"members" json:"members"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// MemberByUserID returns the membership entry for a user, if present.
func (w *Workspace) MemberByUserID(userID string) (Member, bool) {
	for _, m := range w.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Member{}, false
}
