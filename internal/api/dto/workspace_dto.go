package dto

import "time"

// WorkspaceCreateRequest payload for new workspaces.
type WorkspaceCreateRequest struct {
	Name string `json:"name"`
}

// MemberCreateRequest payload for admin-created member accounts.
type MemberCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// InviteCreateRequest payload for invite links.
type InviteCreateRequest struct {
	Email string `json:"email,omitempty"`
}

// InviteResponse is the view of a freshly issued invite link.
type InviteResponse struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Token       string    `json:"token"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UserSummary is the short form used in membership responses.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
