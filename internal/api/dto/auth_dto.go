package dto

import "github.com/lakshita-01/devPulse/internal/domain"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload for password changes.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Avatar             string   `json:"avatar,omitempty"`
	Workspaces         []string `json:"workspaces"`
	MustChangePassword bool     `json:"must_change_password"`
}

// TokenResponse standard response for auth endpoints.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
	WorkspaceID string       `json:"workspace_id,omitempty"`
}

// NewUserResponse maps a domain user to its public view.
func NewUserResponse(user *domain.User) UserResponse {
	workspaces := user.Workspaces
	if workspaces == nil {
		workspaces = []string{}
	}
	return UserResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Avatar:             user.Avatar,
		Workspaces:         workspaces,
		MustChangePassword: user.MustChangePassword,
	}
}
