package dto

import (
	"time"

	"wordford/internal/feature/auth/domain/entity"
)

// MessageResponse is the body of a successful auth operation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of a failed auth operation.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is the public view of a user. It never carries the password hash.
type UserResponse struct {
	ID         uint      `json:"id"`
	Email      string    `json:"email"`
	GivenName  string    `json:"given_name"`
	FamilyName string    `json:"family_name"`
	AvatarURL  string    `json:"avatar_url"`
	Role       int       `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewUserResponse builds the public view of u.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		GivenName:  u.GivenName,
		FamilyName: u.FamilyName,
		AvatarURL:  u.AvatarURL,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
