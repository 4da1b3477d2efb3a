package dto

import (
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// RegisterRequest defines the data needed to register a local user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UpdateUserRequest defines the fields a user may change on their profile.
// Pointers distinguish "not provided" from zero values.
type UpdateUserRequest struct {
	Name *string `json:"name"`
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"authProvider"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		AuthProvider: string(u.AuthProvider),
		CreatedAt:    u.CreatedAt,
	}
}
