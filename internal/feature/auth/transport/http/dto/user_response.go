package dto

import (
	"time"

	"greenthumb_backend/internal/feature/auth/domain/entity"
)

// UserRes is the sanitized user projection. It never carries the password
// hash or the verification code.
type UserRes struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Provider      string    `json:"provider"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewUserRes projects a user entity to its public shape.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Username:      u.Username,
		Email:         u.Email,
		Provider:      u.Provider,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// UpdateProfileReq is the body of PUT /api/users/:id. Password is bound only
// so that its presence can be rejected.
type UpdateProfileReq struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
	Username  *string `json:"username" binding:"omitempty,max=100"`
	Password  *string `json:"password"`
}

// ErrorRes is the body of every error response.
type ErrorRes struct {
	Error string `json:"error"`
}

// MessageRes is the body of responses that only acknowledge.
type MessageRes struct {
	Message string `json:"message"`
}
