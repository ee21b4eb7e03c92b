package models

import (
	"time"

	"taskboard-backend/internal/common/nullable"
)

// UserSummary is the list representation of a user
// @Description User as returned by the list and create endpoints
type UserSummary struct {
	ID            string    `json:"id" example:"3f1c1f5e-7d1a-4c7e-9a53-3c1a8f0b6b21"`
	Name          string    `json:"name" example:"John Doe"`
	Email         *string   `json:"email" example:"john@example.com"`
	Avatar        *string   `json:"avatar" example:"https://i.pravatar.cc/150?u=john"`
	WalletAddress *string   `json:"walletAddress" example:"0x52908400098527886E0F7030069857D2E4169EE7"`
	Role          string    `json:"role" example:"MEMBER" enums:"MEMBER,MANAGER"`
	CreatedAt     time.Time `json:"createdAt" example:"2025-03-15T14:30:00Z"`
}

// UserResponse is the full public profile
// @Description Public profile of a user
type UserResponse struct {
	UserSummary
	UpdatedAt time.Time `json:"updatedAt" example:"2025-03-15T14:30:00Z"`
}

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Name          string  `json:"name" example:"John Doe"`
	Email         *string `json:"email,omitempty" example:"john@example.com"`
	Avatar        *string `json:"avatar,omitempty"`
	WalletAddress *string `json:"walletAddress,omitempty"`
	Role          *string `json:"role,omitempty" example:"MEMBER"`
}

// UpdateUserRequest is the body of PATCH /users/{id}.
// Absent fields are left unchanged; null clears email, avatar or walletAddress.
type UpdateUserRequest struct {
	Name          *string                `json:"name,omitempty" swaggertype:"string"`
	Email         nullable.Value[string] `json:"email" swaggertype:"string"`
	Avatar        nullable.Value[string] `json:"avatar" swaggertype:"string"`
	WalletAddress nullable.Value[string] `json:"walletAddress" swaggertype:"string"`
	Role          *string                `json:"role,omitempty" swaggertype:"string" example:"MANAGER"`
}

// UserEnvelope wraps single-user responses
type UserEnvelope struct {
	User    *UserResponse `json:"user"`
	Success bool          `json:"success" example:"true"`
}
