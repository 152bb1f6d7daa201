package handler

import (
	"time"

	"github.com/erp/erp-system/internal/application/identity"
	"github.com/google/uuid"
)

// =====================
// Auth Request DTOs
// =====================

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=128"`
}

// InitAdminRequest represents the request body for creating the first administrator
type InitAdminRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// =====================
// Auth Response DTOs
// =====================

// UserResponse represents a user account in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Permissions []string   `json:"permissions"`
	IsAdmin     bool       `json:"isAdmin"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// LoginResponse represents the response body for successful login
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// BootstrapResponse reports whether the system still needs its first administrator
type BootstrapResponse struct {
	HasUsers    bool   `json:"hasUsers"`
	Initialized bool   `json:"initialized"`
	State       string `json:"state"`
}

// HasUsersResponse reports whether any account exists
type HasUsersResponse struct {
	HasUsers bool `json:"hasUsers"`
}

func toUserResponse(u identity.UserInfo) UserResponse {
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Permissions: perms,
		IsAdmin:     u.IsAdmin,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
