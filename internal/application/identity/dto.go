package identity

import (
	"time"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginInput contains the input for user login
type LoginInput struct {
	Username string
	Password string
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserInfo
}

// UserInfo is the public view of a user account
type UserInfo struct {
	ID          uuid.UUID
	Username    string
	Permissions []string
	IsAdmin     bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToUserInfo converts a domain user to its public view
func ToUserInfo(u *identity.User) UserInfo {
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		Permissions: perms,
		IsAdmin:     u.IsAdmin,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// LogoutInput contains the input for user logout
type LogoutInput struct {
	UserID   uuid.UUID
	TokenJTI string
	// TokenTTL is how long the token would still be accepted
	TokenTTL time.Duration
}

// BootstrapStatus reports the first-run state
type BootstrapStatus struct {
	HasUsers    bool
	Initialized bool
	State       identity.BootstrapState
}

// InitAdminInput contains the credentials of the first administrator
type InitAdminInput struct {
	Username string
	Password string
}

// CreateUserInput contains the input for creating a user
type CreateUserInput struct {
	Username    string
	Password    string
	Permissions []string
	IsAdmin     bool
}

// UpdateUserInput carries the fields to change; nil fields are left as is
type UpdateUserInput struct {
	Username    *string
	Password    *string
	Permissions *[]string
	IsAdmin     *bool
}
