package identity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erp/erp-system/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 10

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 6

// User is an account that can sign in. Administrators bypass every
// permission check; other users are limited to their Permissions.
type User struct {
	shared.BaseEntity
	Username     string
	PasswordHash string
	Permissions  []string
	IsAdmin      bool
	LastLoginAt  *time.Time
}

// NewUser creates a user with a hashed password and validated permissions
func NewUser(username, password string, permissions []string, isAdmin bool) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	perms, err := NormalizePermissions(permissions)
	if err != nil {
		return nil, err
	}

	user := &User{
		BaseEntity:  shared.NewBaseEntity(),
		Username:    username,
		Permissions: perms,
		IsAdmin:     isAdmin,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// NewInitialAdmin creates the first administrator with the whole vocabulary
func NewInitialAdmin(username, password string) (*User, error) {
	return NewUser(username, password, AllPermissions, true)
}

// Rename changes the username
func (u *User) Rename(username string) error {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return err
	}
	u.Username = username
	u.Touch()
	return nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// SetPermissions replaces the permission set
func (u *User) SetPermissions(permissions []string) error {
	perms, err := NormalizePermissions(permissions)
	if err != nil {
		return err
	}
	u.Permissions = perms
	u.Touch()
	return nil
}

// SetAdmin grants or revokes the administrator flag
func (u *User) SetAdmin(isAdmin bool) {
	u.IsAdmin = isAdmin
	u.Touch()
}

// VerifyPassword compares password with the stored hash in constant time
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps the last successful sign-in
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// Grants returns the authorization view of this user
func (u *User) Grants() Grants {
	return Grants{
		UserID:      u.ID,
		Username:    u.Username,
		Permissions: append([]string(nil), u.Permissions...),
		IsAdmin:     u.IsAdmin,
	}
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "用户名不能为空")
	}
	n := utf8.RuneCountInString(username)
	if n < 2 || n > 50 {
		return shared.NewDomainError("INVALID_USERNAME", "用户名长度必须在2到50个字符之间")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "密码长度至少为6位")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "密码长度不能超过72位")
	}
	return nil
}
