package models

import (
	"time"

	"github.com/erp/erp-system/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
// Permissions are stored as a JSON array.
type UserModel struct {
	BaseModel
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Permissions  []string   `gorm:"serializer:json;type:text;not null"`
	IsAdmin      bool       `gorm:"not null;default:false"`
	LastLoginAt  *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	perms := m.Permissions
	if perms == nil {
		perms = []string{}
	}
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Permissions:  perms,
		IsAdmin:      m.IsAdmin,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	m.Permissions = u.Permissions
	if m.Permissions == nil {
		m.Permissions = []string{}
	}
	m.IsAdmin = u.IsAdmin
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
