package models

import (
	"github.com/erp/erp-system/internal/domain/partner"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	BaseModel
	Name        string             `gorm:"type:varchar(200);not null;index"`
	ContactName string             `gorm:"type:varchar(100)"`
	Phone       string             `gorm:"type:varchar(50)"`
	Email       string             `gorm:"type:varchar(200)"`
	Address     string             `gorm:"type:varchar(500)"`
	ClientType  partner.ClientType `gorm:"type:varchar(20);not null;default:'CUSTOMER';index"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		BaseEntity: m.BaseModel.ToDomain(),
		ClientDetails: partner.ClientDetails{
			Name:        m.Name,
			ContactName: m.ContactName,
			Phone:       m.Phone,
			Email:       m.Email,
			Address:     m.Address,
		},
		ClientType: m.ClientType,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.ContactName = c.ContactName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.ClientType = c.ClientType
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
