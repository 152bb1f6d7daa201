package models

import (
	"time"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractModel is the persistence model for the Contract domain entity.
type ContractModel struct {
	BaseModel
	ContractNumber string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Title          string          `gorm:"type:varchar(200);not null"`
	ContractType   contract.Type   `gorm:"type:varchar(20);not null;default:'PURCHASE';index"`
	Status         contract.Status `gorm:"type:varchar(20);not null;default:'SIGNED';index"`
	Amount         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	StartDate      *time.Time      `gorm:"index"`
	EndDate        *time.Time
	Description    string     `gorm:"type:text"`
	ClientID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProjectID      *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the persistence model to a domain Contract entity.
func (m *ContractModel) ToDomain() *contract.Contract {
	return &contract.Contract{
		BaseEntity: m.BaseModel.ToDomain(),
		Details: contract.Details{
			ContractNumber: m.ContractNumber,
			Title:          m.Title,
			ContractType:   m.ContractType,
			Status:         m.Status,
			Amount:         m.Amount,
			StartDate:      m.StartDate,
			EndDate:        m.EndDate,
			Description:    m.Description,
			ClientID:       m.ClientID,
			ProjectID:      m.ProjectID,
		},
	}
}

// FromDomain populates the persistence model from a domain Contract entity.
func (m *ContractModel) FromDomain(c *contract.Contract) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.ContractNumber = c.ContractNumber
	m.Title = c.Title
	m.ContractType = c.ContractType
	m.Status = c.Status
	m.Amount = c.Amount
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
	m.Description = c.Description
	m.ClientID = c.ClientID
	m.ProjectID = c.ProjectID
}

// ContractModelFromDomain creates a new persistence model from a domain Contract entity.
func ContractModelFromDomain(c *contract.Contract) *ContractModel {
	m := &ContractModel{}
	m.FromDomain(c)
	return m
}
