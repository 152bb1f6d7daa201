package models

import (
	"time"

	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice domain entity.
type InvoiceModel struct {
	BaseModel
	InvoiceNumber string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	InvoiceType   finance.InvoiceType   `gorm:"type:varchar(20);not null;default:'RECEIVED';index"`
	Status        finance.InvoiceStatus `gorm:"type:varchar(20);not null;default:'UNISSUED';index"`
	Amount        decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	TaxAmount     decimal.Decimal       `gorm:"type:decimal(18,2);not null;default:0"`
	TotalAmount   decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	InvoiceDate   time.Time             `gorm:"not null;index"`
	DueDate       *time.Time
	Description   string     `gorm:"type:text"`
	Notes         string     `gorm:"type:text"`
	ClientID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContractID    *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	return &finance.Invoice{
		BaseEntity: m.BaseModel.ToDomain(),
		InvoiceDetails: finance.InvoiceDetails{
			InvoiceNumber: m.InvoiceNumber,
			InvoiceType:   m.InvoiceType,
			Status:        m.Status,
			Amount:        m.Amount,
			TaxAmount:     m.TaxAmount,
			InvoiceDate:   m.InvoiceDate,
			DueDate:       m.DueDate,
			Description:   m.Description,
			Notes:         m.Notes,
			ClientID:      m.ClientID,
			ContractID:    m.ContractID,
		},
		TotalAmount: m.TotalAmount,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(inv *finance.Invoice) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.InvoiceNumber = inv.InvoiceNumber
	m.InvoiceType = inv.InvoiceType
	m.Status = inv.Status
	m.Amount = inv.Amount
	m.TaxAmount = inv.TaxAmount
	m.TotalAmount = inv.TotalAmount
	m.InvoiceDate = inv.InvoiceDate
	m.DueDate = inv.DueDate
	m.Description = inv.Description
	m.Notes = inv.Notes
	m.ClientID = inv.ClientID
	m.ContractID = inv.ContractID
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(inv *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	BaseModel
	PaymentNumber   string                `gorm:"type:varchar(50);not null;uniqueIndex"`
	PaymentType     finance.PaymentType   `gorm:"type:varchar(20);not null;index"`
	Status          finance.PaymentStatus `gorm:"type:varchar(20);not null;default:'PAID';index"`
	Amount          decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	PaymentMethod   finance.PaymentMethod `gorm:"type:varchar(20);not null"`
	PaymentDate     time.Time             `gorm:"not null;index"`
	BankAccount     string                `gorm:"type:varchar(100)"`
	ReferenceNumber string                `gorm:"type:varchar(100)"`
	Notes           string                `gorm:"type:text"`
	ClientID        uuid.UUID             `gorm:"type:uuid;not null;index"`
	ContractID      *uuid.UUID            `gorm:"type:uuid;index"`
	InvoiceID       *uuid.UUID            `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment entity.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		BaseEntity: m.BaseModel.ToDomain(),
		PaymentDetails: finance.PaymentDetails{
			PaymentNumber:   m.PaymentNumber,
			PaymentType:     m.PaymentType,
			Status:          m.Status,
			Amount:          m.Amount,
			PaymentMethod:   m.PaymentMethod,
			PaymentDate:     m.PaymentDate,
			BankAccount:     m.BankAccount,
			ReferenceNumber: m.ReferenceNumber,
			Notes:           m.Notes,
			ClientID:        m.ClientID,
			ContractID:      m.ContractID,
			InvoiceID:       m.InvoiceID,
		},
	}
}

// FromDomain populates the persistence model from a domain Payment entity.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.PaymentNumber = p.PaymentNumber
	m.PaymentType = p.PaymentType
	m.Status = p.Status
	m.Amount = p.Amount
	m.PaymentMethod = p.PaymentMethod
	m.PaymentDate = p.PaymentDate
	m.BankAccount = p.BankAccount
	m.ReferenceNumber = p.ReferenceNumber
	m.Notes = p.Notes
	m.ClientID = p.ClientID
	m.ContractID = p.ContractID
	m.InvoiceID = p.InvoiceID
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment entity.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
