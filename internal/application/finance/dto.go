package finance

import (
	"time"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRequest carries the editable fields of an invoice.
// An empty InvoiceNumber is generated on create and kept on update.
type InvoiceRequest struct {
	InvoiceNumber string
	InvoiceType   string
	Status        string
	Amount        decimal.Decimal
	// TaxAmount wins over TaxRate when both are set; neither means no tax
	TaxAmount *decimal.Decimal
	// TaxRate is a percentage applied to Amount
	TaxRate *decimal.Decimal
	// TotalAmount, when set, must equal Amount + tax
	TotalAmount *decimal.Decimal
	InvoiceDate *time.Time
	DueDate     *time.Time
	Description string
	Notes       string
	ClientID    uuid.UUID
	ContractID  *uuid.UUID
}

func (r InvoiceRequest) details() finance.InvoiceDetails {
	tax := decimal.Zero
	switch {
	case r.TaxAmount != nil:
		tax = *r.TaxAmount
	case r.TaxRate != nil:
		tax = finance.TaxFromRate(r.Amount, *r.TaxRate)
	}
	d := finance.InvoiceDetails{
		InvoiceNumber: r.InvoiceNumber,
		InvoiceType:   finance.InvoiceType(r.InvoiceType),
		Status:        finance.InvoiceStatus(r.Status),
		Amount:        r.Amount,
		TaxAmount:     tax,
		DueDate:       r.DueDate,
		Description:   r.Description,
		Notes:         r.Notes,
		ClientID:      r.ClientID,
		ContractID:    r.ContractID,
	}
	if r.InvoiceDate != nil {
		d.InvoiceDate = *r.InvoiceDate
	}
	return d
}

// InvoiceListFilter narrows an invoice listing
type InvoiceListFilter struct {
	Search      string
	Status      string
	InvoiceType string
	ClientID    *uuid.UUID
	ContractID  *uuid.UUID
	InvoiceDate shared.DateRange
}

// InvoiceResponse is the read model of an invoice
type InvoiceResponse struct {
	ID             uuid.UUID
	InvoiceNumber  string
	InvoiceType    string
	Status         string
	Amount         decimal.Decimal
	TaxAmount      decimal.Decimal
	TotalAmount    decimal.Decimal
	InvoiceDate    time.Time
	DueDate        *time.Time
	Description    string
	Notes          string
	ClientID       uuid.UUID
	ClientName     string
	ContractID     *uuid.UUID
	ContractNumber string
	ContractTitle  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ToInvoiceResponse converts a domain invoice to its read model.
// client and c may be nil.
func ToInvoiceResponse(inv *finance.Invoice, client *partner.Client, c *contract.Contract) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceType:   string(inv.InvoiceType),
		Status:        string(inv.Status),
		Amount:        inv.Amount,
		TaxAmount:     inv.TaxAmount,
		TotalAmount:   inv.TotalAmount,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Description:   inv.Description,
		Notes:         inv.Notes,
		ClientID:      inv.ClientID,
		ContractID:    inv.ContractID,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	if client != nil {
		resp.ClientName = client.Name
	}
	if c != nil {
		resp.ContractNumber = c.ContractNumber
		resp.ContractTitle = c.Title
	}
	return resp
}

// PaymentRequest carries the editable fields of a payment.
// An empty PaymentNumber is generated on create and kept on update.
type PaymentRequest struct {
	PaymentNumber   string
	PaymentType     string
	Status          string
	Amount          decimal.Decimal
	PaymentMethod   string
	PaymentDate     *time.Time
	BankAccount     string
	ReferenceNumber string
	Notes           string
	ClientID        uuid.UUID
	ContractID      *uuid.UUID
	InvoiceID       *uuid.UUID
}

func (r PaymentRequest) details() finance.PaymentDetails {
	d := finance.PaymentDetails{
		PaymentNumber:   r.PaymentNumber,
		PaymentType:     finance.PaymentType(r.PaymentType),
		Status:          finance.PaymentStatus(r.Status),
		Amount:          r.Amount,
		PaymentMethod:   finance.PaymentMethod(r.PaymentMethod),
		BankAccount:     r.BankAccount,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
		ClientID:        r.ClientID,
		ContractID:      r.ContractID,
		InvoiceID:       r.InvoiceID,
	}
	if r.PaymentDate != nil {
		d.PaymentDate = *r.PaymentDate
	}
	return d
}

// PaymentListFilter narrows a payment listing
type PaymentListFilter struct {
	Search      string
	Status      string
	PaymentType string
	ClientID    *uuid.UUID
	ContractID  *uuid.UUID
	InvoiceID   *uuid.UUID
	PaymentDate shared.DateRange
}

// PaymentResponse is the read model of a payment
type PaymentResponse struct {
	ID              uuid.UUID
	PaymentNumber   string
	PaymentType     string
	Status          string
	Amount          decimal.Decimal
	PaymentMethod   string
	PaymentDate     time.Time
	BankAccount     string
	ReferenceNumber string
	Notes           string
	ClientID        uuid.UUID
	ClientName      string
	ContractID      *uuid.UUID
	ContractNumber  string
	ContractTitle   string
	InvoiceID       *uuid.UUID
	InvoiceNumber   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ToPaymentResponse converts a domain payment to its read model.
// client, c and inv may be nil.
func ToPaymentResponse(p *finance.Payment, client *partner.Client, c *contract.Contract, inv *finance.Invoice) PaymentResponse {
	resp := PaymentResponse{
		ID:              p.ID,
		PaymentNumber:   p.PaymentNumber,
		PaymentType:     string(p.PaymentType),
		Status:          string(p.Status),
		Amount:          p.Amount,
		PaymentMethod:   string(p.PaymentMethod),
		PaymentDate:     p.PaymentDate,
		BankAccount:     p.BankAccount,
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		ClientID:        p.ClientID,
		ContractID:      p.ContractID,
		InvoiceID:       p.InvoiceID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if client != nil {
		resp.ClientName = client.Name
	}
	if c != nil {
		resp.ContractNumber = c.ContractNumber
		resp.ContractTitle = c.Title
	}
	if inv != nil {
		resp.InvoiceNumber = inv.InvoiceNumber
	}
	return resp
}

// NextNumber is a preview of the number the next document would get
type NextNumber struct {
	Number string
}
