package handler

import (
	"time"

	"github.com/erp/erp-system/internal/application/finance"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRequest represents the request body for creating or replacing an invoice.
// An empty invoiceNumber is generated on create and kept on update.
// taxAmount wins over taxRate; totalAmount, when sent, must equal amount plus tax.
type InvoiceRequest struct {
	InvoiceNumber string           `json:"invoiceNumber" binding:"max=50"`
	InvoiceType   string           `json:"invoiceType" binding:"omitempty,oneof=ISSUED RECEIVED"`
	Status        string           `json:"status" binding:"omitempty,oneof=UNISSUED ISSUED"`
	Amount        decimal.Decimal  `json:"amount"`
	TaxAmount     *decimal.Decimal `json:"taxAmount"`
	TaxRate       *decimal.Decimal `json:"taxRate"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	InvoiceDate   *time.Time       `json:"invoiceDate"`
	DueDate       *time.Time       `json:"dueDate"`
	Description   string           `json:"description" binding:"max=2000"`
	Notes         string           `json:"notes" binding:"max=2000"`
	ClientID      uuid.UUID        `json:"clientId" binding:"required"`
	ContractID    *uuid.UUID       `json:"contractId"`
}

func (r InvoiceRequest) toApp() finance.InvoiceRequest {
	return finance.InvoiceRequest{
		InvoiceNumber: r.InvoiceNumber,
		InvoiceType:   r.InvoiceType,
		Status:        r.Status,
		Amount:        r.Amount,
		TaxAmount:     r.TaxAmount,
		TaxRate:       r.TaxRate,
		TotalAmount:   r.TotalAmount,
		InvoiceDate:   r.InvoiceDate,
		DueDate:       r.DueDate,
		Description:   r.Description,
		Notes:         r.Notes,
		ClientID:      r.ClientID,
		ContractID:    r.ContractID,
	}
}

// InvoiceListQuery holds the query parameters of an invoice listing
type InvoiceListQuery struct {
	Search          string     `form:"search"`
	Status          string     `form:"status" binding:"omitempty,oneof=UNISSUED ISSUED"`
	InvoiceType     string     `form:"invoiceType" binding:"omitempty,oneof=ISSUED RECEIVED"`
	ClientID        string     `form:"clientId"`
	ContractID      string     `form:"contractId"`
	// StartDate and EndDate bound the invoice date
	StartDate       *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate         *time.Time `form:"endDate" time_format:"2006-01-02"`
	InvoiceDateFrom *time.Time `form:"invoiceDateFrom" time_format:"2006-01-02"`
	InvoiceDateTo   *time.Time `form:"invoiceDateTo" time_format:"2006-01-02"`
}

func (q InvoiceListQuery) invoiceDateRange() shared.DateRange {
	return dateRange(firstDate(q.StartDate, q.InvoiceDateFrom), firstDate(q.EndDate, q.InvoiceDateTo))
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID             uuid.UUID       `json:"id"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	InvoiceType    string          `json:"invoiceType"`
	Status         string          `json:"status"`
	Amount         decimal.Decimal `json:"amount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	InvoiceDate    time.Time       `json:"invoiceDate"`
	DueDate        *time.Time      `json:"dueDate"`
	Description    string          `json:"description"`
	Notes          string          `json:"notes"`
	ClientID       uuid.UUID       `json:"clientId"`
	ClientName     string          `json:"clientName"`
	ContractID     *uuid.UUID      `json:"contractId"`
	ContractNumber string          `json:"contractNumber,omitempty"`
	ContractTitle  string          `json:"contractTitle,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// NextNumberResponse previews the number the next document would get
type NextNumberResponse struct {
	Number string `json:"number"`
}

func toInvoiceResponse(inv finance.InvoiceResponse) InvoiceResponse {
	return InvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		InvoiceType:    inv.InvoiceType,
		Status:         inv.Status,
		Amount:         inv.Amount,
		TaxAmount:      inv.TaxAmount,
		TotalAmount:    inv.TotalAmount,
		InvoiceDate:    inv.InvoiceDate,
		DueDate:        inv.DueDate,
		Description:    inv.Description,
		Notes:          inv.Notes,
		ClientID:       inv.ClientID,
		ClientName:     inv.ClientName,
		ContractID:     inv.ContractID,
		ContractNumber: inv.ContractNumber,
		ContractTitle:  inv.ContractTitle,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}
