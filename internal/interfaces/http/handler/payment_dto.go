package handler

import (
	"time"

	"github.com/erp/erp-system/internal/application/finance"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRequest represents the request body for creating or replacing a payment.
// An empty paymentNumber is generated on create and kept on update.
type PaymentRequest struct {
	PaymentNumber   string          `json:"paymentNumber" binding:"max=50"`
	PaymentType     string          `json:"paymentType" binding:"omitempty,oneof=RECEIPT EXPENSE"`
	Status          string          `json:"status" binding:"omitempty,oneof=UNPAID PAID"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod" binding:"omitempty,oneof=CASH BANK_TRANSFER CHECK ALIPAY WECHAT_PAY OTHER"`
	PaymentDate     *time.Time      `json:"paymentDate"`
	BankAccount     string          `json:"bankAccount" binding:"max=100"`
	ReferenceNumber string          `json:"referenceNumber" binding:"max=100"`
	Notes           string          `json:"notes" binding:"max=2000"`
	ClientID        uuid.UUID       `json:"clientId" binding:"required"`
	ContractID      *uuid.UUID      `json:"contractId"`
	InvoiceID       *uuid.UUID      `json:"invoiceId"`
}

func (r PaymentRequest) toApp() finance.PaymentRequest {
	return finance.PaymentRequest{
		PaymentNumber:   r.PaymentNumber,
		PaymentType:     r.PaymentType,
		Status:          r.Status,
		Amount:          r.Amount,
		PaymentMethod:   r.PaymentMethod,
		PaymentDate:     r.PaymentDate,
		BankAccount:     r.BankAccount,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
		ClientID:        r.ClientID,
		ContractID:      r.ContractID,
		InvoiceID:       r.InvoiceID,
	}
}

// PaymentListQuery holds the query parameters of a payment listing
type PaymentListQuery struct {
	Search          string     `form:"search"`
	Status          string     `form:"status" binding:"omitempty,oneof=UNPAID PAID"`
	PaymentType     string     `form:"paymentType" binding:"omitempty,oneof=RECEIPT EXPENSE"`
	ClientID        string     `form:"clientId"`
	ContractID      string     `form:"contractId"`
	InvoiceID       string     `form:"invoiceId"`
	// StartDate and EndDate bound the payment date
	StartDate       *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate         *time.Time `form:"endDate" time_format:"2006-01-02"`
	PaymentDateFrom *time.Time `form:"paymentDateFrom" time_format:"2006-01-02"`
	PaymentDateTo   *time.Time `form:"paymentDateTo" time_format:"2006-01-02"`
}

func (q PaymentListQuery) paymentDateRange() shared.DateRange {
	return dateRange(firstDate(q.StartDate, q.PaymentDateFrom), firstDate(q.EndDate, q.PaymentDateTo))
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	PaymentNumber   string          `json:"paymentNumber"`
	PaymentType     string          `json:"paymentType"`
	Status          string          `json:"status"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentDate     time.Time       `json:"paymentDate"`
	BankAccount     string          `json:"bankAccount"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           string          `json:"notes"`
	ClientID        uuid.UUID       `json:"clientId"`
	ClientName      string          `json:"clientName"`
	ContractID      *uuid.UUID      `json:"contractId"`
	ContractNumber  string          `json:"contractNumber,omitempty"`
	ContractTitle   string          `json:"contractTitle,omitempty"`
	InvoiceID       *uuid.UUID      `json:"invoiceId"`
	InvoiceNumber   string          `json:"invoiceNumber,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func toPaymentResponse(p finance.PaymentResponse) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		PaymentNumber:   p.PaymentNumber,
		PaymentType:     p.PaymentType,
		Status:          p.Status,
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		PaymentDate:     p.PaymentDate,
		BankAccount:     p.BankAccount,
		ReferenceNumber: p.ReferenceNumber,
		Notes:           p.Notes,
		ClientID:        p.ClientID,
		ClientName:      p.ClientName,
		ContractID:      p.ContractID,
		ContractNumber:  p.ContractNumber,
		ContractTitle:   p.ContractTitle,
		InvoiceID:       p.InvoiceID,
		InvoiceNumber:   p.InvoiceNumber,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
