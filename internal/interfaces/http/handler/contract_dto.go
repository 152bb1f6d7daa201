package handler

import (
	"time"

	"github.com/erp/erp-system/internal/application/contract"
	"github.com/erp/erp-system/internal/domain/settlement"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractRequest represents the request body for creating or replacing a contract
type ContractRequest struct {
	ContractNumber string          `json:"contractNumber" binding:"required,max=100"`
	Title          string          `json:"title" binding:"required,max=200"`
	ContractType   string          `json:"contractType" binding:"omitempty,oneof=SALES PURCHASE"`
	Status         string          `json:"status" binding:"omitempty,oneof=UNSIGNED SIGNED"`
	Amount         decimal.Decimal `json:"amount"`
	StartDate      *time.Time      `json:"startDate"`
	EndDate        *time.Time      `json:"endDate"`
	Description    string          `json:"description" binding:"max=2000"`
	ClientID       uuid.UUID       `json:"clientId" binding:"required"`
	ProjectID      *uuid.UUID      `json:"projectId"`
}

func (r ContractRequest) toApp() contract.ContractRequest {
	return contract.ContractRequest{
		ContractNumber: r.ContractNumber,
		Title:          r.Title,
		ContractType:   r.ContractType,
		Status:         r.Status,
		Amount:         r.Amount,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Description:    r.Description,
		ClientID:       r.ClientID,
		ProjectID:      r.ProjectID,
	}
}

// ContractListQuery holds the query parameters of a contract listing
type ContractListQuery struct {
	Search         string     `form:"search"`
	Status         string     `form:"status" binding:"omitempty,oneof=UNSIGNED SIGNED"`
	ContractType   string     `form:"contractType" binding:"omitempty,oneof=SALES PURCHASE"`
	ClientID       string     `form:"clientId"`
	ProjectID      string     `form:"projectId"`
	// StartDate and EndDate bound the contract start date
	StartDate      *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate        *time.Time `form:"endDate" time_format:"2006-01-02"`
	StartDateFrom  *time.Time `form:"startDateFrom" time_format:"2006-01-02"`
	StartDateTo    *time.Time `form:"startDateTo" time_format:"2006-01-02"`
	ForInvoices    bool       `form:"forInvoices"`
	ForPayments    bool       `form:"forPayments"`
	WithSettlement bool       `form:"withSettlement"`
}

func (q ContractListQuery) startDateRange() shared.DateRange {
	return dateRange(firstDate(q.StartDate, q.StartDateFrom), firstDate(q.EndDate, q.StartDateTo))
}

// BalanceResponse is how much of a contract is settled
type BalanceResponse struct {
	ContractAmount decimal.Decimal `json:"contractAmount"`
	Settled        decimal.Decimal `json:"settled"`
	Remaining      decimal.Decimal `json:"remaining"`
	IsCompleted    bool            `json:"isCompleted"`
	Counted        int             `json:"counted"`
	Excluded       int             `json:"excluded"`
	Policy         string          `json:"policy"`
}

// ContractResponse represents a contract in API responses
type ContractResponse struct {
	ID             uuid.UUID        `json:"id"`
	ContractNumber string           `json:"contractNumber"`
	Title          string           `json:"title"`
	ContractType   string           `json:"contractType"`
	Status         string           `json:"status"`
	Amount         decimal.Decimal  `json:"amount"`
	StartDate      *time.Time       `json:"startDate"`
	EndDate        *time.Time       `json:"endDate"`
	Description    string           `json:"description"`
	ClientID       uuid.UUID        `json:"clientId"`
	ClientName     string           `json:"clientName"`
	ProjectID      *uuid.UUID       `json:"projectId"`
	ProjectName    string           `json:"projectName,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
	Invoicing      *BalanceResponse `json:"invoicing,omitempty"`
	Payment        *BalanceResponse `json:"payment,omitempty"`
}

// ContractClientResponse is the counterparty shown on a contract
type ContractClientResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	ClientType  string    `json:"clientType"`
}

// ContractProjectResponse is the project shown on a contract
type ContractProjectResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
}

// ContractInvoiceResponse is an invoice listed on a contract
type ContractInvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceType   string          `json:"invoiceType"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
}

// ContractPaymentResponse is a payment listed on a contract
type ContractPaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	PaymentNumber string          `json:"paymentNumber"`
	PaymentType   string          `json:"paymentType"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentDate   time.Time       `json:"paymentDate"`
}

// ContractDetailResponse is a contract with its counterparty, project,
// documents and balances
type ContractDetailResponse struct {
	ContractResponse
	Client   *ContractClientResponse   `json:"client"`
	Project  *ContractProjectResponse  `json:"project"`
	Invoices []ContractInvoiceResponse `json:"invoices"`
	Payments []ContractPaymentResponse `json:"payments"`
}

func toBalanceResponse(b *settlement.Balance) *BalanceResponse {
	if b == nil {
		return nil
	}
	return &BalanceResponse{
		ContractAmount: b.ContractAmount,
		Settled:        b.Settled,
		Remaining:      b.Remaining,
		IsCompleted:    b.IsCompleted,
		Counted:        b.Counted,
		Excluded:       b.Excluded,
		Policy:         string(b.Policy),
	}
}

func toContractResponse(c contract.ContractResponse) ContractResponse {
	return ContractResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		Title:          c.Title,
		ContractType:   c.ContractType,
		Status:         c.Status,
		Amount:         c.Amount,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Description:    c.Description,
		ClientID:       c.ClientID,
		ClientName:     c.ClientName,
		ProjectID:      c.ProjectID,
		ProjectName:    c.ProjectName,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Invoicing:      toBalanceResponse(c.Invoicing),
		Payment:        toBalanceResponse(c.Payment),
	}
}

func toContractDetailResponse(d contract.ContractDetail) ContractDetailResponse {
	resp := ContractDetailResponse{ContractResponse: toContractResponse(d.ContractResponse)}
	if d.Client != nil {
		resp.Client = &ContractClientResponse{
			ID:          d.Client.ID,
			Name:        d.Client.Name,
			ContactName: d.Client.ContactName,
			Phone:       d.Client.Phone,
			Email:       d.Client.Email,
			ClientType:  d.Client.ClientType,
		}
	}
	if d.Project != nil {
		resp.Project = &ContractProjectResponse{ID: d.Project.ID, Name: d.Project.Name, Status: d.Project.Status}
	}
	if d.Invoices != nil {
		resp.Invoices = make([]ContractInvoiceResponse, len(d.Invoices))
		for i, inv := range d.Invoices {
			resp.Invoices[i] = ContractInvoiceResponse{
				ID:            inv.ID,
				InvoiceNumber: inv.InvoiceNumber,
				InvoiceType:   inv.InvoiceType,
				Status:        inv.Status,
				Amount:        inv.Amount,
				TaxAmount:     inv.TaxAmount,
				TotalAmount:   inv.TotalAmount,
				InvoiceDate:   inv.InvoiceDate,
			}
		}
	}
	if d.Payments != nil {
		resp.Payments = make([]ContractPaymentResponse, len(d.Payments))
		for i, p := range d.Payments {
			resp.Payments[i] = ContractPaymentResponse{
				ID:            p.ID,
				PaymentNumber: p.PaymentNumber,
				PaymentType:   p.PaymentType,
				Status:        p.Status,
				Amount:        p.Amount,
				PaymentMethod: p.PaymentMethod,
				PaymentDate:   p.PaymentDate,
			}
		}
	}
	return resp
}
