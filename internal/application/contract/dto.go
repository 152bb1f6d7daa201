package contract

import (
	"time"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/project"
	"github.com/erp/erp-system/internal/domain/settlement"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractRequest carries the editable fields of a contract
type ContractRequest struct {
	ContractNumber string
	Title          string
	ContractType   string
	Status         string
	Amount         decimal.Decimal
	StartDate      *time.Time
	EndDate        *time.Time
	Description    string
	ClientID       uuid.UUID
	ProjectID      *uuid.UUID
}

func (r ContractRequest) details() contract.Details {
	return contract.Details{
		ContractNumber: r.ContractNumber,
		Title:          r.Title,
		ContractType:   contract.Type(r.ContractType),
		Status:         contract.Status(r.Status),
		Amount:         r.Amount,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Description:    r.Description,
		ClientID:       r.ClientID,
		ProjectID:      r.ProjectID,
	}
}

// ContractListFilter narrows a contract listing
type ContractListFilter struct {
	Search       string
	Status       string
	ContractType string
	ClientID     *uuid.UUID
	ProjectID    *uuid.UUID
	StartDate    shared.DateRange
	// ForInvoices keeps only contracts that are not fully invoiced
	ForInvoices bool
	// ForPayments keeps only contracts that are not fully paid
	ForPayments bool
	// WithSettlement attaches both balances counting finalized records only
	WithSettlement bool
}

// ContractResponse is the read model of a contract.
// Invoicing and Payment are attached on request and stay nil otherwise.
type ContractResponse struct {
	ID             uuid.UUID
	ContractNumber string
	Title          string
	ContractType   string
	Status         string
	Amount         decimal.Decimal
	StartDate      *time.Time
	EndDate        *time.Time
	Description    string
	ClientID       uuid.UUID
	ClientName     string
	ProjectID      *uuid.UUID
	ProjectName    string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Invoicing *settlement.Balance
	Payment   *settlement.Balance
}

// ToContractResponse converts a domain contract to its read model.
// client and proj may be nil.
func ToContractResponse(c *contract.Contract, client *partner.Client, proj *project.Project) ContractResponse {
	resp := ContractResponse{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		Title:          c.Title,
		ContractType:   string(c.ContractType),
		Status:         string(c.Status),
		Amount:         c.Amount,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Description:    c.Description,
		ClientID:       c.ClientID,
		ProjectID:      c.ProjectID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if client != nil {
		resp.ClientName = client.Name
	}
	if proj != nil {
		resp.ProjectName = proj.Name
	}
	return resp
}

// ClientRef is the counterparty shown on a contract
type ClientRef struct {
	ID          uuid.UUID
	Name        string
	ContactName string
	Phone       string
	Email       string
	ClientType  string
}

// ProjectRef is the project shown on a contract
type ProjectRef struct {
	ID     uuid.UUID
	Name   string
	Status string
}

// InvoiceRef is an invoice listed on a contract
type InvoiceRef struct {
	ID            uuid.UUID
	InvoiceNumber string
	InvoiceType   string
	Status        string
	Amount        decimal.Decimal
	TaxAmount     decimal.Decimal
	TotalAmount   decimal.Decimal
	InvoiceDate   time.Time
}

// PaymentRef is a payment listed on a contract
type PaymentRef struct {
	ID            uuid.UUID
	PaymentNumber string
	PaymentType   string
	Status        string
	Amount        decimal.Decimal
	PaymentMethod string
	PaymentDate   time.Time
}

// ContractDetail is a contract with its counterparty, project, documents
// and finalized balances. Related parts that failed to load are nil.
type ContractDetail struct {
	ContractResponse
	Client   *ClientRef
	Project  *ProjectRef
	Invoices []InvoiceRef
	Payments []PaymentRef
}

func toClientRef(c *partner.Client) *ClientRef {
	return &ClientRef{
		ID:          c.ID,
		Name:        c.Name,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		ClientType:  string(c.ClientType),
	}
}

func toProjectRef(p *project.Project) *ProjectRef {
	return &ProjectRef{ID: p.ID, Name: p.Name, Status: string(p.Status)}
}

func toInvoiceRef(inv *finance.Invoice) InvoiceRef {
	return InvoiceRef{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceType:   string(inv.InvoiceType),
		Status:        string(inv.Status),
		Amount:        inv.Amount,
		TaxAmount:     inv.TaxAmount,
		TotalAmount:   inv.TotalAmount,
		InvoiceDate:   inv.InvoiceDate,
	}
}

func toPaymentRef(p *finance.Payment) PaymentRef {
	return PaymentRef{
		ID:            p.ID,
		PaymentNumber: p.PaymentNumber,
		PaymentType:   string(p.PaymentType),
		Status:        string(p.Status),
		Amount:        p.Amount,
		PaymentMethod: string(p.PaymentMethod),
		PaymentDate:   p.PaymentDate,
	}
}
