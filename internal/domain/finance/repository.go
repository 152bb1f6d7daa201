package finance

import (
	"context"

	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceFilter narrows invoice listings
type InvoiceFilter struct {
	// Search matches invoice number, client name, contract title or project name
	Search     string
	Status     InvoiceStatus
	ClientID   *uuid.UUID
	ContractID *uuid.UUID
	// Types restricts the result to these invoice types; empty means all
	Types       []InvoiceType
	InvoiceDate shared.DateRange
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// Create stores a new invoice. A taken number yields ErrDuplicateInvoiceNumber.
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	// Delete removes the invoice; payments linked to it are kept and unlinked
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Invoice, error)
	// FindAll returns matching invoices, newest first
	FindAll(ctx context.Context, filter InvoiceFilter) ([]*Invoice, error)
	// FindByContracts returns the invoices linked to any of the contracts
	FindByContracts(ctx context.Context, contractIDs []uuid.UUID) ([]*Invoice, error)
	// LastNumberWithPrefix returns the greatest invoice number starting with prefix, or ""
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// PaymentFilter narrows payment listings
type PaymentFilter struct {
	// Search matches payment number, client name, contract title or project name
	Search     string
	Status     PaymentStatus
	ClientID   *uuid.UUID
	ContractID *uuid.UUID
	InvoiceID  *uuid.UUID
	// Types restricts the result to these payment types; empty means all
	Types       []PaymentType
	PaymentDate shared.DateRange
}

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// Create stores a new payment. A taken number yields ErrDuplicatePaymentNumber.
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	// FindAll returns matching payments ordered by payment date, latest first
	FindAll(ctx context.Context, filter PaymentFilter) ([]*Payment, error)
	// FindByContracts returns the payments linked to any of the contracts
	FindByContracts(ctx context.Context, contractIDs []uuid.UUID) ([]*Payment, error)
	// LastNumberWithPrefix returns the greatest payment number starting with prefix, or ""
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

// Finance errors
var (
	ErrDuplicateInvoiceNumber  = shared.NewDomainError("DUPLICATE_NUMBER", "发票号码已存在")
	ErrDuplicatePaymentNumber  = shared.NewDomainError("DUPLICATE_NUMBER", "收付款编号已存在")
	ErrCounterpartyMismatch    = shared.NewDomainError("COUNTERPARTY_MISMATCH", "开具发票与收款须对应客户，取得发票与付款须对应供应商")
	ErrContractTypeMismatch    = shared.NewDomainError("CONTRACT_TYPE_MISMATCH", "关联合同的类型与单据类型不符")
	ErrContractClientMismatch  = shared.NewDomainError("CONTRACT_CLIENT_MISMATCH", "关联合同不属于该客户")
	ErrInvoiceTypeMismatch     = shared.NewDomainError("INVOICE_TYPE_MISMATCH", "关联发票的类型与收付款类型不符")
	ErrInvoiceClientMismatch   = shared.NewDomainError("INVOICE_CLIENT_MISMATCH", "关联发票不属于该客户")
	ErrInvoiceContractMismatch = shared.NewDomainError("INVOICE_CONTRACT_MISMATCH", "关联发票不属于该合同")
)
