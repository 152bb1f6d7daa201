package finance

import (
	"strings"
	"time"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/numbering"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceType tells whether we issued the invoice or received it
type InvoiceType string

const (
	InvoiceTypeIssued   InvoiceType = "ISSUED"
	InvoiceTypeReceived InvoiceType = "RECEIVED"
)

// AllInvoiceTypes lists every invoice type
var AllInvoiceTypes = []InvoiceType{InvoiceTypeIssued, InvoiceTypeReceived}

// IsValid checks if the invoice type is known
func (t InvoiceType) IsValid() bool {
	return t == InvoiceTypeIssued || t == InvoiceTypeReceived
}

// Permission returns the permission that grants access to invoices of this type
func (t InvoiceType) Permission() string {
	if t == InvoiceTypeIssued {
		return identity.PermInvoicesIssued
	}
	return identity.PermInvoicesReceived
}

// WritePermissions lists the permissions allowed to change invoices of this type
func (t InvoiceType) WritePermissions() []string {
	return []string{t.Permission()}
}

// ReadPermissions lists the permissions allowed to look up invoices of this
// type. Payment holders of the same side read them to link payments.
func (t InvoiceType) ReadPermissions() []string {
	if t == InvoiceTypeIssued {
		return []string{identity.PermInvoicesIssued, identity.PermPaymentsReceipts}
	}
	return []string{identity.PermInvoicesReceived, identity.PermPaymentsExpenses}
}

// ContractType is the kind of contract an invoice of this type settles
func (t InvoiceType) ContractType() contract.Type {
	if t == InvoiceTypeIssued {
		return contract.TypeSales
	}
	return contract.TypePurchase
}

// CounterpartyType is the kind of client an invoice of this type is exchanged with
func (t InvoiceType) CounterpartyType() partner.ClientType {
	return t.ContractType().CounterpartyType()
}

// InvoiceStatus is either pre-recorded or actually issued
type InvoiceStatus string

const (
	InvoiceStatusUnissued InvoiceStatus = "UNISSUED"
	InvoiceStatusIssued   InvoiceStatus = "ISSUED"
)

// IsValid checks if the status is known
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusUnissued || s == InvoiceStatusIssued
}

// Invoice is a tax invoice exchanged with a client, optionally against a contract.
// Amount is tax-exclusive and TotalAmount is always Amount + TaxAmount.
type Invoice struct {
	shared.BaseEntity
	InvoiceDetails
	TotalAmount decimal.Decimal
}

// InvoiceDetails holds the editable fields of an invoice
type InvoiceDetails struct {
	InvoiceNumber string
	InvoiceType   InvoiceType
	Status        InvoiceStatus
	Amount        decimal.Decimal
	TaxAmount     decimal.Decimal
	InvoiceDate   time.Time
	DueDate       *time.Time
	Description   string
	Notes         string
	ClientID      uuid.UUID
	ContractID    *uuid.UUID
}

// TaxFromRate derives the tax for a tax-exclusive amount at rate percent,
// rounded to cents.
func TaxFromRate(amount, ratePercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(2)
}

// DefaultTaxRate is the VAT rate the entry form starts from
var DefaultTaxRate = decimal.NewFromInt(13)

// NewInvoice creates an invoice. Empty type and status default to RECEIVED
// and UNISSUED; a zero invoice date defaults to now.
func NewInvoice(d InvoiceDetails) (*Invoice, error) {
	if d.InvoiceType == "" {
		d.InvoiceType = InvoiceTypeReceived
	}
	if d.Status == "" {
		d.Status = InvoiceStatusUnissued
	}
	if d.InvoiceDate.IsZero() {
		d.InvoiceDate = time.Now()
	}
	inv := &Invoice{BaseEntity: shared.NewBaseEntity()}
	if err := inv.Update(d); err != nil {
		return nil, err
	}
	return inv, nil
}

// Update replaces every editable field and recomputes the total
func (inv *Invoice) Update(d InvoiceDetails) error {
	d.InvoiceNumber = strings.TrimSpace(d.InvoiceNumber)
	if d.InvoiceNumber == "" {
		return shared.NewDomainError("INVALID_INVOICE_NUMBER", "发票号码不能为空")
	}
	if len(d.InvoiceNumber) > 50 {
		return shared.NewDomainError("INVALID_INVOICE_NUMBER", "发票号码不能超过50个字符")
	}
	if err := numbering.CheckNumber(d.InvoiceNumber); err != nil {
		return err
	}
	if d.InvoiceType == "" {
		d.InvoiceType = inv.InvoiceType
	}
	if !d.InvoiceType.IsValid() {
		return shared.NewDomainError("INVALID_INVOICE_TYPE", "发票类型无效")
	}
	if d.Status == "" {
		d.Status = inv.Status
	}
	if !d.Status.IsValid() {
		return shared.NewDomainError("INVALID_INVOICE_STATUS", "发票状态无效")
	}
	if !d.Amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "发票金额必须大于0")
	}
	if d.TaxAmount.IsNegative() {
		return shared.NewDomainError("INVALID_TAX_AMOUNT", "税额不能为负数")
	}
	if d.ClientID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLIENT", "必须选择客户")
	}
	if d.InvoiceDate.IsZero() {
		d.InvoiceDate = inv.InvoiceDate
	}
	if d.DueDate != nil && d.DueDate.Before(d.InvoiceDate) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "到期日不能早于开票日期")
	}
	if d.ContractID != nil && *d.ContractID == uuid.Nil {
		d.ContractID = nil
	}

	inv.InvoiceDetails = d
	inv.TotalAmount = d.Amount.Add(d.TaxAmount)
	inv.Touch()
	return nil
}

// CheckTotal rejects a caller-supplied total that disagrees with Amount + TaxAmount
func (inv *Invoice) CheckTotal(total decimal.Decimal) error {
	if !total.Equal(inv.TotalAmount) {
		return shared.NewDomainError("INVALID_TOTAL_AMOUNT", "价税合计必须等于金额加税额")
	}
	return nil
}

// CheckCounterparty verifies the client and, when linked, the contract fit the invoice type
func (inv *Invoice) CheckCounterparty(client *partner.Client, c *contract.Contract) error {
	if client.ClientType != inv.InvoiceType.CounterpartyType() {
		return ErrCounterpartyMismatch
	}
	if c == nil {
		return nil
	}
	if c.ContractType != inv.InvoiceType.ContractType() {
		return ErrContractTypeMismatch
	}
	if c.ClientID != inv.ClientID {
		return ErrContractClientMismatch
	}
	return nil
}

// SettlementAmount is the amount that counts toward the contract's invoiced total
func (inv *Invoice) SettlementAmount() decimal.Decimal {
	return inv.TotalAmount
}

// IsFinalized reports whether the invoice has actually been issued
func (inv *Invoice) IsFinalized() bool {
	return inv.Status == InvoiceStatusIssued
}
