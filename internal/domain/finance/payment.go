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

// PaymentType tells whether money came in or went out
type PaymentType string

const (
	PaymentTypeReceipt PaymentType = "RECEIPT"
	PaymentTypeExpense PaymentType = "EXPENSE"
)

// AllPaymentTypes lists every payment type
var AllPaymentTypes = []PaymentType{PaymentTypeReceipt, PaymentTypeExpense}

// IsValid checks if the payment type is known
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeReceipt || t == PaymentTypeExpense
}

// Permission returns the permission that grants access to payments of this type
func (t PaymentType) Permission() string {
	if t == PaymentTypeReceipt {
		return identity.PermPaymentsReceipts
	}
	return identity.PermPaymentsExpenses
}

// AccessPermissions lists the permissions allowed to read or change payments of this type
func (t PaymentType) AccessPermissions() []string {
	return []string{t.Permission()}
}

// ContractType is the kind of contract a payment of this type settles
func (t PaymentType) ContractType() contract.Type {
	if t == PaymentTypeReceipt {
		return contract.TypeSales
	}
	return contract.TypePurchase
}

// InvoiceType is the kind of invoice a payment of this type can be linked to
func (t PaymentType) InvoiceType() InvoiceType {
	if t == PaymentTypeReceipt {
		return InvoiceTypeIssued
	}
	return InvoiceTypeReceived
}

// CounterpartyType is the kind of client a payment of this type is exchanged with
func (t PaymentType) CounterpartyType() partner.ClientType {
	return t.ContractType().CounterpartyType()
}

// PaymentStatus is either pre-recorded or actually paid
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
)

// IsValid checks if the status is known
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

// PaymentMethod is how the money moved
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheck        PaymentMethod = "CHECK"
	PaymentMethodAlipay       PaymentMethod = "ALIPAY"
	PaymentMethodWechatPay    PaymentMethod = "WECHAT_PAY"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// IsValid checks if the payment method is known
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCheck,
		PaymentMethodAlipay, PaymentMethodWechatPay, PaymentMethodOther:
		return true
	}
	return false
}

// Payment is money received from or paid to a client
type Payment struct {
	shared.BaseEntity
	PaymentDetails
}

// PaymentDetails holds the editable fields of a payment
type PaymentDetails struct {
	PaymentNumber   string
	PaymentType     PaymentType
	Status          PaymentStatus
	Amount          decimal.Decimal
	PaymentMethod   PaymentMethod
	PaymentDate     time.Time
	BankAccount     string
	ReferenceNumber string
	Notes           string
	ClientID        uuid.UUID
	ContractID      *uuid.UUID
	InvoiceID       *uuid.UUID
}

// NewPayment creates a payment. An empty status defaults to PAID and a zero
// payment date defaults to now.
func NewPayment(d PaymentDetails) (*Payment, error) {
	if d.Status == "" {
		d.Status = PaymentStatusPaid
	}
	if d.PaymentDate.IsZero() {
		d.PaymentDate = time.Now()
	}
	p := &Payment{BaseEntity: shared.NewBaseEntity()}
	if err := p.Update(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces every editable field
func (p *Payment) Update(d PaymentDetails) error {
	d.PaymentNumber = strings.TrimSpace(d.PaymentNumber)
	if d.PaymentNumber == "" {
		return shared.NewDomainError("INVALID_PAYMENT_NUMBER", "收付款编号不能为空")
	}
	if len(d.PaymentNumber) > 50 {
		return shared.NewDomainError("INVALID_PAYMENT_NUMBER", "收付款编号不能超过50个字符")
	}
	if err := numbering.CheckNumber(d.PaymentNumber); err != nil {
		return err
	}
	if d.PaymentType == "" {
		d.PaymentType = p.PaymentType
	}
	if !d.PaymentType.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_TYPE", "收付款类型无效")
	}
	if d.Status == "" {
		d.Status = p.Status
	}
	if !d.Status.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_STATUS", "收付款状态无效")
	}
	if !d.Amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "金额必须大于0")
	}
	if !d.PaymentMethod.IsValid() {
		return shared.NewDomainError("INVALID_PAYMENT_METHOD", "支付方式无效")
	}
	if d.ClientID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLIENT", "必须选择客户")
	}
	if d.PaymentDate.IsZero() {
		d.PaymentDate = p.PaymentDate
	}
	if d.ContractID != nil && *d.ContractID == uuid.Nil {
		d.ContractID = nil
	}
	if d.InvoiceID != nil && *d.InvoiceID == uuid.Nil {
		d.InvoiceID = nil
	}

	p.PaymentDetails = d
	p.Touch()
	return nil
}

// CheckCounterparty verifies the client, contract and invoice links fit the payment type
func (p *Payment) CheckCounterparty(client *partner.Client, c *contract.Contract, inv *Invoice) error {
	if client.ClientType != p.PaymentType.CounterpartyType() {
		return ErrCounterpartyMismatch
	}
	if c != nil {
		if c.ContractType != p.PaymentType.ContractType() {
			return ErrContractTypeMismatch
		}
		if c.ClientID != p.ClientID {
			return ErrContractClientMismatch
		}
	}
	if inv != nil {
		if inv.InvoiceType != p.PaymentType.InvoiceType() {
			return ErrInvoiceTypeMismatch
		}
		if inv.ClientID != p.ClientID {
			return ErrInvoiceClientMismatch
		}
		if c != nil && inv.ContractID != nil && *inv.ContractID != c.ID {
			return ErrInvoiceContractMismatch
		}
	}
	return nil
}

// SettlementAmount is the amount that counts toward the contract's paid total
func (p *Payment) SettlementAmount() decimal.Decimal {
	return p.Amount
}

// IsFinalized reports whether the money has actually moved
func (p *Payment) IsFinalized() bool {
	return p.Status == PaymentStatusPaid
}
