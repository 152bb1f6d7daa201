// Package contract holds sales and purchase contracts, the documents that
// invoices and payments are settled against.
package contract

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type distinguishes sales contracts from purchase contracts
type Type string

const (
	TypeSales    Type = "SALES"
	TypePurchase Type = "PURCHASE"
)

// AllTypes lists every contract type
var AllTypes = []Type{TypeSales, TypePurchase}

// IsValid checks if the contract type is known
func (t Type) IsValid() bool {
	return t == TypeSales || t == TypePurchase
}

// Permission returns the permission that grants access to contracts of this type
func (t Type) Permission() string {
	if t == TypeSales {
		return identity.PermContractsSales
	}
	return identity.PermContractsPurchase
}

// WritePermissions lists the permissions allowed to change contracts of this type
func (t Type) WritePermissions() []string {
	return []string{t.Permission()}
}

// ReadPermissions lists the permissions allowed to look up contracts of this
// type. Invoice and payment holders of the same side may read them.
func (t Type) ReadPermissions() []string {
	if t == TypeSales {
		return []string{identity.PermContractsSales, identity.PermInvoicesIssued, identity.PermPaymentsReceipts}
	}
	return []string{identity.PermContractsPurchase, identity.PermInvoicesReceived, identity.PermPaymentsExpenses}
}

// CounterpartyType is the client type a contract of this type is signed with
func (t Type) CounterpartyType() partner.ClientType {
	if t == TypeSales {
		return partner.ClientTypeCustomer
	}
	return partner.ClientTypeSupplier
}

// Status is the signing state of a contract
type Status string

const (
	StatusUnsigned Status = "UNSIGNED"
	StatusSigned   Status = "SIGNED"
)

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	return s == StatusUnsigned || s == StatusSigned
}

// Contract is an agreement with one client for a fixed amount
type Contract struct {
	shared.BaseEntity
	Details
}

// Details holds the editable fields of a contract
type Details struct {
	ContractNumber string
	Title          string
	ContractType   Type
	Status         Status
	Amount         decimal.Decimal
	StartDate      *time.Time
	EndDate        *time.Time
	Description    string
	ClientID       uuid.UUID
	ProjectID      *uuid.UUID
}

// NewContract creates a contract. Empty type and status default to
// PURCHASE and SIGNED.
func NewContract(d Details) (*Contract, error) {
	if d.ContractType == "" {
		d.ContractType = TypePurchase
	}
	if d.Status == "" {
		d.Status = StatusSigned
	}
	c := &Contract{BaseEntity: shared.NewBaseEntity()}
	if err := c.Update(d); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces every editable field
func (c *Contract) Update(d Details) error {
	d.ContractNumber = strings.TrimSpace(d.ContractNumber)
	d.Title = strings.TrimSpace(d.Title)

	if d.ContractNumber == "" {
		return shared.NewDomainError("INVALID_CONTRACT_NUMBER", "合同编号不能为空")
	}
	if len(d.ContractNumber) > 50 {
		return shared.NewDomainError("INVALID_CONTRACT_NUMBER", "合同编号不能超过50个字符")
	}
	if d.Title == "" {
		return shared.NewDomainError("INVALID_CONTRACT_TITLE", "合同名称不能为空")
	}
	if utf8.RuneCountInString(d.Title) > 200 {
		return shared.NewDomainError("INVALID_CONTRACT_TITLE", "合同名称不能超过200个字符")
	}
	if d.ContractType == "" {
		d.ContractType = c.ContractType
	}
	if !d.ContractType.IsValid() {
		return shared.NewDomainError("INVALID_CONTRACT_TYPE", "合同类型无效")
	}
	if d.Status == "" {
		d.Status = c.Status
	}
	if !d.Status.IsValid() {
		return shared.NewDomainError("INVALID_CONTRACT_STATUS", "合同状态无效")
	}
	if !d.Amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "合同金额必须大于0")
	}
	if d.ClientID == uuid.Nil {
		return shared.NewDomainError("INVALID_CLIENT", "必须选择客户")
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "结束日期不能早于开始日期")
	}
	if d.ProjectID != nil && *d.ProjectID == uuid.Nil {
		d.ProjectID = nil
	}

	c.Details = d
	c.Touch()
	return nil
}

// CheckCounterparty verifies that the client's type matches the contract type
func (c *Contract) CheckCounterparty(client *partner.Client) error {
	if client.ClientType != c.ContractType.CounterpartyType() {
		return ErrCounterpartyMismatch
	}
	return nil
}

// Contract errors
var (
	ErrDuplicateNumber      = shared.NewDomainError("DUPLICATE_CONTRACT_NUMBER", "合同编号已存在")
	ErrCounterpartyMismatch = shared.NewDomainError("COUNTERPARTY_MISMATCH", "销售合同须对应客户，采购合同须对应供应商")
)
