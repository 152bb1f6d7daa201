package partner

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/shared"
)

// ClientType distinguishes customers from suppliers
type ClientType string

const (
	ClientTypeCustomer ClientType = "CUSTOMER"
	ClientTypeSupplier ClientType = "SUPPLIER"
)

// AllClientTypes lists every client type
var AllClientTypes = []ClientType{ClientTypeCustomer, ClientTypeSupplier}

// IsValid checks if the client type is known
func (t ClientType) IsValid() bool {
	return t == ClientTypeCustomer || t == ClientTypeSupplier
}

// Permission returns the permission that grants access to clients of this type
func (t ClientType) Permission() string {
	if t == ClientTypeSupplier {
		return identity.PermClientsSuppliers
	}
	return identity.PermClientsCustomers
}

// WritePermissions lists the permissions allowed to change clients of this type
func (t ClientType) WritePermissions() []string {
	return []string{t.Permission()}
}

// ReadPermissions lists the permissions allowed to look up clients of this
// type, including the document permissions that need them as counterparties
func (t ClientType) ReadPermissions() []string {
	if t == ClientTypeSupplier {
		return identity.PurchaseSide
	}
	return identity.SalesSide
}

// Client is a business partner: a customer we sell to or a supplier we buy from
type Client struct {
	shared.BaseEntity
	ClientDetails
	ClientType ClientType
}

// ClientDetails holds the editable contact data of a client
type ClientDetails struct {
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewClient creates a client. An empty type defaults to CUSTOMER.
func NewClient(details ClientDetails, clientType ClientType) (*Client, error) {
	if clientType == "" {
		clientType = ClientTypeCustomer
	}
	c := &Client{BaseEntity: shared.NewBaseEntity()}
	if err := c.Update(details, clientType); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces every editable field
func (c *Client) Update(details ClientDetails, clientType ClientType) error {
	details = details.trimmed()
	if err := details.validate(); err != nil {
		return err
	}
	if !clientType.IsValid() {
		return shared.NewDomainError("INVALID_CLIENT_TYPE", "客户类型无效")
	}
	c.ClientDetails = details
	c.ClientType = clientType
	c.Touch()
	return nil
}

func (d ClientDetails) trimmed() ClientDetails {
	return ClientDetails{
		Name:        strings.TrimSpace(d.Name),
		ContactName: strings.TrimSpace(d.ContactName),
		Phone:       strings.TrimSpace(d.Phone),
		Email:       strings.TrimSpace(d.Email),
		Address:     strings.TrimSpace(d.Address),
	}
}

func (d ClientDetails) validate() error {
	if d.Name == "" {
		return shared.NewDomainError("INVALID_CLIENT_NAME", "客户名称不能为空")
	}
	if utf8.RuneCountInString(d.Name) > 200 {
		return shared.NewDomainError("INVALID_CLIENT_NAME", "客户名称不能超过200个字符")
	}
	if d.Email != "" && !emailRegex.MatchString(d.Email) {
		return shared.NewDomainError("INVALID_EMAIL", "邮箱格式无效")
	}
	if len(d.Phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "电话不能超过50个字符")
	}
	return nil
}

// ErrClientInUse is returned when deleting a client that documents still reference
var ErrClientInUse = shared.NewDomainError("CLIENT_IN_USE", "该客户存在关联的合同、发票或收付款记录，无法删除")
