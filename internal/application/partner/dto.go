package partner

import (
	"time"

	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/google/uuid"
)

// ClientRequest carries the editable fields of a client.
// Update replaces every field, so omitted fields are cleared.
type ClientRequest struct {
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	ClientType  string
}

func (r ClientRequest) details() partner.ClientDetails {
	return partner.ClientDetails{
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
	}
}

// ClientListFilter narrows a client listing
type ClientListFilter struct {
	Search     string
	ClientType string
}

// ClientResponse is the read model of a client
type ClientResponse struct {
	ID          uuid.UUID
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	ClientType  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToClientResponse converts a domain client to its read model
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		ClientType:  string(c.ClientType),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
