package handler

import (
	"time"

	"github.com/erp/erp-system/internal/application/partner"
	"github.com/google/uuid"
)

// ClientRequest represents the request body for creating or replacing a client
type ClientRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	ContactName string `json:"contactName" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"max=200"`
	Address     string `json:"address" binding:"max=500"`
	ClientType  string `json:"clientType" binding:"omitempty,oneof=CUSTOMER SUPPLIER"`
}

func (r ClientRequest) toApp() partner.ClientRequest {
	return partner.ClientRequest{
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		ClientType:  r.ClientType,
	}
}

// ClientListQuery holds the query parameters of a client listing
type ClientListQuery struct {
	Search     string `form:"search"`
	ClientType string `form:"clientType" binding:"omitempty,oneof=CUSTOMER SUPPLIER"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	ClientType  string    `json:"clientType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toClientResponse(c partner.ClientResponse) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		ClientType:  c.ClientType,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
