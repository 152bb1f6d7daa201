package partner

import (
	"context"

	"github.com/google/uuid"
)

// ClientFilter narrows client listings
type ClientFilter struct {
	// Search matches name, contact name, phone or email
	Search string
	// Types restricts the result to these client types; empty means all
	Types []ClientType
}

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	// FindByIDs returns the clients found among ids, keyed by ID
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Client, error)
	FindAll(ctx context.Context, filter ClientFilter) ([]*Client, error)
}
