package contract

import (
	"context"

	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter narrows contract listings
type Filter struct {
	// Search matches contract number, title, client name or project name
	Search    string
	Status    Status
	ClientID  *uuid.UUID
	ProjectID *uuid.UUID
	// Types restricts the result to these contract types; empty means all
	Types []Type
	// StartDate filters on the contract start date
	StartDate shared.DateRange
}

// Repository defines the interface for contract persistence
type Repository interface {
	// Create stores a new contract. A taken number yields ErrDuplicateNumber.
	Create(ctx context.Context, c *Contract) error
	Update(ctx context.Context, c *Contract) error
	// Delete removes the contract; invoices and payments are kept and unlinked
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Contract, error)
	// FindAll returns matching contracts, newest first
	FindAll(ctx context.Context, filter Filter) ([]*Contract, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]*Contract, error)
	// CountByProjects returns the number of contracts per project
	CountByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
