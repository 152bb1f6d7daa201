package project

import (
	"time"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/project"
	"github.com/erp/erp-system/internal/domain/settlement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectRequest carries the editable fields of a project
type ProjectRequest struct {
	Name        string
	Description string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (r ProjectRequest) details() project.Details {
	return project.Details{
		Name:        r.Name,
		Description: r.Description,
		Status:      project.Status(r.Status),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// ProjectListFilter narrows a project listing
type ProjectListFilter struct {
	Search string
	Status string
}

// ProjectResponse is the read model of a project
type ProjectResponse struct {
	ID          uuid.UUID
	Name        string
	Description string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// ContractCount is only filled in listings
	ContractCount int64
}

// ToProjectResponse converts a domain project to its read model
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectContract is a contract as listed on the project page
type ProjectContract struct {
	ID             uuid.UUID
	ContractNumber string
	Title          string
	ContractType   string
	Status         string
	Amount         decimal.Decimal
	StartDate      *time.Time
	EndDate        *time.Time
	ClientID       uuid.UUID
	ClientName     string
	CreatedAt      time.Time
}

func toProjectContract(c *contract.Contract, client *partner.Client) ProjectContract {
	pc := ProjectContract{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		Title:          c.Title,
		ContractType:   string(c.ContractType),
		Status:         string(c.Status),
		Amount:         c.Amount,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		ClientID:       c.ClientID,
		CreatedAt:      c.CreatedAt,
	}
	if client != nil {
		pc.ClientName = client.Name
	}
	return pc
}

// ProjectDetail is a project with its contracts and margin.
// Contracts and Margin are nil when they could not be loaded.
type ProjectDetail struct {
	ProjectResponse
	Contracts []ProjectContract
	Margin    *settlement.Margin
}
