// Package project holds projects, which group sales and purchase contracts
// for margin reporting.
package project

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
)

// Status is the lifecycle stage of a project
type Status string

const (
	StatusPlanning   Status = "PLANNING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusPaused     Status = "PAUSED"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// IsValid checks if the status is known
func (s Status) IsValid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project groups contracts
type Project struct {
	shared.BaseEntity
	Details
}

// Details holds the editable fields of a project
type Details struct {
	Name        string
	Description string
	Status      Status
	StartDate   *time.Time
	EndDate     *time.Time
}

// NewProject creates a project. An empty status defaults to PLANNING.
func NewProject(d Details) (*Project, error) {
	if d.Status == "" {
		d.Status = StatusPlanning
	}
	p := &Project{BaseEntity: shared.NewBaseEntity()}
	if err := p.Update(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces every editable field
func (p *Project) Update(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return shared.NewDomainError("INVALID_PROJECT_NAME", "项目名称不能为空")
	}
	if utf8.RuneCountInString(d.Name) > 200 {
		return shared.NewDomainError("INVALID_PROJECT_NAME", "项目名称不能超过200个字符")
	}
	if d.Status == "" {
		d.Status = p.Status
	}
	if !d.Status.IsValid() {
		return shared.NewDomainError("INVALID_PROJECT_STATUS", "项目状态无效")
	}
	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "结束日期不能早于开始日期")
	}
	p.Details = d
	p.Touch()
	return nil
}

// Filter narrows project listings
type Filter struct {
	// Search matches name or description
	Search string
	Status Status
}

// Repository defines the interface for project persistence
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	// Delete removes the project; its contracts are kept and unlinked
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*Project, error)
	FindAll(ctx context.Context, filter Filter) ([]*Project, error)
}
