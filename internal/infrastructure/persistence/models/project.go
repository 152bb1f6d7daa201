package models

import (
	"time"

	"github.com/erp/erp-system/internal/domain/project"
)

// ProjectModel is the persistence model for the Project domain entity.
type ProjectModel struct {
	BaseModel
	Name        string         `gorm:"type:varchar(200);not null;index"`
	Description string         `gorm:"type:text"`
	Status      project.Status `gorm:"type:varchar(20);not null;default:'PLANNING';index"`
	StartDate   *time.Time
	EndDate     *time.Time
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *project.Project {
	return &project.Project{
		BaseEntity: m.BaseModel.ToDomain(),
		Details: project.Details{
			Name:        m.Name,
			Description: m.Description,
			Status:      m.Status,
			StartDate:   m.StartDate,
			EndDate:     m.EndDate,
		},
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.Status = p.Status
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}
