package persistence

import (
	"context"

	"github.com/erp/erp-system/internal/domain/project"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProjectRepository implements project.Repository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(ctx context.Context, p *project.Project) error {
	return r.db.WithContext(ctx).Create(models.ProjectModelFromDomain(p)).Error
}

// Update updates an existing project
func (r *GormProjectRepository) Update(ctx context.Context, p *project.Project) error {
	result := r.db.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(models.ProjectModelFromDomain(p))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the project. Its contracts are kept and detached.
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ContractModel{}).
			Where("project_id = ?", id).
			Update("project_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ProjectModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByIDs returns the projects found among ids
func (r *GormProjectRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*project.Project, error) {
	out := make(map[uuid.UUID]*project.Project, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = rows[i].ToDomain()
	}
	return out, nil
}

// FindAll returns matching projects, newest first
func (r *GormProjectRepository) FindAll(ctx context.Context, filter project.Filter) ([]*project.Project, error) {
	query := r.db.WithContext(ctx).Model(&models.ProjectModel{})
	query = searchAny(query, filter.Search, "name", "description")
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var rows []models.ProjectModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	projects := make([]*project.Project, len(rows))
	for i := range rows {
		projects[i] = rows[i].ToDomain()
	}
	return projects, nil
}

// Ensure GormProjectRepository implements project.Repository
var _ project.Repository = (*GormProjectRepository)(nil)
