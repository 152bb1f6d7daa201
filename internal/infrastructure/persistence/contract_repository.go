package persistence

import (
	"context"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContractRepository implements contract.Repository using GORM
type GormContractRepository struct {
	db *gorm.DB
}

// NewGormContractRepository creates a new GormContractRepository
func NewGormContractRepository(db *gorm.DB) *GormContractRepository {
	return &GormContractRepository{db: db}
}

// Create creates a new contract
func (r *GormContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	if err := r.db.WithContext(ctx).Create(models.ContractModelFromDomain(c)).Error; err != nil {
		if isUniqueViolation(err) {
			return contract.ErrDuplicateNumber
		}
		return err
	}
	return nil
}

// Update updates an existing contract
func (r *GormContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	result := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("id = ?", c.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(models.ContractModelFromDomain(c))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return contract.ErrDuplicateNumber
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the contract and detaches its invoices and payments
func (r *GormContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.InvoiceModel{}).
			Where("contract_id = ?", id).
			Update("contract_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PaymentModel{}).
			Where("contract_id = ?", id).
			Update("contract_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ContractModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a contract by ID
func (r *GormContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	var model models.ContractModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByIDs returns the contracts found among ids
func (r *GormContractRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*contract.Contract, error) {
	out := make(map[uuid.UUID]*contract.Contract, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.ContractModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = rows[i].ToDomain()
	}
	return out, nil
}

// FindAll returns matching contracts, newest first
func (r *GormContractRepository) FindAll(ctx context.Context, filter contract.Filter) ([]*contract.Contract, error) {
	var rows []models.ContractModel
	if err := r.applyFilter(r.db.WithContext(ctx), filter).
		Order("contracts.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return contractsToDomain(rows), nil
}

// FindByProject returns the contracts of a project, newest first
func (r *GormContractRepository) FindByProject(ctx context.Context, projectID uuid.UUID) ([]*contract.Contract, error) {
	var rows []models.ContractModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return contractsToDomain(rows), nil
}

// CountByProjects returns the number of contracts per project. Projects
// without contracts are absent from the map.
func (r *GormContractRepository) CountByProjects(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		ProjectID uuid.UUID
		Total     int64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.ContractModel{}).
		Select("project_id, COUNT(*) AS total").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ProjectID] = row.Total
	}
	return out, nil
}

// applyFilter joins clients and projects so the search can match their names
func (r *GormContractRepository) applyFilter(db *gorm.DB, filter contract.Filter) *gorm.DB {
	query := db.Model(&models.ContractModel{}).Select("contracts.*")
	if filter.Search != "" {
		query = query.
			Joins("LEFT JOIN clients ON clients.id = contracts.client_id").
			Joins("LEFT JOIN projects ON projects.id = contracts.project_id")
		query = searchAny(query, filter.Search,
			"contracts.contract_number", "contracts.title", "clients.name", "projects.name")
	}
	if filter.Status != "" {
		query = query.Where("contracts.status = ?", string(filter.Status))
	}
	if filter.ClientID != nil {
		query = query.Where("contracts.client_id = ?", *filter.ClientID)
	}
	if filter.ProjectID != nil {
		query = query.Where("contracts.project_id = ?", *filter.ProjectID)
	}
	if len(filter.Types) > 0 {
		query = query.Where("contracts.contract_type IN ?", stringsOf(filter.Types))
	}
	return withinRange(query, "contracts.start_date", filter.StartDate)
}

func contractsToDomain(rows []models.ContractModel) []*contract.Contract {
	out := make([]*contract.Contract, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out
}

// Ensure GormContractRepository implements contract.Repository
var _ contract.Repository = (*GormContractRepository)(nil)
