package persistence

import (
	"context"

	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Create creates a new client
func (r *GormClientRepository) Create(ctx context.Context, client *partner.Client) error {
	return r.db.WithContext(ctx).Create(models.ClientModelFromDomain(client)).Error
}

// Update updates an existing client
func (r *GormClientRepository) Update(ctx context.Context, client *partner.Client) error {
	result := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Where("id = ?", client.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(models.ClientModelFromDomain(client))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a client that no contract, invoice or payment refers to
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range []any{&models.ContractModel{}, &models.InvoiceModel{}, &models.PaymentModel{}} {
			var count int64
			if err := tx.Model(ref).Where("client_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return partner.ErrClientInUse
			}
		}

		result := tx.Delete(&models.ClientModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a client by ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByIDs returns the clients found among ids
func (r *GormClientRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*partner.Client, error) {
	out := make(map[uuid.UUID]*partner.Client, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.ClientModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = rows[i].ToDomain()
	}
	return out, nil
}

// FindAll returns matching clients, newest first
func (r *GormClientRepository) FindAll(ctx context.Context, filter partner.ClientFilter) ([]*partner.Client, error) {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{})
	query = searchAny(query, filter.Search, "name", "contact_name", "phone", "email")
	if len(filter.Types) > 0 {
		query = query.Where("client_type IN ?", stringsOf(filter.Types))
	}

	var rows []models.ClientModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	clients := make([]*partner.Client, len(rows))
	for i := range rows {
		clients[i] = rows[i].ToDomain()
	}
	return clients, nil
}

// Ensure GormClientRepository implements ClientRepository
var _ partner.ClientRepository = (*GormClientRepository)(nil)
