package persistence

import (
	"context"
	"time"

	"github.com/erp/erp-system/internal/domain/settings"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements settings.Repository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// ensureSettingsRow inserts the default singleton if it is missing.
// Concurrent callers race on the primary key and all but one do nothing.
func ensureSettingsRow(tx *gorm.DB) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(models.DefaultSystemSettingsModel()).Error
}

// lockSettingsRow ensures the singleton exists and takes a row lock on it.
// Operations that must not interleave (first-run setup, user deletion)
// serialize on this lock.
func lockSettingsRow(tx *gorm.DB) (*models.SystemSettingsModel, error) {
	if err := ensureSettingsRow(tx); err != nil {
		return nil, err
	}
	var row models.SystemSettingsModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "id = ?", models.SystemSettingsID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Get returns the settings, creating the default record on first access
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.SystemSettings, error) {
	db := r.db.WithContext(ctx)
	var row models.SystemSettingsModel
	err := db.Limit(1).Find(&row, "id = ?", models.SystemSettingsID).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		if err := ensureSettingsRow(db); err != nil {
			return nil, err
		}
		if err := db.First(&row, "id = ?", models.SystemSettingsID).Error; err != nil {
			return nil, notFound(err)
		}
	}
	return row.ToDomain(), nil
}

// Save writes the editable fields. The first-run marker is never touched.
func (r *GormSettingsRepository) Save(ctx context.Context, s *settings.SystemSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSettingsRow(tx); err != nil {
			return err
		}
		updatedAt := s.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = time.Now()
		}
		return tx.Model(&models.SystemSettingsModel{}).
			Where("id = ?", models.SystemSettingsID).
			Updates(map[string]any{
				"company_name": s.CompanyName,
				"logo_url":     s.LogoURL,
				"updated_at":   updatedAt,
			}).Error
	})
}

// Ensure GormSettingsRepository implements settings.Repository
var _ settings.Repository = (*GormSettingsRepository)(nil)
