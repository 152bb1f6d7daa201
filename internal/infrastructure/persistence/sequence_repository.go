package persistence

import (
	"context"
	"time"

	"github.com/erp/erp-system/internal/domain/numbering"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSequenceRepository implements numbering.SequenceRepository with one
// counter row per (space, period). Increments run under a row lock.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GormSequenceRepository
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// lockCounter creates the counter row if needed and locks it
func lockCounter(tx *gorm.DB, space numbering.Space, period string) (*models.DocumentSequenceModel, error) {
	seed := &models.DocumentSequenceModel{
		Space:     string(space),
		Period:    period,
		LastValue: 0,
		UpdatedAt: time.Now(),
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
		return nil, err
	}
	var row models.DocumentSequenceModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("space = ? AND period = ?", string(space), period).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Next increments the counter and returns the new value
func (r *GormSequenceRepository) Next(ctx context.Context, space numbering.Space, period string) (int, error) {
	if !space.IsValid() {
		return 0, numbering.ErrInvalidSpace
	}
	var next int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockCounter(tx, space, period)
		if err != nil {
			return err
		}
		next = row.LastValue + 1
		if next > numbering.MaxSequence {
			return numbering.ErrSequenceOutOfRange
		}
		return tx.Model(&models.DocumentSequenceModel{}).
			Where("space = ? AND period = ?", string(space), period).
			Updates(map[string]any{"last_value": next, "updated_at": time.Now()}).Error
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Peek returns the value Next would hand out without consuming it
func (r *GormSequenceRepository) Peek(ctx context.Context, space numbering.Space, period string) (int, error) {
	if !space.IsValid() {
		return 0, numbering.ErrInvalidSpace
	}
	var rows []models.DocumentSequenceModel
	if err := r.db.WithContext(ctx).
		Where("space = ? AND period = ?", string(space), period).
		Limit(1).Find(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 1, nil
	}
	return rows[0].LastValue + 1, nil
}

// Observe raises the counter to at least seq, so numbers entered by hand are
// never handed out again
func (r *GormSequenceRepository) Observe(ctx context.Context, space numbering.Space, period string, seq int) error {
	if !space.IsValid() {
		return numbering.ErrInvalidSpace
	}
	if seq > numbering.MaxSequence {
		return numbering.ErrSequenceOutOfRange
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockCounter(tx, space, period)
		if err != nil {
			return err
		}
		if row.LastValue >= seq {
			return nil
		}
		return tx.Model(&models.DocumentSequenceModel{}).
			Where("space = ? AND period = ?", string(space), period).
			Updates(map[string]any{"last_value": seq, "updated_at": time.Now()}).Error
	})
}

// Ensure GormSequenceRepository implements SequenceRepository
var _ numbering.SequenceRepository = (*GormSequenceRepository)(nil)
