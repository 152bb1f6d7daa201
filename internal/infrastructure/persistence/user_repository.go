package persistence

import (
	"context"
	"time"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return identity.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// Update updates an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *identity.User) error {
	model := models.UserModelFromDomain(user)
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return identity.ErrDuplicateUsername
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// UpdateLastLogin writes only last_login_at, so a login racing an admin
// edit cannot restore the permissions it read
func (r *GormUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByUsername finds a user by exact username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&model).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// ExistsByUsername checks if a username is taken by a user other than excludeID
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("username = ?", username)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns every user, newest first
func (r *GormUserRepository) FindAll(ctx context.Context) ([]*identity.User, error) {
	var rows []models.UserModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]*identity.User, len(rows))
	for i := range rows {
		users[i] = rows[i].ToDomain()
	}
	return users, nil
}

// Count returns the total number of users
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteUnlessLast deletes the user unless it is the last one.
// The settings row lock serializes concurrent deletions.
func (r *GormUserRepository) DeleteUnlessLast(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockSettingsRow(tx); err != nil {
			return err
		}

		var target models.UserModel
		if err := tx.Select("id").First(&target, "id = ?", id).Error; err != nil {
			return notFound(err)
		}

		var count int64
		if err := tx.Model(&models.UserModel{}).Count(&count).Error; err != nil {
			return err
		}
		if count <= 1 {
			return identity.ErrLastUser
		}

		result := tx.Delete(&models.UserModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CreateInitialAdmin creates the first administrator and sets the
// first-run marker in the same transaction.
func (r *GormUserRepository) CreateInitialAdmin(ctx context.Context, admin *identity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, err := lockSettingsRow(tx)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.UserModel{}).Count(&count).Error; err != nil {
			return err
		}
		if !identity.ResolveBootstrapState(row.InitializedAt != nil, count).CanCreateInitialAdmin() {
			return identity.ErrAlreadyInitialized
		}

		if err := tx.Create(models.UserModelFromDomain(admin)).Error; err != nil {
			if isUniqueViolation(err) {
				return identity.ErrDuplicateUsername
			}
			return err
		}

		now := time.Now()
		return tx.Model(&models.SystemSettingsModel{}).
			Where("id = ?", models.SystemSettingsID).
			Update("initialized_at", now).Error
	})
}

// BootstrapState reports whether first-run setup is still open
func (r *GormUserRepository) BootstrapState(ctx context.Context) (identity.BootstrapState, error) {
	db := r.db.WithContext(ctx)

	var rows []models.SystemSettingsModel
	if err := db.Select("id", "initialized_at").
		Where("id = ?", models.SystemSettingsID).
		Limit(1).Find(&rows).Error; err != nil {
		return "", err
	}
	initialized := len(rows) == 1 && rows[0].InitializedAt != nil

	count, err := r.Count(ctx)
	if err != nil {
		return "", err
	}
	return identity.ResolveBootstrapState(initialized, count), nil
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
