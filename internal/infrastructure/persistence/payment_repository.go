package persistence

import (
	"context"

	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentRepository implements finance.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Create creates a new payment
func (r *GormPaymentRepository) Create(ctx context.Context, p *finance.Payment) error {
	if err := r.db.WithContext(ctx).Create(models.PaymentModelFromDomain(p)).Error; err != nil {
		if isUniqueViolation(err) {
			return finance.ErrDuplicatePaymentNumber
		}
		return err
	}
	return nil
}

// Update updates an existing payment
func (r *GormPaymentRepository) Update(ctx context.Context, p *finance.Payment) error {
	result := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where("id = ?", p.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(models.PaymentModelFromDomain(p))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return finance.ErrDuplicatePaymentNumber
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a payment by ID
func (r *GormPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a payment by ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindAll returns matching payments, latest payment date first
func (r *GormPaymentRepository) FindAll(ctx context.Context, filter finance.PaymentFilter) ([]*finance.Payment, error) {
	query := r.db.WithContext(ctx).Model(&models.PaymentModel{}).Select("payments.*")
	if filter.Search != "" {
		query = query.
			Joins("LEFT JOIN clients ON clients.id = payments.client_id").
			Joins("LEFT JOIN contracts ON contracts.id = payments.contract_id").
			Joins("LEFT JOIN projects ON projects.id = contracts.project_id")
		query = searchAny(query, filter.Search,
			"payments.payment_number", "clients.name", "contracts.title", "projects.name")
	}
	if filter.Status != "" {
		query = query.Where("payments.status = ?", string(filter.Status))
	}
	if filter.ClientID != nil {
		query = query.Where("payments.client_id = ?", *filter.ClientID)
	}
	if filter.ContractID != nil {
		query = query.Where("payments.contract_id = ?", *filter.ContractID)
	}
	if filter.InvoiceID != nil {
		query = query.Where("payments.invoice_id = ?", *filter.InvoiceID)
	}
	if len(filter.Types) > 0 {
		query = query.Where("payments.payment_type IN ?", stringsOf(filter.Types))
	}
	query = withinRange(query, "payments.payment_date", filter.PaymentDate)

	var rows []models.PaymentModel
	if err := query.
		Order("payments.payment_date DESC").
		Order("payments.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return paymentsToDomain(rows), nil
}

// FindByContracts returns the payments linked to any of contractIDs
func (r *GormPaymentRepository) FindByContracts(ctx context.Context, contractIDs []uuid.UUID) ([]*finance.Payment, error) {
	if len(contractIDs) == 0 {
		return []*finance.Payment{}, nil
	}
	var rows []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("contract_id IN ?", contractIDs).
		Order("payment_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return paymentsToDomain(rows), nil
}

// LastNumberWithPrefix returns the well-formed payment number with the
// highest sequence among those starting with prefix
func (r *GormPaymentRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Where(`payment_number LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%").
		Pluck("payment_number", &numbers).Error; err != nil {
		return "", err
	}
	return highestNumber(numbers), nil
}

func paymentsToDomain(rows []models.PaymentModel) []*finance.Payment {
	out := make([]*finance.Payment, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
