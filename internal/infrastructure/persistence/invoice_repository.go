package persistence

import (
	"context"

	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/numbering"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements finance.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Create creates a new invoice
func (r *GormInvoiceRepository) Create(ctx context.Context, inv *finance.Invoice) error {
	if err := r.db.WithContext(ctx).Create(models.InvoiceModelFromDomain(inv)).Error; err != nil {
		if isUniqueViolation(err) {
			return finance.ErrDuplicateInvoiceNumber
		}
		return err
	}
	return nil
}

// Update updates an existing invoice
func (r *GormInvoiceRepository) Update(ctx context.Context, inv *finance.Invoice) error {
	result := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("id = ?", inv.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(models.InvoiceModelFromDomain(inv))
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return finance.ErrDuplicateInvoiceNumber
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the invoice and detaches the payments that referenced it
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PaymentModel{}).
			Where("invoice_id = ?", id).
			Update("invoice_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.InvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds an invoice by ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return model.ToDomain(), nil
}

// FindByIDs returns the invoices found among ids
func (r *GormInvoiceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*finance.Invoice, error) {
	out := make(map[uuid.UUID]*finance.Invoice, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.InvoiceModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = rows[i].ToDomain()
	}
	return out, nil
}

// FindAll returns matching invoices, newest first
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter finance.InvoiceFilter) ([]*finance.Invoice, error) {
	query := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Select("invoices.*")
	if filter.Search != "" {
		query = query.
			Joins("LEFT JOIN clients ON clients.id = invoices.client_id").
			Joins("LEFT JOIN contracts ON contracts.id = invoices.contract_id").
			Joins("LEFT JOIN projects ON projects.id = contracts.project_id")
		query = searchAny(query, filter.Search,
			"invoices.invoice_number", "clients.name", "contracts.title", "projects.name")
	}
	if filter.Status != "" {
		query = query.Where("invoices.status = ?", string(filter.Status))
	}
	if filter.ClientID != nil {
		query = query.Where("invoices.client_id = ?", *filter.ClientID)
	}
	if filter.ContractID != nil {
		query = query.Where("invoices.contract_id = ?", *filter.ContractID)
	}
	if len(filter.Types) > 0 {
		query = query.Where("invoices.invoice_type IN ?", stringsOf(filter.Types))
	}
	query = withinRange(query, "invoices.invoice_date", filter.InvoiceDate)

	var rows []models.InvoiceModel
	if err := query.Order("invoices.created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return invoicesToDomain(rows), nil
}

// FindByContracts returns the invoices linked to any of contractIDs
func (r *GormInvoiceRepository) FindByContracts(ctx context.Context, contractIDs []uuid.UUID) ([]*finance.Invoice, error) {
	if len(contractIDs) == 0 {
		return []*finance.Invoice{}, nil
	}
	var rows []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("contract_id IN ?", contractIDs).
		Order("invoice_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return invoicesToDomain(rows), nil
}

// LastNumberWithPrefix returns the well-formed invoice number with the
// highest sequence among those starting with prefix
func (r *GormInvoiceRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where(`invoice_number LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%").
		Pluck("invoice_number", &numbers).Error; err != nil {
		return "", err
	}
	return highestNumber(numbers), nil
}

func invoicesToDomain(rows []models.InvoiceModel) []*finance.Invoice {
	out := make([]*finance.Invoice, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out
}

// highestNumber picks the number with the greatest parsed sequence.
// Lexical order is wrong once sequences pass 99.
func highestNumber(numbers []string) string {
	best, bestSeq := "", 0
	for _, n := range numbers {
		if _, seq, ok := numbering.Parse(n); ok && seq > bestSeq {
			best, bestSeq = n, seq
		}
	}
	return best
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ finance.InvoiceRepository = (*GormInvoiceRepository)(nil)
