package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var seedAmount = decimal.NewFromInt(1000)

// setupTestDB opens an in-memory SQLite database with the full schema.
// A single connection keeps the in-memory database alive and serializes writers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// newMockDB returns a PostgreSQL-dialect gorm.DB backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func seedClient(t *testing.T, db *gorm.DB, name string, typ partner.ClientType) *partner.Client {
	t.Helper()
	c, err := partner.NewClient(partner.ClientDetails{Name: name}, typ)
	require.NoError(t, err)
	require.NoError(t, NewGormClientRepository(db).Create(context.Background(), c))
	return c
}

func seedContract(t *testing.T, db *gorm.DB, number string, typ contract.Type, clientID uuid.UUID, projectID *uuid.UUID) *contract.Contract {
	t.Helper()
	c, err := contract.NewContract(contract.Details{
		ContractNumber: number,
		Title:          "Contract " + number,
		ContractType:   typ,
		Amount:         decimal.NewFromInt(10000),
		ClientID:       clientID,
		ProjectID:      projectID,
	})
	require.NoError(t, err)
	require.NoError(t, NewGormContractRepository(db).Create(context.Background(), c))
	return c
}

func seedInvoice(t *testing.T, db *gorm.DB, number string, typ finance.InvoiceType, clientID uuid.UUID, contractID *uuid.UUID) *finance.Invoice {
	t.Helper()
	inv, err := finance.NewInvoice(finance.InvoiceDetails{
		InvoiceNumber: number,
		InvoiceType:   typ,
		Amount:        decimal.NewFromInt(1000),
		TaxAmount:     decimal.NewFromInt(130),
		InvoiceDate:   time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		ClientID:      clientID,
		ContractID:    contractID,
	})
	require.NoError(t, err)
	require.NoError(t, NewGormInvoiceRepository(db).Create(context.Background(), inv))
	return inv
}

func seedPayment(t *testing.T, db *gorm.DB, number string, typ finance.PaymentType, clientID uuid.UUID, contractID, invoiceID *uuid.UUID) *finance.Payment {
	t.Helper()
	p, err := finance.NewPayment(finance.PaymentDetails{
		PaymentNumber: number,
		PaymentType:   typ,
		Amount:        decimal.NewFromInt(500),
		PaymentMethod: finance.PaymentMethodBankTransfer,
		PaymentDate:   time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
		ClientID:      clientID,
		ContractID:    contractID,
		InvoiceID:     invoiceID,
	})
	require.NoError(t, err)
	require.NoError(t, NewGormPaymentRepository(db).Create(context.Background(), p))
	return p
}
