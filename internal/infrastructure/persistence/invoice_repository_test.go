package persistence

import (
	"context"
	"testing"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighestNumber(t *testing.T) {
	assert.Equal(t, "", highestNumber(nil))
	assert.Equal(t, "202602-100", highestNumber([]string{"202602-99", "202602-100", "202602-07"}))
	assert.Equal(t, "202602-02", highestNumber([]string{"202602-02", "202602-XX", "202602-1"}))
}

func TestGormInvoiceRepository_Numbers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()
	customer := seedClient(t, db, "Acme", partner.ClientTypeCustomer)

	seedInvoice(t, db, "202602-01", finance.InvoiceTypeIssued, customer.ID, nil)
	seedInvoice(t, db, "202602-12", finance.InvoiceTypeIssued, customer.ID, nil)
	seedInvoice(t, db, "202603-40", finance.InvoiceTypeIssued, customer.ID, nil)
	seedInvoice(t, db, "MANUAL-1", finance.InvoiceTypeIssued, customer.ID, nil)

	last, err := repo.LastNumberWithPrefix(ctx, "202602-")
	require.NoError(t, err)
	assert.Equal(t, "202602-12", last)

	last, err = repo.LastNumberWithPrefix(ctx, "202604-")
	require.NoError(t, err)
	assert.Empty(t, last)

	t.Run("duplicate number", func(t *testing.T) {
		inv, err := finance.NewInvoice(finance.InvoiceDetails{
			InvoiceNumber: "202602-01",
			Amount:        seedAmount,
			ClientID:      customer.ID,
		})
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, inv), finance.ErrDuplicateInvoiceNumber)
	})
}

func TestGormInvoiceRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	customer := seedClient(t, db, "Acme", partner.ClientTypeCustomer)
	supplier := seedClient(t, db, "Beta Steel", partner.ClientTypeSupplier)
	sales := seedContract(t, db, "HT-001", contract.TypeSales, customer.ID, nil)

	issued := seedInvoice(t, db, "202602-01", finance.InvoiceTypeIssued, customer.ID, &sales.ID)
	received := seedInvoice(t, db, "202602-02", finance.InvoiceTypeReceived, supplier.ID, nil)

	t.Run("search by contract title", func(t *testing.T) {
		got, err := repo.FindAll(ctx, finance.InvoiceFilter{Search: "contract ht-001"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, issued.ID, got[0].ID)
	})

	t.Run("search by client name", func(t *testing.T) {
		got, err := repo.FindAll(ctx, finance.InvoiceFilter{Search: "steel"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, received.ID, got[0].ID)
	})

	t.Run("type filter", func(t *testing.T) {
		got, err := repo.FindAll(ctx, finance.InvoiceFilter{Types: []finance.InvoiceType{finance.InvoiceTypeReceived}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, received.ID, got[0].ID)
	})

	t.Run("by contracts", func(t *testing.T) {
		got, err := repo.FindByContracts(ctx, []uuid.UUID{sales.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].TotalAmount.Equal(issued.TotalAmount))

		got, err = repo.FindByContracts(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGormInvoiceRepository_DeleteUnlinksPayments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInvoiceRepository(db)
	ctx := context.Background()

	customer := seedClient(t, db, "Acme", partner.ClientTypeCustomer)
	inv := seedInvoice(t, db, "202602-01", finance.InvoiceTypeIssued, customer.ID, nil)
	pay := seedPayment(t, db, "202602-01", finance.PaymentTypeReceipt, customer.ID, nil, &inv.ID)

	require.NoError(t, repo.Delete(ctx, inv.ID))

	got, err := NewGormPaymentRepository(db).FindByID(ctx, pay.ID)
	require.NoError(t, err)
	assert.Nil(t, got.InvoiceID)

	_, err = repo.FindByID(ctx, inv.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPaymentRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	customer := seedClient(t, db, "Acme", partner.ClientTypeCustomer)
	supplier := seedClient(t, db, "Beta Steel", partner.ClientTypeSupplier)
	receipt := seedPayment(t, db, "202602-01", finance.PaymentTypeReceipt, customer.ID, nil, nil)
	expense := seedPayment(t, db, "202602-02", finance.PaymentTypeExpense, supplier.ID, nil, nil)

	got, err := repo.FindAll(ctx, finance.PaymentFilter{Types: []finance.PaymentType{finance.PaymentTypeExpense}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, expense.ID, got[0].ID)

	got, err = repo.FindAll(ctx, finance.PaymentFilter{Search: "acme"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, receipt.ID, got[0].ID)

	last, err := repo.LastNumberWithPrefix(ctx, "202602-")
	require.NoError(t, err)
	assert.Equal(t, "202602-02", last)

	t.Run("duplicate number", func(t *testing.T) {
		dup := *receipt
		dup.ID = uuid.New()
		assert.ErrorIs(t, repo.Create(ctx, &dup), finance.ErrDuplicatePaymentNumber)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, expense.ID))
		assert.ErrorIs(t, repo.Delete(ctx, expense.ID), shared.ErrNotFound)
	})
}
