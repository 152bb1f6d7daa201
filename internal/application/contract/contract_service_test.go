package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/project"
	"github.com/erp/erp-system/internal/domain/settlement"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	contracts *testutil.MockContractRepository
	clients   *testutil.MockClientRepository
	projects  *testutil.MockProjectRepository
	invoices  *testutil.MockInvoiceRepository
	payments  *testutil.MockPaymentRepository
	svc       *ContractService
}

func newFixture() *fixture {
	f := &fixture{
		contracts: new(testutil.MockContractRepository),
		clients:   new(testutil.MockClientRepository),
		projects:  new(testutil.MockProjectRepository),
		invoices:  new(testutil.MockInvoiceRepository),
		payments:  new(testutil.MockPaymentRepository),
	}
	f.svc = NewContractService(f.contracts, f.clients, f.projects, f.invoices, f.payments, zap.NewNop())
	return f
}

func grants(perms ...string) identity.Grants {
	return identity.Grants{UserID: uuid.New(), Permissions: perms}
}

func mustClient(t *testing.T, typ partner.ClientType) *partner.Client {
	t.Helper()
	c, err := partner.NewClient(partner.ClientDetails{Name: "Acme"}, typ)
	require.NoError(t, err)
	return c
}

func mustContract(t *testing.T, typ contract.Type, amount int64, clientID uuid.UUID) *contract.Contract {
	t.Helper()
	c, err := contract.NewContract(contract.Details{
		ContractNumber: uuid.NewString()[:8],
		Title:          "Supply",
		ContractType:   typ,
		Amount:         decimal.NewFromInt(amount),
		ClientID:       clientID,
	})
	require.NoError(t, err)
	return c
}

func mustInvoice(t *testing.T, c *contract.Contract, total int64, status finance.InvoiceStatus) *finance.Invoice {
	t.Helper()
	inv, err := finance.NewInvoice(finance.InvoiceDetails{
		InvoiceNumber: uuid.NewString()[:8],
		InvoiceType:   finance.InvoiceTypeIssued,
		Status:        status,
		Amount:        decimal.NewFromInt(total),
		ClientID:      c.ClientID,
		ContractID:    &c.ID,
	})
	require.NoError(t, err)
	return inv
}

func TestContractService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("invoice holders only see the matching contract type", func(t *testing.T) {
		f := newFixture()
		f.contracts.On("FindAll", mock.Anything, contract.Filter{Types: []contract.Type{contract.TypeSales}}).
			Return([]*contract.Contract{}, nil)
		f.clients.On("FindByIDs", mock.Anything, mock.Anything).Return(map[uuid.UUID]*partner.Client{}, nil)

		_, err := f.svc.List(ctx, grants(identity.PermInvoicesIssued), ContractListFilter{})

		require.NoError(t, err)
		f.contracts.AssertExpectations(t)
	})

	t.Run("hidden type", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.List(ctx, grants(identity.PermContractsSales), ContractListFilter{ContractType: "PURCHASE"})

		assert.ErrorIs(t, err, identity.ErrPermissionDenied)
	})

	t.Run("forInvoices drops fully invoiced contracts counting drafts", func(t *testing.T) {
		f := newFixture()
		customer := mustClient(t, partner.ClientTypeCustomer)
		open := mustContract(t, contract.TypeSales, 10000, customer.ID)
		done := mustContract(t, contract.TypeSales, 10000, customer.ID)
		f.contracts.On("FindAll", mock.Anything, mock.Anything).Return([]*contract.Contract{open, done}, nil)
		f.clients.On("FindByIDs", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]*partner.Client{customer.ID: customer}, nil)
		f.invoices.On("FindByContracts", mock.Anything, []uuid.UUID{open.ID, done.ID}).Return([]*finance.Invoice{
			mustInvoice(t, open, 4000, finance.InvoiceStatusIssued),
			mustInvoice(t, done, 4000, finance.InvoiceStatusIssued),
			mustInvoice(t, done, 6000, finance.InvoiceStatusUnissued),
		}, nil)

		got, err := f.svc.List(ctx, grants(identity.PermInvoicesIssued), ContractListFilter{ForInvoices: true})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, open.ID, got[0].ID)
		assert.Equal(t, "Acme", got[0].ClientName)
		require.NotNil(t, got[0].Invoicing)
		assert.Equal(t, settlement.AllRecords, got[0].Invoicing.Policy)
		assert.True(t, got[0].Invoicing.Remaining.Equal(decimal.NewFromInt(6000)))
		assert.Nil(t, got[0].Payment)
		f.payments.AssertNotCalled(t, "FindByContracts", mock.Anything, mock.Anything)
	})

	t.Run("withSettlement counts finalized records only", func(t *testing.T) {
		f := newFixture()
		customer := mustClient(t, partner.ClientTypeCustomer)
		c := mustContract(t, contract.TypeSales, 10000, customer.ID)
		f.contracts.On("FindAll", mock.Anything, mock.Anything).Return([]*contract.Contract{c}, nil)
		f.clients.On("FindByIDs", mock.Anything, mock.Anything).Return(map[uuid.UUID]*partner.Client{}, nil)
		f.invoices.On("FindByContracts", mock.Anything, []uuid.UUID{c.ID}).Return([]*finance.Invoice{
			mustInvoice(t, c, 4000, finance.InvoiceStatusIssued),
			mustInvoice(t, c, 6000, finance.InvoiceStatusUnissued),
		}, nil)
		f.payments.On("FindByContracts", mock.Anything, []uuid.UUID{c.ID}).Return([]*finance.Payment{}, nil)

		got, err := f.svc.List(ctx, grants(identity.PermContractsSales), ContractListFilter{WithSettlement: true})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Invoicing.Settled.Equal(decimal.NewFromInt(4000)))
		assert.Equal(t, 1, got[0].Invoicing.Excluded)
		assert.True(t, got[0].Payment.Remaining.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("settlement failure returns contracts without balances", func(t *testing.T) {
		f := newFixture()
		c := mustContract(t, contract.TypeSales, 10000, uuid.New())
		f.contracts.On("FindAll", mock.Anything, mock.Anything).Return([]*contract.Contract{c}, nil)
		f.clients.On("FindByIDs", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		f.payments.On("FindByContracts", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		got, err := f.svc.List(ctx, grants(identity.PermPaymentsReceipts), ContractListFilter{ForPayments: true})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].Payment)
		assert.Empty(t, got[0].ClientName)
	})
}

func TestContractService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("detail with documents and finalized balances", func(t *testing.T) {
		f := newFixture()
		customer := mustClient(t, partner.ClientTypeCustomer)
		p, err := project.NewProject(project.Details{Name: "Tower"})
		require.NoError(t, err)
		c := mustContract(t, contract.TypeSales, 10000, customer.ID)
		c.ProjectID = &p.ID
		f.contracts.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		f.clients.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.projects.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		f.invoices.On("FindByContracts", mock.Anything, []uuid.UUID{c.ID}).Return([]*finance.Invoice{
			mustInvoice(t, c, 4000, finance.InvoiceStatusIssued),
			mustInvoice(t, c, 6000, finance.InvoiceStatusIssued),
		}, nil)
		f.payments.On("FindByContracts", mock.Anything, []uuid.UUID{c.ID}).Return(nil, errors.New("timeout"))

		detail, err := f.svc.Get(ctx, grants(identity.PermContractsSales), c.ID)

		require.NoError(t, err)
		assert.Equal(t, "Acme", detail.Client.Name)
		assert.Equal(t, "Tower", detail.ProjectName)
		require.Len(t, detail.Invoices, 2)
		require.NotNil(t, detail.Invoicing)
		assert.True(t, detail.Invoicing.Remaining.IsZero())
		assert.True(t, detail.Invoicing.IsCompleted)
		assert.Nil(t, detail.Payments)
		assert.Nil(t, detail.Payment)
	})

	t.Run("other side is forbidden", func(t *testing.T) {
		f := newFixture()
		c := mustContract(t, contract.TypePurchase, 100, uuid.New())
		f.contracts.On("FindByID", mock.Anything, c.ID).Return(c, nil)

		_, err := f.svc.Get(ctx, grants(identity.PermContractsSales), c.ID)

		assert.ErrorIs(t, err, identity.ErrPermissionDenied)
	})
}

func TestContractService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sales contract with a customer", func(t *testing.T) {
		f := newFixture()
		customer := mustClient(t, partner.ClientTypeCustomer)
		f.clients.On("FindByID", ctx, customer.ID).Return(customer, nil)
		f.contracts.On("Create", ctx, mock.AnythingOfType("*contract.Contract")).Return(nil)

		got, err := f.svc.Create(ctx, grants(identity.PermContractsSales), ContractRequest{
			ContractNumber: "HT-001",
			Title:          "Supply",
			ContractType:   "SALES",
			Amount:         decimal.NewFromInt(500),
			ClientID:       customer.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, "SIGNED", got.Status)
		assert.Equal(t, "Acme", got.ClientName)
	})

	t.Run("defaults to purchase", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Create(ctx, grants(identity.PermContractsSales), ContractRequest{
			ContractNumber: "HT-001",
			Title:          "Supply",
			Amount:         decimal.NewFromInt(500),
			ClientID:       uuid.New(),
		})

		assert.ErrorIs(t, err, identity.ErrPermissionDenied)
	})

	t.Run("sales contract with a supplier", func(t *testing.T) {
		f := newFixture()
		supplier := mustClient(t, partner.ClientTypeSupplier)
		f.clients.On("FindByID", ctx, supplier.ID).Return(supplier, nil)

		_, err := f.svc.Create(ctx, grants(identity.PermContractsSales), ContractRequest{
			ContractNumber: "HT-001",
			Title:          "Supply",
			ContractType:   "SALES",
			Amount:         decimal.NewFromInt(500),
			ClientID:       supplier.ID,
		})

		assert.ErrorIs(t, err, contract.ErrCounterpartyMismatch)
		f.contracts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown client and project", func(t *testing.T) {
		f := newFixture()
		customer := mustClient(t, partner.ClientTypeCustomer)
		missing := uuid.New()
		f.clients.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)
		f.clients.On("FindByID", ctx, customer.ID).Return(customer, nil)
		f.projects.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		req := ContractRequest{
			ContractNumber: "HT-001",
			Title:          "Supply",
			ContractType:   "SALES",
			Amount:         decimal.NewFromInt(500),
			ClientID:       missing,
		}
		_, err := f.svc.Create(ctx, grants(identity.PermContractsSales), req)
		assert.ErrorIs(t, err, ErrClientNotFound)

		req.ClientID = customer.ID
		req.ProjectID = &missing
		_, err = f.svc.Create(ctx, grants(identity.PermContractsSales), req)
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("duplicate number", func(t *testing.T) {
		f := newFixture()
		customer := mustClient(t, partner.ClientTypeCustomer)
		f.clients.On("FindByID", ctx, customer.ID).Return(customer, nil)
		f.contracts.On("Create", ctx, mock.Anything).Return(contract.ErrDuplicateNumber)

		_, err := f.svc.Create(ctx, grants(identity.PermContractsSales), ContractRequest{
			ContractNumber: "HT-001",
			Title:          "Supply",
			ContractType:   "SALES",
			Amount:         decimal.NewFromInt(500),
			ClientID:       customer.ID,
		})

		assert.ErrorIs(t, err, contract.ErrDuplicateNumber)
	})
}

func TestContractService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	customer := mustClient(t, partner.ClientTypeCustomer)

	t.Run("switching type needs the other permission", func(t *testing.T) {
		f := newFixture()
		c := mustContract(t, contract.TypeSales, 100, customer.ID)
		f.contracts.On("FindByID", ctx, c.ID).Return(c, nil)

		_, err := f.svc.Update(ctx, grants(identity.PermContractsSales), c.ID, ContractRequest{
			ContractNumber: c.ContractNumber,
			Title:          c.Title,
			ContractType:   "PURCHASE",
			Amount:         c.Amount,
			ClientID:       customer.ID,
		})

		assert.ErrorIs(t, err, identity.ErrPermissionDenied)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture()
		c := mustContract(t, contract.TypeSales, 100, customer.ID)
		f.contracts.On("FindByID", ctx, c.ID).Return(c, nil)
		f.contracts.On("Delete", ctx, c.ID).Return(nil)

		require.NoError(t, f.svc.Delete(ctx, grants(identity.PermContractsSales), c.ID))
		assert.ErrorIs(t, f.svc.Delete(ctx, grants(identity.PermInvoicesIssued), c.ID), identity.ErrPermissionDenied)
	})
}
