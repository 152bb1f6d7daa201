package integration

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	financeapp "github.com/erp/erp-system/internal/application/finance"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/tests/testutil"
)

func TestNumbering_ConcurrentInvoicesGetDistinctNumbers(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	svc := newServices(t, tdb)
	clientID := svc.customer(t, "华东机电有限公司")
	contractID := svc.salesContract(t, "HT-2024-001", clientID, 100000)

	const workers = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		numbers = make([]string, 0, workers)
		errs    = make([]error, 0)
	)
	zero := decimal.Zero
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv, err := svc.invoices.Create(context.Background(), testutil.Admin(), financeapp.InvoiceRequest{
				InvoiceType: "ISSUED",
				Amount:      decimal.NewFromInt(100),
				TaxAmount:   &zero,
				ClientID:    clientID,
				ContractID:  &contractID,
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			numbers = append(numbers, inv.InvoiceNumber)
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, numbers, workers)
	seen := make(map[string]struct{}, workers)
	pattern := regexp.MustCompile(`^202405-\d{2,}$`)
	for _, n := range numbers {
		assert.Regexp(t, pattern, n)
		_, dup := seen[n]
		assert.False(t, dup, "number %s handed out twice", n)
		seen[n] = struct{}{}
	}

	var stored int64
	require.NoError(t, tdb.DB.Table("invoices").Count(&stored).Error)
	assert.Equal(t, int64(workers), stored)
}

func TestNumbering_ContinuesAfterManualNumber(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	svc := newServices(t, tdb)
	ctx := context.Background()
	clientID := svc.customer(t, "江南设备")
	zero := decimal.Zero

	manual, err := svc.invoices.Create(ctx, testutil.Admin(), financeapp.InvoiceRequest{
		InvoiceNumber: "202405-07",
		InvoiceType:   "ISSUED",
		Amount:        decimal.NewFromInt(500),
		TaxAmount:     &zero,
		ClientID:      clientID,
	})
	require.NoError(t, err)
	assert.Equal(t, "202405-07", manual.InvoiceNumber)

	next, err := svc.invoices.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "202405-08", next.Number)

	// previews do not consume numbers
	again, err := svc.invoices.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, next.Number, again.Number)

	generated, err := svc.invoices.Create(ctx, testutil.Admin(), financeapp.InvoiceRequest{
		InvoiceType: "ISSUED",
		Amount:      decimal.NewFromInt(500),
		TaxAmount:   &zero,
		ClientID:    clientID,
	})
	require.NoError(t, err)
	assert.Equal(t, "202405-08", generated.InvoiceNumber)
}

func TestNumbering_ManualCollisionIsRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	svc := newServices(t, tdb)
	ctx := context.Background()
	clientID := svc.customer(t, "北方重工")
	zero := decimal.Zero
	req := financeapp.InvoiceRequest{
		InvoiceNumber: "202405-01",
		InvoiceType:   "ISSUED",
		Amount:        decimal.NewFromInt(800),
		TaxAmount:     &zero,
		ClientID:      clientID,
	}

	_, err := svc.invoices.Create(ctx, testutil.Admin(), req)
	require.NoError(t, err)

	_, err = svc.invoices.Create(ctx, testutil.Admin(), req)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "DUPLICATE_NUMBER", domainErr.Code)
}

func TestNumbering_SpacesAreIndependent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	svc := newServices(t, tdb)
	clientID := svc.customer(t, "东海贸易")
	contractID := svc.salesContract(t, "HT-2024-002", clientID, 5000)

	inv := svc.issuedInvoice(t, clientID, contractID, "ISSUED", 1000)
	inv2 := svc.issuedInvoice(t, clientID, contractID, "ISSUED", 1000)
	pay := svc.receipt(t, clientID, contractID, "PAID", 1000)

	assert.Equal(t, "202405-01", inv.InvoiceNumber)
	assert.Equal(t, "202405-02", inv2.InvoiceNumber)
	assert.Equal(t, "202405-01", pay.PaymentNumber)
}
