package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	contractapp "github.com/erp/erp-system/internal/application/contract"
	financeapp "github.com/erp/erp-system/internal/application/finance"
	identityapp "github.com/erp/erp-system/internal/application/identity"
	partnerapp "github.com/erp/erp-system/internal/application/partner"
	projectapp "github.com/erp/erp-system/internal/application/project"
	"github.com/erp/erp-system/internal/domain/numbering"
	"github.com/erp/erp-system/internal/infrastructure/auth"
	"github.com/erp/erp-system/internal/infrastructure/config"
	"github.com/erp/erp-system/internal/infrastructure/persistence"
	"github.com/erp/erp-system/tests/testutil"
)

// may2024 is the clock the numbering tests run on
var may2024 = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

// services is the application layer assembled on a test database
type services struct {
	users     *identityapp.UserService
	auth      *identityapp.AuthService
	clients   *partnerapp.ClientService
	projects  *projectapp.ProjectService
	contracts *contractapp.ContractService
	invoices  *financeapp.InvoiceService
	payments  *financeapp.PaymentService
}

func newServices(t *testing.T, tdb *TestDB) *services {
	t.Helper()

	log := zap.NewNop()
	db := tdb.DB
	userRepo := persistence.NewGormUserRepository(db)
	clientRepo := persistence.NewGormClientRepository(db)
	projectRepo := persistence.NewGormProjectRepository(db)
	contractRepo := persistence.NewGormContractRepository(db)
	invoiceRepo := persistence.NewGormInvoiceRepository(db)
	paymentRepo := persistence.NewGormPaymentRepository(db)
	sequenceRepo := persistence.NewGormSequenceRepository(db)

	opts := financeapp.NumberingOptions{
		MaxRetries: 5,
		Location:   time.UTC,
		Now:        func() time.Time { return may2024 },
	}
	blacklist := auth.NewInMemoryTokenBlacklist()
	jwtService := auth.NewJWTService(config.JWTConfig{Secret: "integration-secret", Expiration: time.Hour, Issuer: "erp-test"})

	return &services{
		users:     identityapp.NewUserService(userRepo, blacklist, time.Hour, nil, log),
		auth:      identityapp.NewAuthService(userRepo, jwtService, blacklist, nil, log),
		clients:   partnerapp.NewClientService(clientRepo, log),
		projects:  projectapp.NewProjectService(projectRepo, contractRepo, clientRepo, log),
		contracts: contractapp.NewContractService(contractRepo, clientRepo, projectRepo, invoiceRepo, paymentRepo, log),
		invoices: financeapp.NewInvoiceService(invoiceRepo, clientRepo, contractRepo,
			financeapp.NewNumberGenerator(numbering.SpaceInvoice, sequenceRepo, invoiceRepo, opts, nil, log), log),
		payments: financeapp.NewPaymentService(paymentRepo, invoiceRepo, clientRepo, contractRepo,
			financeapp.NewNumberGenerator(numbering.SpacePayment, sequenceRepo, paymentRepo, opts, nil, log), log),
	}
}

func (s *services) customer(t *testing.T, name string) uuid.UUID {
	t.Helper()
	c, err := s.clients.Create(context.Background(), testutil.Admin(), partnerapp.ClientRequest{
		Name:       name,
		ClientType: "CUSTOMER",
	})
	require.NoError(t, err)
	return c.ID
}

func (s *services) salesContract(t *testing.T, number string, clientID uuid.UUID, amount int64) uuid.UUID {
	t.Helper()
	c, err := s.contracts.Create(context.Background(), testutil.Admin(), contractapp.ContractRequest{
		ContractNumber: number,
		Title:          "设备采购合同 " + number,
		ContractType:   "SALES",
		Amount:         decimal.NewFromInt(amount),
		ClientID:       clientID,
	})
	require.NoError(t, err)
	return c.ID
}

func (s *services) issuedInvoice(t *testing.T, clientID, contractID uuid.UUID, status string, amount int64) *financeapp.InvoiceResponse {
	t.Helper()
	zero := decimal.Zero
	inv, err := s.invoices.Create(context.Background(), testutil.Admin(), financeapp.InvoiceRequest{
		InvoiceType: "ISSUED",
		Status:      status,
		Amount:      decimal.NewFromInt(amount),
		TaxAmount:   &zero,
		ClientID:    clientID,
		ContractID:  &contractID,
	})
	require.NoError(t, err)
	return inv
}

func (s *services) receipt(t *testing.T, clientID, contractID uuid.UUID, status string, amount int64) *financeapp.PaymentResponse {
	t.Helper()
	p, err := s.payments.Create(context.Background(), testutil.Admin(), financeapp.PaymentRequest{
		PaymentType:   "RECEIPT",
		Status:        status,
		Amount:        decimal.NewFromInt(amount),
		PaymentMethod: "BANK_TRANSFER",
		ClientID:      clientID,
		ContractID:    &contractID,
	})
	require.NoError(t, err)
	return p
}
