package finance

import (
	"context"
	"errors"
	"strings"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService handles receipts and expenses
type PaymentService struct {
	paymentRepo finance.PaymentRepository
	invoiceRepo finance.InvoiceRepository
	related     counterparts
	numbers     *NumberGenerator
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo finance.PaymentRepository,
	invoiceRepo finance.InvoiceRepository,
	clientRepo partner.ClientRepository,
	contractRepo contract.Repository,
	numbers *NumberGenerator,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		related:     counterparts{clientRepo: clientRepo, contractRepo: contractRepo, logger: logger},
		numbers:     numbers,
		logger:      logger,
	}
}

func paymentPerms(t finance.PaymentType) []string { return t.AccessPermissions() }

// List returns the payments the caller may see, latest payment date first
func (s *PaymentService) List(ctx context.Context, caller identity.Grants, filter PaymentListFilter) ([]PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "list")
	defer span.End()

	requested := finance.PaymentType(filter.PaymentType)
	if requested != "" && !requested.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "收付款类型无效")
	}
	status := finance.PaymentStatus(filter.Status)
	if status != "" && !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_STATUS", "收付款状态无效")
	}
	if err := filter.PaymentDate.Validate(); err != nil {
		return nil, err
	}
	types, err := identity.NarrowKinds(caller, finance.AllPaymentTypes, requested, paymentPerms)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindAll(ctx, finance.PaymentFilter{
		Search:      filter.Search,
		Status:      status,
		ClientID:    filter.ClientID,
		ContractID:  filter.ContractID,
		InvoiceID:   filter.InvoiceID,
		Types:       types,
		PaymentDate: filter.PaymentDate,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	clientIDs := make([]uuid.UUID, 0, len(payments))
	contractIDs := make([]uuid.UUID, 0, len(payments))
	invoiceIDs := make([]uuid.UUID, 0, len(payments))
	for _, p := range payments {
		clientIDs = append(clientIDs, p.ClientID)
		if p.ContractID != nil {
			contractIDs = append(contractIDs, *p.ContractID)
		}
		if p.InvoiceID != nil {
			invoiceIDs = append(invoiceIDs, *p.InvoiceID)
		}
	}
	clients, contracts := s.related.lookupMany(ctx, clientIDs, contractIDs)
	var invoices map[uuid.UUID]*finance.Invoice
	if len(invoiceIDs) > 0 {
		if invoices, err = s.invoiceRepo.FindByIDs(ctx, invoiceIDs); err != nil {
			s.logger.Warn("Failed to load payment invoices", zap.Error(err))
		}
	}

	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		var inv *finance.Invoice
		if p.InvoiceID != nil {
			inv = invoices[*p.InvoiceID]
		}
		out = append(out, ToPaymentResponse(p, clients[p.ClientID], contractOf(contracts, p.ContractID), inv))
	}
	return out, nil
}

// Get returns one payment
func (s *PaymentService) Get(ctx context.Context, caller identity.Grants, id uuid.UUID) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, p.PaymentType, paymentPerms); err != nil {
		return nil, err
	}
	client, c := s.related.lookup(ctx, p.ClientID, p.ContractID)
	var inv *finance.Invoice
	if p.InvoiceID != nil {
		if inv, err = s.invoiceRepo.FindByID(ctx, *p.InvoiceID); err != nil {
			s.logger.Warn("Failed to load payment invoice", zap.String("payment_id", id.String()), zap.Error(err))
			inv = nil
		}
	}
	resp := ToPaymentResponse(p, client, c, inv)
	return &resp, nil
}

// NextNumber previews the number the next generated payment would get
func (s *PaymentService) NextNumber(ctx context.Context) (*NextNumber, error) {
	number, err := s.numbers.Preview(ctx)
	if err != nil {
		return nil, err
	}
	return &NextNumber{Number: number}, nil
}

// Create records a payment. Without a payment number one is generated for
// the current month.
func (s *PaymentService) Create(ctx context.Context, caller identity.Grants, req PaymentRequest) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "create")
	defer span.End()

	d := req.details()
	d.PaymentNumber = strings.TrimSpace(d.PaymentNumber)
	manual := d.PaymentNumber
	if manual == "" {
		d.PaymentNumber = pendingNumber
	}
	p, err := finance.NewPayment(d)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, p.PaymentType, paymentPerms); err != nil {
		return nil, err
	}
	client, c, inv, err := s.checkRelations(ctx, p)
	if err != nil {
		return nil, err
	}

	number, err := s.numbers.Assign(ctx, manual, func(number string) error {
		p.PaymentNumber = number
		return s.paymentRepo.Create(ctx, p)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrDocumentNumber, number)

	s.logger.Info("Payment created",
		zap.String("payment_id", p.ID.String()),
		zap.String("payment_number", number),
		zap.String("payment_type", string(p.PaymentType)))
	resp := ToPaymentResponse(p, client, c, inv)
	return &resp, nil
}

// Update replaces a payment's fields. An empty number, type or status keeps
// the current value.
func (s *PaymentService) Update(ctx context.Context, caller identity.Grants, id uuid.UUID, req PaymentRequest) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, p.PaymentType, paymentPerms); err != nil {
		return nil, err
	}

	d := req.details()
	if strings.TrimSpace(d.PaymentNumber) == "" {
		d.PaymentNumber = p.PaymentNumber
	}
	previous := p.PaymentNumber
	if err := p.Update(d); err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, p.PaymentType, paymentPerms); err != nil {
		return nil, err
	}
	client, c, inv, err := s.checkRelations(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	if p.PaymentNumber != previous {
		s.numbers.Observe(ctx, p.PaymentNumber)
	}
	resp := ToPaymentResponse(p, client, c, inv)
	return &resp, nil
}

// Delete removes a payment
func (s *PaymentService) Delete(ctx context.Context, caller identity.Grants, id uuid.UUID) error {
	p, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := identity.CheckKind(caller, p.PaymentType, paymentPerms); err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Payment deleted",
		zap.String("payment_id", id.String()),
		zap.String("payment_number", p.PaymentNumber))
	return nil
}

func (s *PaymentService) checkRelations(ctx context.Context, p *finance.Payment) (*partner.Client, *contract.Contract, *finance.Invoice, error) {
	client, c, err := s.related.resolve(ctx, p.ClientID, p.ContractID)
	if err != nil {
		return nil, nil, nil, err
	}
	var inv *finance.Invoice
	if p.InvoiceID != nil {
		if inv, err = s.invoiceRepo.FindByID(ctx, *p.InvoiceID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, nil, nil, ErrInvoiceNotFound
			}
			return nil, nil, nil, err
		}
	}
	if err := p.CheckCounterparty(client, c, inv); err != nil {
		return nil, nil, nil, err
	}
	return client, c, inv, nil
}
