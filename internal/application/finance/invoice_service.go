package finance

import (
	"context"
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

// InvoiceService handles issued and received invoices
type InvoiceService struct {
	invoiceRepo finance.InvoiceRepository
	related     counterparts
	numbers     *NumberGenerator
	logger      *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo finance.InvoiceRepository,
	clientRepo partner.ClientRepository,
	contractRepo contract.Repository,
	numbers *NumberGenerator,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		related:     counterparts{clientRepo: clientRepo, contractRepo: contractRepo, logger: logger},
		numbers:     numbers,
		logger:      logger,
	}
}

func invoiceReadPerms(t finance.InvoiceType) []string  { return t.ReadPermissions() }
func invoiceWritePerms(t finance.InvoiceType) []string { return t.WritePermissions() }

// List returns the invoices the caller may see, newest first
func (s *InvoiceService) List(ctx context.Context, caller identity.Grants, filter InvoiceListFilter) ([]InvoiceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "invoice", "list")
	defer span.End()

	requested := finance.InvoiceType(filter.InvoiceType)
	if requested != "" && !requested.IsValid() {
		return nil, shared.NewDomainError("INVALID_INVOICE_TYPE", "发票类型无效")
	}
	status := finance.InvoiceStatus(filter.Status)
	if status != "" && !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INVOICE_STATUS", "发票状态无效")
	}
	if err := filter.InvoiceDate.Validate(); err != nil {
		return nil, err
	}
	types, err := identity.NarrowKinds(caller, finance.AllInvoiceTypes, requested, invoiceReadPerms)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, finance.InvoiceFilter{
		Search:      filter.Search,
		Status:      status,
		ClientID:    filter.ClientID,
		ContractID:  filter.ContractID,
		Types:       types,
		InvoiceDate: filter.InvoiceDate,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	clientIDs := make([]uuid.UUID, 0, len(invoices))
	contractIDs := make([]uuid.UUID, 0, len(invoices))
	for _, inv := range invoices {
		clientIDs = append(clientIDs, inv.ClientID)
		if inv.ContractID != nil {
			contractIDs = append(contractIDs, *inv.ContractID)
		}
	}
	clients, contracts := s.related.lookupMany(ctx, clientIDs, contractIDs)

	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, ToInvoiceResponse(inv, clients[inv.ClientID], contractOf(contracts, inv.ContractID)))
	}
	return out, nil
}

// Get returns one invoice
func (s *InvoiceService) Get(ctx context.Context, caller identity.Grants, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, inv.InvoiceType, invoiceReadPerms); err != nil {
		return nil, err
	}
	client, c := s.related.lookup(ctx, inv.ClientID, inv.ContractID)
	resp := ToInvoiceResponse(inv, client, c)
	return &resp, nil
}

// NextNumber previews the number the next generated invoice would get
func (s *InvoiceService) NextNumber(ctx context.Context) (*NextNumber, error) {
	number, err := s.numbers.Preview(ctx)
	if err != nil {
		return nil, err
	}
	return &NextNumber{Number: number}, nil
}

// Create records an invoice. Without an invoice number one is generated for
// the current month.
func (s *InvoiceService) Create(ctx context.Context, caller identity.Grants, req InvoiceRequest) (*InvoiceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "invoice", "create")
	defer span.End()

	d := req.details()
	d.InvoiceNumber = strings.TrimSpace(d.InvoiceNumber)
	manual := d.InvoiceNumber
	if manual == "" {
		d.InvoiceNumber = pendingNumber
	}
	inv, err := finance.NewInvoice(d)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, inv.InvoiceType, invoiceWritePerms); err != nil {
		return nil, err
	}
	if req.TotalAmount != nil {
		if err := inv.CheckTotal(*req.TotalAmount); err != nil {
			return nil, err
		}
	}
	client, c, err := s.related.resolve(ctx, inv.ClientID, inv.ContractID)
	if err != nil {
		return nil, err
	}
	if err := inv.CheckCounterparty(client, c); err != nil {
		return nil, err
	}

	number, err := s.numbers.Assign(ctx, manual, func(number string) error {
		inv.InvoiceNumber = number
		return s.invoiceRepo.Create(ctx, inv)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrDocumentNumber, number)

	s.logger.Info("Invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", number),
		zap.String("invoice_type", string(inv.InvoiceType)))
	resp := ToInvoiceResponse(inv, client, c)
	return &resp, nil
}

// Update replaces an invoice's fields. An empty number, type or status keeps
// the current value.
func (s *InvoiceService) Update(ctx context.Context, caller identity.Grants, id uuid.UUID, req InvoiceRequest) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, inv.InvoiceType, invoiceWritePerms); err != nil {
		return nil, err
	}

	d := req.details()
	if strings.TrimSpace(d.InvoiceNumber) == "" {
		d.InvoiceNumber = inv.InvoiceNumber
	}
	previous := inv.InvoiceNumber
	if err := inv.Update(d); err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, inv.InvoiceType, invoiceWritePerms); err != nil {
		return nil, err
	}
	if req.TotalAmount != nil {
		if err := inv.CheckTotal(*req.TotalAmount); err != nil {
			return nil, err
		}
	}
	client, c, err := s.related.resolve(ctx, inv.ClientID, inv.ContractID)
	if err != nil {
		return nil, err
	}
	if err := inv.CheckCounterparty(client, c); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	if inv.InvoiceNumber != previous {
		s.numbers.Observe(ctx, inv.InvoiceNumber)
	}
	resp := ToInvoiceResponse(inv, client, c)
	return &resp, nil
}

// Delete removes an invoice; payments linked to it are kept and detached
func (s *InvoiceService) Delete(ctx context.Context, caller identity.Grants, id uuid.UUID) error {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := identity.CheckKind(caller, inv.InvoiceType, invoiceWritePerms); err != nil {
		return err
	}
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Invoice deleted",
		zap.String("invoice_id", id.String()),
		zap.String("invoice_number", inv.InvoiceNumber))
	return nil
}
