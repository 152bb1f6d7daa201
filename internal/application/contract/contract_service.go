package contract

import (
	"context"
	"errors"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/project"
	"github.com/erp/erp-system/internal/domain/settlement"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrClientNotFound  = shared.NewDomainError("CLIENT_NOT_FOUND", "客户不存在")
	ErrProjectNotFound = shared.NewDomainError("PROJECT_NOT_FOUND", "项目不存在")
)

// ContractService handles contracts and their settlement views
type ContractService struct {
	contractRepo contract.Repository
	clientRepo   partner.ClientRepository
	projectRepo  project.Repository
	invoiceRepo  finance.InvoiceRepository
	paymentRepo  finance.PaymentRepository
	logger       *zap.Logger
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo contract.Repository,
	clientRepo partner.ClientRepository,
	projectRepo project.Repository,
	invoiceRepo finance.InvoiceRepository,
	paymentRepo finance.PaymentRepository,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		logger:       logger,
	}
}

func readPerms(t contract.Type) []string  { return t.ReadPermissions() }
func writePerms(t contract.Type) []string { return t.WritePermissions() }

// List returns the contracts the caller may see, newest first.
//
// ForInvoices and ForPayments count every linked record, drafts included,
// and drop contracts with nothing left to invoice or pay. WithSettlement
// attaches balances counting finalized records only.
func (s *ContractService) List(ctx context.Context, caller identity.Grants, filter ContractListFilter) ([]ContractResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "contract", "list")
	defer span.End()

	requested := contract.Type(filter.ContractType)
	if requested != "" && !requested.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTRACT_TYPE", "合同类型无效")
	}
	status := contract.Status(filter.Status)
	if status != "" && !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTRACT_STATUS", "合同状态无效")
	}
	if err := filter.StartDate.Validate(); err != nil {
		return nil, err
	}
	types, err := identity.NarrowKinds(caller, contract.AllTypes, requested, readPerms)
	if err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.FindAll(ctx, contract.Filter{
		Search:    filter.Search,
		Status:    status,
		ClientID:  filter.ClientID,
		ProjectID: filter.ProjectID,
		Types:     types,
		StartDate: filter.StartDate,
	})
	if err != nil {
		return nil, err
	}

	clients, projects := s.loadRelations(ctx, contracts)
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		var proj *project.Project
		if c.ProjectID != nil {
			proj = projects[*c.ProjectID]
		}
		out = append(out, ToContractResponse(c, clients[c.ClientID], proj))
	}

	switch {
	case filter.ForInvoices || filter.ForPayments:
		return s.openForSettlement(ctx, contracts, out, filter.ForInvoices, filter.ForPayments), nil
	case filter.WithSettlement:
		s.attachSettlement(ctx, contracts, out, settlement.FinalizedOnly, true, true)
	}
	return out, nil
}

// openForSettlement attaches the requested balances over all records and
// drops contracts already completed along any requested basis. When the
// balances cannot be computed the contracts are returned unfiltered.
func (s *ContractService) openForSettlement(ctx context.Context, contracts []*contract.Contract, out []ContractResponse, invoicing, payment bool) []ContractResponse {
	if !s.attachSettlement(ctx, contracts, out, settlement.AllRecords, invoicing, payment) {
		return out
	}
	open := out[:0]
	for _, resp := range out {
		if resp.Invoicing != nil && resp.Invoicing.IsCompleted {
			continue
		}
		if resp.Payment != nil && resp.Payment.IsCompleted {
			continue
		}
		open = append(open, resp)
	}
	return open
}

// attachSettlement fills the balances of out in place. It reports false,
// leaving the balances nil, when the linked records could not be loaded.
func (s *ContractService) attachSettlement(ctx context.Context, contracts []*contract.Contract, out []ContractResponse, policy settlement.Policy, invoicing, payment bool) bool {
	if len(contracts) == 0 {
		return true
	}
	ids := make([]uuid.UUID, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.ID)
	}

	var (
		invoices []*finance.Invoice
		payments []*finance.Payment
		err      error
	)
	if invoicing {
		if invoices, err = s.invoiceRepo.FindByContracts(ctx, ids); err != nil {
			s.logger.Warn("Failed to load invoices for settlement", zap.Error(err))
			return false
		}
	}
	if payment {
		if payments, err = s.paymentRepo.FindByContracts(ctx, ids); err != nil {
			s.logger.Warn("Failed to load payments for settlement", zap.Error(err))
			return false
		}
	}

	balances := settlement.ForContracts(contracts, invoices, payments, policy)
	for i := range out {
		b := balances[out[i].ID]
		if invoicing {
			out[i].Invoicing = &b.Invoicing
		}
		if payment {
			out[i].Payment = &b.Payment
		}
	}
	return true
}

func (s *ContractService) loadRelations(ctx context.Context, contracts []*contract.Contract) (map[uuid.UUID]*partner.Client, map[uuid.UUID]*project.Project) {
	clientIDs := make([]uuid.UUID, 0, len(contracts))
	projectIDs := make([]uuid.UUID, 0, len(contracts))
	for _, c := range contracts {
		clientIDs = append(clientIDs, c.ClientID)
		if c.ProjectID != nil {
			projectIDs = append(projectIDs, *c.ProjectID)
		}
	}

	clients, err := s.clientRepo.FindByIDs(ctx, clientIDs)
	if err != nil {
		s.logger.Warn("Failed to load contract clients", zap.Error(err))
	}
	var projects map[uuid.UUID]*project.Project
	if len(projectIDs) > 0 {
		if projects, err = s.projectRepo.FindByIDs(ctx, projectIDs); err != nil {
			s.logger.Warn("Failed to load contract projects", zap.Error(err))
		}
	}
	return clients, projects
}

// Get returns a contract with its client, project, invoices, payments and
// finalized balances. Related records that fail to load are left out.
func (s *ContractService) Get(ctx context.Context, caller identity.Grants, id uuid.UUID) (*ContractDetail, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "contract", "get", telemetry.SpanAttrContractID, id.String())
	defer span.End()

	c, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, c.ContractType, readPerms); err != nil {
		return nil, err
	}

	detail := &ContractDetail{}
	var (
		client *partner.Client
		proj   *project.Project
	)
	if client, err = s.clientRepo.FindByID(ctx, c.ClientID); err != nil {
		s.logger.Warn("Failed to load contract client", zap.String("contract_id", id.String()), zap.Error(err))
		client = nil
	} else {
		detail.Client = toClientRef(client)
	}
	if c.ProjectID != nil {
		if proj, err = s.projectRepo.FindByID(ctx, *c.ProjectID); err != nil {
			s.logger.Warn("Failed to load contract project", zap.String("contract_id", id.String()), zap.Error(err))
			proj = nil
		} else {
			detail.Project = toProjectRef(proj)
		}
	}
	detail.ContractResponse = ToContractResponse(c, client, proj)

	ids := []uuid.UUID{c.ID}
	invoices, err := s.invoiceRepo.FindByContracts(ctx, ids)
	if err != nil {
		s.logger.Warn("Failed to load contract invoices", zap.String("contract_id", id.String()), zap.Error(err))
		telemetry.RecordError(span, err)
	} else {
		detail.Invoices = make([]InvoiceRef, 0, len(invoices))
		for _, inv := range invoices {
			detail.Invoices = append(detail.Invoices, toInvoiceRef(inv))
		}
		b := settlement.ComputeBalance(c.Amount, invoices, settlement.FinalizedOnly)
		detail.Invoicing = &b
	}

	payments, err := s.paymentRepo.FindByContracts(ctx, ids)
	if err != nil {
		s.logger.Warn("Failed to load contract payments", zap.String("contract_id", id.String()), zap.Error(err))
		telemetry.RecordError(span, err)
	} else {
		detail.Payments = make([]PaymentRef, 0, len(payments))
		for _, p := range payments {
			detail.Payments = append(detail.Payments, toPaymentRef(p))
		}
		b := settlement.ComputeBalance(c.Amount, payments, settlement.FinalizedOnly)
		detail.Payment = &b
	}
	return detail, nil
}

// Create creates a contract after checking its client and project
func (s *ContractService) Create(ctx context.Context, caller identity.Grants, req ContractRequest) (*ContractResponse, error) {
	c, err := contract.NewContract(req.details())
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, c.ContractType, writePerms); err != nil {
		return nil, err
	}

	client, proj, err := s.checkRelations(ctx, c)
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.Create(ctx, c); err != nil {
		if !errors.Is(err, contract.ErrDuplicateNumber) {
			s.logger.Error("Failed to create contract", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Contract created",
		zap.String("contract_id", c.ID.String()),
		zap.String("contract_number", c.ContractNumber),
		zap.String("contract_type", string(c.ContractType)))
	resp := ToContractResponse(c, client, proj)
	return &resp, nil
}

// Update replaces a contract's fields. Empty type and status keep the
// current values.
func (s *ContractService) Update(ctx context.Context, caller identity.Grants, id uuid.UUID, req ContractRequest) (*ContractResponse, error) {
	c, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, c.ContractType, writePerms); err != nil {
		return nil, err
	}
	if err := c.Update(req.details()); err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, c.ContractType, writePerms); err != nil {
		return nil, err
	}

	client, proj, err := s.checkRelations(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := s.contractRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	resp := ToContractResponse(c, client, proj)
	return &resp, nil
}

// Delete removes a contract; its invoices and payments are kept and detached
func (s *ContractService) Delete(ctx context.Context, caller identity.Grants, id uuid.UUID) error {
	c, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := identity.CheckKind(caller, c.ContractType, writePerms); err != nil {
		return err
	}
	if err := s.contractRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Contract deleted", zap.String("contract_id", id.String()))
	return nil
}

func (s *ContractService) checkRelations(ctx context.Context, c *contract.Contract) (*partner.Client, *project.Project, error) {
	client, err := s.clientRepo.FindByID(ctx, c.ClientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, ErrClientNotFound
		}
		return nil, nil, err
	}
	if err := c.CheckCounterparty(client); err != nil {
		return nil, nil, err
	}

	var proj *project.Project
	if c.ProjectID != nil {
		if proj, err = s.projectRepo.FindByID(ctx, *c.ProjectID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, nil, ErrProjectNotFound
			}
			return nil, nil, err
		}
	}
	return client, proj, nil
}
