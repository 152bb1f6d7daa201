package project

import (
	"context"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/project"
	"github.com/erp/erp-system/internal/domain/settlement"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/erp/erp-system/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProjectService handles project operations and the project margin view
type ProjectService struct {
	projectRepo  project.Repository
	contractRepo contract.Repository
	clientRepo   partner.ClientRepository
	logger       *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo project.Repository,
	contractRepo contract.Repository,
	clientRepo partner.ClientRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		logger:       logger,
	}
}

// List returns projects with their contract counts, newest first
func (s *ProjectService) List(ctx context.Context, filter ProjectListFilter) ([]ProjectResponse, error) {
	status := project.Status(filter.Status)
	if status != "" && !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_PROJECT_STATUS", "项目状态无效")
	}

	projects, err := s.projectRepo.FindAll(ctx, project.Filter{Search: filter.Search, Status: status})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	counts, err := s.contractRepo.CountByProjects(ctx, ids)
	if err != nil {
		s.logger.Warn("Failed to count project contracts", zap.Error(err))
		counts = nil
	}

	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp := ToProjectResponse(p)
		resp.ContractCount = counts[p.ID]
		out = append(out, resp)
	}
	return out, nil
}

// Get returns a project with its contracts and margin. A failure to load
// the contracts degrades the detail instead of failing it.
func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*ProjectDetail, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "project", "get", telemetry.SpanAttrProjectID, id.String())
	defer span.End()

	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &ProjectDetail{ProjectResponse: ToProjectResponse(p)}

	contracts, err := s.contractRepo.FindByProject(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to load project contracts",
			zap.String("project_id", id.String()),
			zap.Error(err))
		telemetry.RecordError(span, err)
		return detail, nil
	}
	detail.ContractCount = int64(len(contracts))

	clientIDs := make([]uuid.UUID, 0, len(contracts))
	for _, c := range contracts {
		clientIDs = append(clientIDs, c.ClientID)
	}
	clients, err := s.clientRepo.FindByIDs(ctx, clientIDs)
	if err != nil {
		s.logger.Warn("Failed to load contract clients",
			zap.String("project_id", id.String()),
			zap.Error(err))
		clients = nil
	}

	detail.Contracts = make([]ProjectContract, 0, len(contracts))
	for _, c := range contracts {
		detail.Contracts = append(detail.Contracts, toProjectContract(c, clients[c.ClientID]))
	}
	margin := settlement.ComputeProjectMargin(contracts)
	detail.Margin = &margin
	return detail, nil
}

// Create creates a new project; the status defaults to PLANNING
func (s *ProjectService) Create(ctx context.Context, req ProjectRequest) (*ProjectResponse, error) {
	p, err := project.NewProject(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create project", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Project created", zap.String("project_id", p.ID.String()))
	resp := ToProjectResponse(p)
	return &resp, nil
}

// Update replaces a project's fields. An empty status keeps the current one.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req ProjectRequest) (*ProjectResponse, error) {
	p, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := ToProjectResponse(p)
	return &resp, nil
}

// Delete removes a project; its contracts are kept and detached
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Project deleted", zap.String("project_id", id.String()))
	return nil
}
