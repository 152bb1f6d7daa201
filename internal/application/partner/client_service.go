package partner

import (
	"context"

	"github.com/erp/erp-system/internal/domain/identity"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientService handles client-related business operations.
// Customers and suppliers are guarded by separate permissions.
type ClientService struct {
	clientRepo partner.ClientRepository
	logger     *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, logger *zap.Logger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func readPerms(t partner.ClientType) []string  { return t.ReadPermissions() }
func writePerms(t partner.ClientType) []string { return t.WritePermissions() }

// List returns the clients of the types the caller may see, newest first
func (s *ClientService) List(ctx context.Context, caller identity.Grants, filter ClientListFilter) ([]ClientResponse, error) {
	requested := partner.ClientType(filter.ClientType)
	if requested != "" && !requested.IsValid() {
		return nil, shared.NewDomainError("INVALID_CLIENT_TYPE", "客户类型无效")
	}
	types, err := identity.NarrowKinds(caller, partner.AllClientTypes, requested, readPerms)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.FindAll(ctx, partner.ClientFilter{Search: filter.Search, Types: types})
	if err != nil {
		return nil, err
	}
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToClientResponse(c))
	}
	return out, nil
}

// Get returns a client by ID
func (s *ClientService) Get(ctx context.Context, caller identity.Grants, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, client.ClientType, readPerms); err != nil {
		return nil, err
	}
	resp := ToClientResponse(client)
	return &resp, nil
}

// Create creates a new client; the type defaults to CUSTOMER
func (s *ClientService) Create(ctx context.Context, caller identity.Grants, req ClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.details(), partner.ClientType(req.ClientType))
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, client.ClientType, writePerms); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		s.logger.Error("Failed to create client", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Client created",
		zap.String("client_id", client.ID.String()),
		zap.String("client_type", string(client.ClientType)))
	resp := ToClientResponse(client)
	return &resp, nil
}

// Update replaces a client's fields. Moving a client to another type needs
// write access to both types.
func (s *ClientService) Update(ctx context.Context, caller identity.Grants, id uuid.UUID, req ClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckKind(caller, client.ClientType, writePerms); err != nil {
		return nil, err
	}

	newType := partner.ClientType(req.ClientType)
	if newType == "" {
		newType = client.ClientType
	}
	if newType.IsValid() && newType != client.ClientType {
		if err := identity.CheckKind(caller, newType, writePerms); err != nil {
			return nil, err
		}
	}

	if err := client.Update(req.details(), newType); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	resp := ToClientResponse(client)
	return &resp, nil
}

// Delete removes a client that nothing references
func (s *ClientService) Delete(ctx context.Context, caller identity.Grants, id uuid.UUID) error {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := identity.CheckKind(caller, client.ClientType, writePerms); err != nil {
		return err
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Client deleted", zap.String("client_id", id.String()))
	return nil
}
