package finance

import (
	"context"
	"errors"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Relation errors
var (
	ErrClientNotFound   = shared.NewDomainError("CLIENT_NOT_FOUND", "客户不存在")
	ErrContractNotFound = shared.NewDomainError("CONTRACT_NOT_FOUND", "合同不存在")
	ErrInvoiceNotFound  = shared.NewDomainError("INVOICE_NOT_FOUND", "发票不存在")
)

// pendingNumber stands in for a document number until one is allocated
const pendingNumber = "PENDING"

// counterparts loads the client and contract a document refers to
type counterparts struct {
	clientRepo   partner.ClientRepository
	contractRepo contract.Repository
	logger       *zap.Logger
}

// resolve loads the client and, when set, the contract for a write.
// Missing records become relation errors.
func (r counterparts) resolve(ctx context.Context, clientID uuid.UUID, contractID *uuid.UUID) (*partner.Client, *contract.Contract, error) {
	client, err := r.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, ErrClientNotFound
		}
		return nil, nil, err
	}
	if contractID == nil {
		return client, nil, nil
	}
	c, err := r.contractRepo.FindByID(ctx, *contractID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, ErrContractNotFound
		}
		return nil, nil, err
	}
	return client, c, nil
}

// lookup loads the client and contract for display. Failures are logged and
// leave the result nil.
func (r counterparts) lookup(ctx context.Context, clientID uuid.UUID, contractID *uuid.UUID) (*partner.Client, *contract.Contract) {
	client, err := r.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		r.logger.Warn("Failed to load client", zap.String("client_id", clientID.String()), zap.Error(err))
		client = nil
	}
	var c *contract.Contract
	if contractID != nil {
		if c, err = r.contractRepo.FindByID(ctx, *contractID); err != nil {
			r.logger.Warn("Failed to load contract", zap.String("contract_id", contractID.String()), zap.Error(err))
			c = nil
		}
	}
	return client, c
}

// lookupMany batch-loads clients and contracts for a listing
func (r counterparts) lookupMany(ctx context.Context, clientIDs, contractIDs []uuid.UUID) (map[uuid.UUID]*partner.Client, map[uuid.UUID]*contract.Contract) {
	clients, err := r.clientRepo.FindByIDs(ctx, clientIDs)
	if err != nil {
		r.logger.Warn("Failed to load clients", zap.Error(err))
	}
	var contracts map[uuid.UUID]*contract.Contract
	if len(contractIDs) > 0 {
		if contracts, err = r.contractRepo.FindByIDs(ctx, contractIDs); err != nil {
			r.logger.Warn("Failed to load contracts", zap.Error(err))
		}
	}
	return clients, contracts
}

func contractOf(contracts map[uuid.UUID]*contract.Contract, id *uuid.UUID) *contract.Contract {
	if id == nil {
		return nil
	}
	return contracts[*id]
}
