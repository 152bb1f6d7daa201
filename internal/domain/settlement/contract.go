package settlement

import (
	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/erp/erp-system/internal/domain/finance"
	"github.com/google/uuid"
)

// Basis is what a contract is being settled by
type Basis string

const (
	BasisInvoice Basis = "invoice"
	BasisPayment Basis = "payment"
)

// ContractSettlement is a contract's position on both bases
type ContractSettlement struct {
	ContractID uuid.UUID
	Invoicing  Balance
	Payment    Balance
}

// Along returns the balance on the given basis
func (s ContractSettlement) Along(basis Basis) Balance {
	if basis == BasisPayment {
		return s.Payment
	}
	return s.Invoicing
}

// ForContract computes both balances of c. Records not linked to c are ignored.
func ForContract(c *contract.Contract, invoices []*finance.Invoice, payments []*finance.Payment, policy Policy) ContractSettlement {
	return ContractSettlement{
		ContractID: c.ID,
		Invoicing:  ComputeBalance(c.Amount, linkedInvoices(c.ID, invoices), policy),
		Payment:    ComputeBalance(c.Amount, linkedPayments(c.ID, payments), policy),
	}
}

// ForContracts computes settlements for many contracts from one batch of
// invoices and payments, keyed by contract ID.
func ForContracts(contracts []*contract.Contract, invoices []*finance.Invoice, payments []*finance.Payment, policy Policy) map[uuid.UUID]ContractSettlement {
	invByContract := make(map[uuid.UUID][]*finance.Invoice)
	for _, inv := range invoices {
		if inv.ContractID != nil {
			invByContract[*inv.ContractID] = append(invByContract[*inv.ContractID], inv)
		}
	}
	payByContract := make(map[uuid.UUID][]*finance.Payment)
	for _, p := range payments {
		if p.ContractID != nil {
			payByContract[*p.ContractID] = append(payByContract[*p.ContractID], p)
		}
	}

	out := make(map[uuid.UUID]ContractSettlement, len(contracts))
	for _, c := range contracts {
		out[c.ID] = ContractSettlement{
			ContractID: c.ID,
			Invoicing:  ComputeBalance(c.Amount, invByContract[c.ID], policy),
			Payment:    ComputeBalance(c.Amount, payByContract[c.ID], policy),
		}
	}
	return out
}

func linkedInvoices(id uuid.UUID, invoices []*finance.Invoice) []*finance.Invoice {
	out := make([]*finance.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.ContractID != nil && *inv.ContractID == id {
			out = append(out, inv)
		}
	}
	return out
}

func linkedPayments(id uuid.UUID, payments []*finance.Payment) []*finance.Payment {
	out := make([]*finance.Payment, 0, len(payments))
	for _, p := range payments {
		if p.ContractID != nil && *p.ContractID == id {
			out = append(out, p)
		}
	}
	return out
}
