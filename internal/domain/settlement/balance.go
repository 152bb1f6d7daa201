// Package settlement computes, on read, how far a contract has been invoiced
// and paid, and the gross margin of a project. Nothing here is persisted and
// every function is pure.
package settlement

import (
	"github.com/shopspring/decimal"
)

// Settleable is a record that counts toward a contract's settled total
type Settleable interface {
	// SettlementAmount is the amount the record contributes
	SettlementAmount() decimal.Decimal
	// IsFinalized reports whether the record is issued/paid rather than draft
	IsFinalized() bool
}

// Policy selects which records are summed
type Policy string

const (
	// FinalizedOnly sums issued invoices and paid payments
	FinalizedOnly Policy = "finalized"
	// AllRecords sums every linked record regardless of status
	AllRecords Policy = "all"
)

// IsValid checks if the policy is known
func (p Policy) IsValid() bool {
	return p == FinalizedOnly || p == AllRecords
}

// Includes reports whether r is summed under the policy
func (p Policy) Includes(r Settleable) bool {
	if p == AllRecords {
		return true
	}
	return r.IsFinalized()
}

// Balance is a contract's settlement position along one basis
type Balance struct {
	ContractAmount decimal.Decimal
	// Settled is the sum of included records
	Settled decimal.Decimal
	// Remaining is ContractAmount - Settled. It is never clamped and goes
	// negative when the contract is over-settled.
	Remaining   decimal.Decimal
	IsCompleted bool
	// Counted and Excluded are the numbers of records summed and skipped
	Counted  int
	Excluded int
	Policy   Policy
}

// ComputeBalance sums the records included by policy against contractAmount.
// With no records the whole amount remains and the contract is not completed.
func ComputeBalance[T Settleable](contractAmount decimal.Decimal, records []T, policy Policy) Balance {
	if !policy.IsValid() {
		policy = FinalizedOnly
	}
	b := Balance{
		ContractAmount: contractAmount,
		Settled:        decimal.Zero,
		Policy:         policy,
	}
	for _, r := range records {
		if !policy.Includes(r) {
			b.Excluded++
			continue
		}
		b.Settled = b.Settled.Add(r.SettlementAmount())
		b.Counted++
	}
	b.Remaining = contractAmount.Sub(b.Settled)
	b.IsCompleted = !b.Remaining.IsPositive()
	return b
}
