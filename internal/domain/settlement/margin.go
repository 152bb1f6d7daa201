package settlement

import (
	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Margin is a project's gross margin derived from its contracts
type Margin struct {
	SalesCount     int
	PurchaseCount  int
	SalesAmount    decimal.Decimal
	PurchaseAmount decimal.Decimal
	GrossProfit    decimal.Decimal
	// ProfitRate is GrossProfit / SalesAmount * 100, rounded to two places,
	// and zero when there are no sales.
	ProfitRate decimal.Decimal
}

// ComputeProjectMargin sums a project's contracts by type
func ComputeProjectMargin(contracts []*contract.Contract) Margin {
	m := Margin{
		SalesAmount:    decimal.Zero,
		PurchaseAmount: decimal.Zero,
	}
	for _, c := range contracts {
		switch c.ContractType {
		case contract.TypeSales:
			m.SalesCount++
			m.SalesAmount = m.SalesAmount.Add(c.Amount)
		case contract.TypePurchase:
			m.PurchaseCount++
			m.PurchaseAmount = m.PurchaseAmount.Add(c.Amount)
		}
	}
	m.GrossProfit = m.SalesAmount.Sub(m.PurchaseAmount)
	m.ProfitRate = decimal.Zero
	if m.SalesAmount.IsPositive() {
		m.ProfitRate = m.GrossProfit.Mul(hundred).DivRound(m.SalesAmount, 2)
	}
	return m
}
