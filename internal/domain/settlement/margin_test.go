package settlement

import (
	"testing"

	"github.com/erp/erp-system/internal/domain/contract"
	"github.com/stretchr/testify/assert"
)

func TestComputeProjectMargin(t *testing.T) {
	t.Run("sales and purchases", func(t *testing.T) {
		contracts := []*contract.Contract{
			newTestContract(t, contract.TypeSales, "30000"),
			newTestContract(t, contract.TypeSales, "20000"),
			newTestContract(t, contract.TypePurchase, "10000"),
			newTestContract(t, contract.TypePurchase, "20000"),
		}

		m := ComputeProjectMargin(contracts)

		assert.Equal(t, 2, m.SalesCount)
		assert.Equal(t, 2, m.PurchaseCount)
		assert.True(t, m.SalesAmount.Equal(dec("50000")))
		assert.True(t, m.PurchaseAmount.Equal(dec("30000")))
		assert.True(t, m.GrossProfit.Equal(dec("20000")))
		assert.True(t, m.ProfitRate.Equal(dec("40")), "profit rate = %s", m.ProfitRate)
	})

	t.Run("no sales gives zero rate", func(t *testing.T) {
		m := ComputeProjectMargin([]*contract.Contract{
			newTestContract(t, contract.TypePurchase, "12345.67"),
		})

		assert.True(t, m.ProfitRate.IsZero())
		assert.True(t, m.GrossProfit.Equal(dec("-12345.67")))
	})

	t.Run("no contracts", func(t *testing.T) {
		m := ComputeProjectMargin(nil)

		assert.True(t, m.ProfitRate.IsZero())
		assert.True(t, m.SalesAmount.IsZero())
		assert.True(t, m.PurchaseAmount.IsZero())
		assert.Zero(t, m.SalesCount+m.PurchaseCount)
	})

	t.Run("loss-making project", func(t *testing.T) {
		m := ComputeProjectMargin([]*contract.Contract{
			newTestContract(t, contract.TypeSales, "1000"),
			newTestContract(t, contract.TypePurchase, "1500"),
		})

		assert.True(t, m.ProfitRate.Equal(dec("-50")), "profit rate = %s", m.ProfitRate)
	})

	t.Run("rate is rounded to two places", func(t *testing.T) {
		m := ComputeProjectMargin([]*contract.Contract{
			newTestContract(t, contract.TypeSales, "3"),
			newTestContract(t, contract.TypePurchase, "2"),
		})

		assert.True(t, m.ProfitRate.Equal(dec("33.33")), "profit rate = %s", m.ProfitRate)
	})
}
