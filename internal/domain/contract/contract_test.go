package contract

import (
	"strings"
	"testing"
	"time"

	"github.com/erp/erp-system/internal/domain/partner"
	"github.com/erp/erp-system/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() Details {
	return Details{
		ContractNumber: "HT-2024-001",
		Title:          "数控机床销售合同",
		ContractType:   TypeSales,
		Amount:         decimal.NewFromInt(10000),
		ClientID:       uuid.New(),
	}
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNewContract(t *testing.T) {
	t.Run("defaults to a signed purchase contract", func(t *testing.T) {
		d := validDetails()
		d.ContractType = ""
		d.ContractNumber = "  CG-01  "
		d.Title = " 钢材采购 "

		c, err := NewContract(d)

		require.NoError(t, err)
		assert.Equal(t, TypePurchase, c.ContractType)
		assert.Equal(t, StatusSigned, c.Status)
		assert.Equal(t, "CG-01", c.ContractNumber)
		assert.Equal(t, "钢材采购", c.Title)
		assert.NotEqual(t, uuid.Nil, c.ID)
	})

	t.Run("nil project id is normalized", func(t *testing.T) {
		d := validDetails()
		empty := uuid.Nil
		d.ProjectID = &empty

		c, err := NewContract(d)

		require.NoError(t, err)
		assert.Nil(t, c.ProjectID)
	})

	tests := []struct {
		name   string
		modify func(*Details)
		code   string
	}{
		{"empty number", func(d *Details) { d.ContractNumber = "   " }, "INVALID_CONTRACT_NUMBER"},
		{"number too long", func(d *Details) { d.ContractNumber = strings.Repeat("H", 51) }, "INVALID_CONTRACT_NUMBER"},
		{"empty title", func(d *Details) { d.Title = "" }, "INVALID_CONTRACT_TITLE"},
		{"title too long", func(d *Details) { d.Title = strings.Repeat("合", 201) }, "INVALID_CONTRACT_TITLE"},
		{"unknown type", func(d *Details) { d.ContractType = "LEASE" }, "INVALID_CONTRACT_TYPE"},
		{"unknown status", func(d *Details) { d.Status = "ACTIVE" }, "INVALID_CONTRACT_STATUS"},
		{"zero amount", func(d *Details) { d.Amount = decimal.Zero }, "INVALID_AMOUNT"},
		{"negative amount", func(d *Details) { d.Amount = decimal.NewFromInt(-1) }, "INVALID_AMOUNT"},
		{"missing client", func(d *Details) { d.ClientID = uuid.Nil }, "INVALID_CLIENT"},
		{"end before start", func(d *Details) {
			d.StartDate = day(2024, 6, 1)
			d.EndDate = day(2024, 5, 31)
		}, "INVALID_DATE_RANGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDetails()
			tt.modify(&d)

			_, err := NewContract(d)

			assert.Equal(t, tt.code, shared.CodeOf(err))
		})
	}

	t.Run("title limit counts characters", func(t *testing.T) {
		d := validDetails()
		d.Title = strings.Repeat("合", 200)

		_, err := NewContract(d)

		assert.NoError(t, err)
	})

	t.Run("same start and end day", func(t *testing.T) {
		d := validDetails()
		d.StartDate = day(2024, 6, 1)
		d.EndDate = day(2024, 6, 1)

		_, err := NewContract(d)

		assert.NoError(t, err)
	})
}

func TestContract_Update(t *testing.T) {
	c, err := NewContract(validDetails())
	require.NoError(t, err)

	t.Run("empty type and status keep the current values", func(t *testing.T) {
		d := validDetails()
		d.ContractType = ""
		d.Status = ""
		d.Amount = decimal.NewFromInt(12000)

		require.NoError(t, c.Update(d))
		assert.Equal(t, TypeSales, c.ContractType)
		assert.Equal(t, StatusSigned, c.Status)
		assert.True(t, c.Amount.Equal(decimal.NewFromInt(12000)))
	})

	t.Run("a rejected update changes nothing", func(t *testing.T) {
		d := validDetails()
		d.Amount = decimal.Zero

		assert.Equal(t, "INVALID_AMOUNT", shared.CodeOf(c.Update(d)))
		assert.True(t, c.Amount.Equal(decimal.NewFromInt(12000)))
	})
}

func TestContract_CheckCounterparty(t *testing.T) {
	customer, err := partner.NewClient(partner.ClientDetails{Name: "华东机电"}, partner.ClientTypeCustomer)
	require.NoError(t, err)
	supplier, err := partner.NewClient(partner.ClientDetails{Name: "江南钢材"}, partner.ClientTypeSupplier)
	require.NoError(t, err)

	sales, err := NewContract(validDetails())
	require.NoError(t, err)
	d := validDetails()
	d.ContractType = TypePurchase
	purchase, err := NewContract(d)
	require.NoError(t, err)

	assert.NoError(t, sales.CheckCounterparty(customer))
	assert.ErrorIs(t, sales.CheckCounterparty(supplier), ErrCounterpartyMismatch)
	assert.NoError(t, purchase.CheckCounterparty(supplier))
	assert.ErrorIs(t, purchase.CheckCounterparty(customer), ErrCounterpartyMismatch)
}

func TestType_Permissions(t *testing.T) {
	assert.Equal(t, []string{"contracts.sales"}, TypeSales.WritePermissions())
	assert.Contains(t, TypeSales.ReadPermissions(), "invoices.issued")
	assert.Contains(t, TypePurchase.ReadPermissions(), "payments.expenses")
	assert.NotContains(t, TypePurchase.ReadPermissions(), "contracts.sales")
	assert.Equal(t, partner.ClientTypeSupplier, TypePurchase.CounterpartyType())
}
