package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/service"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

func statementsWith(netIncome decimal.Decimal) model.FinancialStatements {
	return model.FinancialStatements{
		IncomeStatement: model.IncomeStatement{NetIncome: netIncome},
	}
}

func TestMonthlyPayment(t *testing.T) {
	t.Run("amortizing payment at 6 percent", func(t *testing.T) {
		// $100,000 over 60 months at 6%: the textbook payment is $1,933.28.
		payment := service.MonthlyPayment(decimal.NewFromInt(100_000), 60, 6.0)
		assert.True(t, payment.Equal(decimal.NewFromFloat(1933.28)),
			"expected 1933.28, got %s", payment)
	})

	t.Run("zero rate splits principal evenly", func(t *testing.T) {
		payment := service.MonthlyPayment(decimal.NewFromInt(120_000), 12, 0)
		assert.True(t, payment.Equal(decimal.NewFromInt(10_000)))
	})

	t.Run("zero term yields zero", func(t *testing.T) {
		payment := service.MonthlyPayment(decimal.NewFromInt(100_000), 0, 6.0)
		assert.True(t, payment.IsZero())
	})
}

func TestAnnualDebtService(t *testing.T) {
	// Twelve rounded monthly payments: 1933.28 * 12 = 23199.36.
	annual := service.AnnualDebtService(decimal.NewFromInt(100_000), 60, 6.0)
	assert.True(t, annual.Equal(decimal.NewFromFloat(23199.36)),
		"expected 23199.36, got %s", annual)
}

func TestDebtServiceCoverageRatio(t *testing.T) {
	t.Run("net income 25000 against 100000 over 60 months at 6 percent", func(t *testing.T) {
		// 25000 / 23199.36 = 1.0776 -> 1.08
		dscr, err := service.DebtServiceCoverageRatio(
			statementsWith(decimal.NewFromInt(25_000)),
			decimal.NewFromInt(100_000), 60, 6.0,
		)
		require.NoError(t, err)
		assert.Equal(t, 1.08, dscr)
	})

	t.Run("clean division with zero rate", func(t *testing.T) {
		// 156000 / (120000/12 * 12) = 1.30
		dscr, err := service.DebtServiceCoverageRatio(
			statementsWith(decimal.NewFromInt(156_000)),
			decimal.NewFromInt(120_000), 12, 0,
		)
		require.NoError(t, err)
		assert.Equal(t, 1.30, dscr)
	})

	t.Run("zero debt service is indeterminate", func(t *testing.T) {
		_, err := service.DebtServiceCoverageRatio(
			statementsWith(decimal.NewFromInt(25_000)),
			decimal.NewFromInt(100_000), 0, 6.0,
		)
		assert.ErrorIs(t, err, valueobject.ErrIndeterminateRatio)
	})
}

func TestBalanceSheetRatios(t *testing.T) {
	statements := model.FinancialStatements{
		BalanceSheet: model.BalanceSheet{
			TotalAssets:        decimal.NewFromInt(100_000),
			TotalLiabilities:   decimal.NewFromInt(60_000),
			CurrentAssets:      decimal.NewFromInt(50_000),
			CurrentLiabilities: decimal.NewFromInt(25_000),
		},
		IncomeStatement: model.IncomeStatement{
			Revenue:   decimal.NewFromInt(200_000),
			NetIncome: decimal.NewFromInt(20_000),
		},
	}

	leverage, err := service.LeverageRatio(statements)
	require.NoError(t, err)
	assert.Equal(t, 0.6, leverage)

	current, err := service.CurrentRatio(statements)
	require.NoError(t, err)
	assert.Equal(t, 2.0, current)

	margin, err := service.ProfitMargin(statements)
	require.NoError(t, err)
	assert.Equal(t, 10.0, margin)

	roa, err := service.ReturnOnAssets(statements)
	require.NoError(t, err)
	assert.Equal(t, 20.0, roa)
}

func TestRatios_ZeroDenominators(t *testing.T) {
	var empty model.FinancialStatements

	_, err := service.LeverageRatio(empty)
	assert.ErrorIs(t, err, valueobject.ErrIndeterminateRatio)

	_, err = service.CurrentRatio(empty)
	assert.ErrorIs(t, err, valueobject.ErrIndeterminateRatio)

	_, err = service.ProfitMargin(empty)
	assert.ErrorIs(t, err, valueobject.ErrIndeterminateRatio)

	_, err = service.ReturnOnAssets(empty)
	assert.ErrorIs(t, err, valueobject.ErrIndeterminateRatio)
}
