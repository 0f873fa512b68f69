package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Financial ratio calculator – pure functions over financial statements
// ---------------------------------------------------------------------------

// MonthlyPayment computes the fixed amortizing monthly payment for a loan.
// annualRatePercent is the rate as a percentage (6 means 6%). A zero rate
// yields an even principal split. The result is rounded to 2 decimal places.
func MonthlyPayment(principal decimal.Decimal, termMonths int, annualRatePercent float64) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}

	monthlyRate := annualRatePercent / 12.0 / 100.0
	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
	}

	// P * r * (1+r)^n / ((1+r)^n - 1)
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2)
}

// AnnualDebtService is the yearly cost of servicing the proposed loan:
// twelve monthly amortizing payments.
func AnnualDebtService(principal decimal.Decimal, termMonths int, annualRatePercent float64) decimal.Decimal {
	return MonthlyPayment(principal, termMonths, annualRatePercent).Mul(decimal.NewFromInt(12))
}

// DebtServiceCoverageRatio computes EBITDA divided by annual debt service,
// rounded to 2 decimal places. EBITDA is taken directly as net income, a
// deliberate simplification carried over from the prior system (no add-back
// of interest, tax, depreciation, or amortization).
//
// A zero debt service returns ErrIndeterminateRatio instead of a non-finite
// value; callers must handle it explicitly.
func DebtServiceCoverageRatio(
	statements model.FinancialStatements,
	principal decimal.Decimal,
	termMonths int,
	annualRatePercent float64,
) (float64, error) {
	debtService := AnnualDebtService(principal, termMonths, annualRatePercent)
	if debtService.IsZero() {
		return 0, valueobject.ErrIndeterminateRatio
	}

	ebitda := statements.IncomeStatement.NetIncome
	return round2(ebitda.Div(debtService)), nil
}

// LeverageRatio is total liabilities over total assets.
func LeverageRatio(statements model.FinancialStatements) (float64, error) {
	bs := statements.BalanceSheet
	if bs.TotalAssets.IsZero() {
		return 0, valueobject.ErrIndeterminateRatio
	}
	return round2(bs.TotalLiabilities.Div(bs.TotalAssets)), nil
}

// CurrentRatio is current assets over current liabilities.
func CurrentRatio(statements model.FinancialStatements) (float64, error) {
	bs := statements.BalanceSheet
	if bs.CurrentLiabilities.IsZero() {
		return 0, valueobject.ErrIndeterminateRatio
	}
	return round2(bs.CurrentAssets.Div(bs.CurrentLiabilities)), nil
}

// ProfitMargin is net income over revenue, as a percentage.
func ProfitMargin(statements model.FinancialStatements) (float64, error) {
	is := statements.IncomeStatement
	if is.Revenue.IsZero() {
		return 0, valueobject.ErrIndeterminateRatio
	}
	return round2(is.NetIncome.Div(is.Revenue).Mul(decimal.NewFromInt(100))), nil
}

// ReturnOnAssets is net income over total assets, as a percentage.
func ReturnOnAssets(statements model.FinancialStatements) (float64, error) {
	if statements.BalanceSheet.TotalAssets.IsZero() {
		return 0, valueobject.ErrIndeterminateRatio
	}
	return round2(statements.IncomeStatement.NetIncome.
		Div(statements.BalanceSheet.TotalAssets).
		Mul(decimal.NewFromInt(100))), nil
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
