package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/service"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

var evalTime = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

// evaluationInput builds an input whose DSCR is cleanly controllable:
// the application carries no interest rate yet, so annual debt service is
// exactly requestedAmount when the term is 12 months.
func evaluationInput(t *testing.T, score int, requested, netIncome, annualRevenue int64) service.EvaluationInput {
	t.Helper()

	app, err := model.NewLoanApplication(
		"biz-001", "prod-001", 1,
		decimal.NewFromInt(requested), "expansion", 12,
		"", decimal.Zero, "owner@example.com", evalTime,
	)
	require.NoError(t, err)

	report, err := model.NewCreditReport("app-001", score, evalTime, 0, 0, 0.3, 48)
	require.NoError(t, err)
	report.ApplicationID = app.ID()

	return service.EvaluationInput{
		Application: app,
		Product: model.LoanProduct{
			ProductID:     "prod-001",
			VersionNumber: 1,
			EligibilityCriteria: model.EligibilityCriteria{
				MinCreditScore: 650,
				Conditions:     []string{"personal guarantee"},
			},
		},
		CreditReport: report,
		Business: model.Business{
			ID:            "biz-001",
			AnnualRevenue: decimal.NewFromInt(annualRevenue),
			FinancialStatements: model.FinancialStatements{
				IncomeStatement: model.IncomeStatement{
					NetIncome: decimal.NewFromInt(netIncome),
				},
			},
		},
	}
}

func TestUnderwritingEngine_PrimeTier(t *testing.T) {
	engine := service.NewUnderwritingEngine()

	// Score 720, DSCR 156000/120000 = 1.30.
	in := evaluationInput(t, 720, 120_000, 156_000, 1_000_000)
	decision := engine.Evaluate(in, evalTime)

	assert.Equal(t, valueobject.DecisionApproved, decision.Decision)
	assert.True(t, decision.ApprovedAmount.Equal(decimal.NewFromInt(120_000)),
		"prime tier approves the full requested amount, got %s", decision.ApprovedAmount)
	assert.Equal(t, 5.8, decision.InterestRate) // 5 + (800-720)/100
	assert.Equal(t, 1.30, decision.DSCR)
	assert.Equal(t, 12, decision.TermMonths)
	assert.Contains(t, decision.ReasonCodes, model.ReasonStrongCashFlow)
	assert.Equal(t, []string{"personal guarantee"}, decision.Conditions)
}

func TestUnderwritingEngine_StandardTier_CapsAtRevenueShare(t *testing.T) {
	engine := service.NewUnderwritingEngine()

	// Score 660, DSCR 1.30, but annual revenue caps the approval:
	// 20% of 500,000 = 100,000 < 120,000 requested.
	in := evaluationInput(t, 660, 120_000, 156_000, 500_000)
	decision := engine.Evaluate(in, evalTime)

	assert.Equal(t, valueobject.DecisionApproved, decision.Decision)
	assert.True(t, decision.ApprovedAmount.Equal(decimal.NewFromInt(100_000)),
		"standard tier caps at 20%% of annual revenue, got %s", decision.ApprovedAmount)
	assert.Equal(t, 8.8, decision.InterestRate) // 7 + (750-660)/50
	assert.Contains(t, decision.ReasonCodes, model.ReasonAdequateCashFlow)
}

func TestUnderwritingEngine_StandardTier_FullAmountWithinCap(t *testing.T) {
	engine := service.NewUnderwritingEngine()

	// 20% of 1,000,000 = 200,000 > 120,000 requested.
	in := evaluationInput(t, 680, 120_000, 156_000, 1_000_000)
	decision := engine.Evaluate(in, evalTime)

	assert.Equal(t, valueobject.DecisionApproved, decision.Decision)
	assert.True(t, decision.ApprovedAmount.Equal(decimal.NewFromInt(120_000)))
}

func TestUnderwritingEngine_DeniesLowCreditScore(t *testing.T) {
	engine := service.NewUnderwritingEngine()

	in := evaluationInput(t, 640, 120_000, 156_000, 1_000_000)
	decision := engine.Evaluate(in, evalTime)

	assert.Equal(t, valueobject.DecisionDenied, decision.Decision)
	assert.Equal(t, []string{model.ReasonLowCreditScore}, decision.ReasonCodes)
	assert.True(t, decision.ApprovedAmount.IsZero())
}

func TestUnderwritingEngine_DeniesInsufficientCashFlow(t *testing.T) {
	engine := service.NewUnderwritingEngine()

	// Score clears the bar but DSCR 126000/120000 = 1.05 < 1.10.
	in := evaluationInput(t, 660, 120_000, 126_000, 1_000_000)
	decision := engine.Evaluate(in, evalTime)

	assert.Equal(t, valueobject.DecisionDenied, decision.Decision)
	assert.Equal(t, []string{model.ReasonInsufficientCashFlow}, decision.ReasonCodes)
	assert.Equal(t, 1.05, decision.DSCR)
}

func TestUnderwritingEngine_PrimeScoreWithWeakCashFlowFallsToStandard(t *testing.T) {
	engine := service.NewUnderwritingEngine()

	// Score 740 but DSCR 1.15: below the prime 1.25 bar, above standard 1.10.
	in := evaluationInput(t, 740, 120_000, 138_000, 1_000_000)
	decision := engine.Evaluate(in, evalTime)

	assert.Equal(t, valueobject.DecisionApproved, decision.Decision)
	assert.Equal(t, 7.2, decision.InterestRate) // 7 + (750-740)/50
}

func TestUnderwritingEngine_IndeterminateDSCRNeedsMoreInfo(t *testing.T) {
	engine := service.NewUnderwritingEngine()

	// A requested amount so small the rounded monthly payment is zero makes
	// the debt service, and therefore the DSCR, indeterminate.
	in := evaluationInput(t, 720, 120_000, 156_000, 1_000_000)
	app, err := model.NewLoanApplication(
		"biz-001", "prod-001", 1,
		decimal.NewFromFloat(0.01), "expansion", 12,
		"", decimal.Zero, "owner@example.com", evalTime,
	)
	require.NoError(t, err)
	in.Application = app

	decision := engine.Evaluate(in, evalTime)

	assert.Equal(t, valueobject.DecisionNeedMoreInfo, decision.Decision)
	assert.Equal(t, []string{model.ReasonIndeterminateRatio}, decision.ReasonCodes)
}
