package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// UnderwritingEngine – tiered credit-score + DSCR decisioning
// ---------------------------------------------------------------------------

// Decision thresholds.
const (
	primeCreditScore    = 700
	primeMinDSCR        = 1.25
	standardCreditScore = 650
	standardMinDSCR     = 1.10
)

// revenueCapFraction caps standard-tier approvals at this share of the
// business's annual revenue.
var revenueCapFraction = decimal.NewFromFloat(0.20)

// EvaluationInput carries everything the engine reads for one evaluation.
type EvaluationInput struct {
	Application  model.LoanApplication
	Product      model.LoanProduct
	CreditReport model.CreditReport
	Business     model.Business
}

// UnderwritingEngine encapsulates rule-based credit decisioning.
type UnderwritingEngine struct{}

// NewUnderwritingEngine returns a new engine instance.
func NewUnderwritingEngine() *UnderwritingEngine {
	return &UnderwritingEngine{}
}

// Evaluate applies the tiered policy:
//
//	score >= 700 and DSCR >= 1.25 -> approved at the full requested amount,
//	    rate = 5 + (800 - score)/100
//	score >= 650 and DSCR >= 1.10 -> approved at min(requested, 20% of
//	    annual revenue), rate = 7 + (750 - score)/50
//	otherwise                      -> denied; LOW_CREDIT_SCORE below 650,
//	    INSUFFICIENT_CASH_FLOW above
//
// Rates carry no floor or ceiling; extreme scores produce extreme rates.
// DSCR is computed from the business's financial statements and the
// application's proposed terms; when it cannot be determined (zero debt
// service) the result is NEED_MORE_INFO rather than a denial.
func (e *UnderwritingEngine) Evaluate(in EvaluationInput, now time.Time) model.UnderwritingDecision {
	app := in.Application
	score := in.CreditReport.CreditScore

	dscr, err := DebtServiceCoverageRatio(
		in.Business.FinancialStatements,
		app.RequestedAmount(),
		app.TermMonths(),
		app.InterestRate(),
	)
	if err != nil {
		return model.UnderwritingDecision{
			ApplicationID: app.ID(),
			Decision:      valueobject.DecisionNeedMoreInfo,
			DecisionDate:  now,
			TermMonths:    app.TermMonths(),
			ReasonCodes:   []string{model.ReasonIndeterminateRatio},
			UnderwriterNotes: "Debt service coverage could not be determined from the " +
				"submitted financials; additional documentation required.",
		}
	}

	switch {
	case score >= primeCreditScore && dscr >= primeMinDSCR:
		rate := 5 + float64(800-score)/100
		return approval(app, app.RequestedAmount(), rate, dscr,
			[]string{model.ReasonMeetsCreditBar, model.ReasonStrongCashFlow},
			in.Product.EligibilityCriteria.Conditions, now)

	case score >= standardCreditScore && dscr >= standardMinDSCR:
		rate := 7 + float64(750-score)/50
		cap := in.Business.AnnualRevenue.Mul(revenueCapFraction)
		amount := decimal.Min(app.RequestedAmount(), cap)
		return approval(app, amount, rate, dscr,
			[]string{model.ReasonMeetsCreditBar, model.ReasonAdequateCashFlow},
			in.Product.EligibilityCriteria.Conditions, now)

	default:
		reason := model.ReasonInsufficientCashFlow
		if score < standardCreditScore {
			reason = model.ReasonLowCreditScore
		}
		return model.UnderwritingDecision{
			ApplicationID: app.ID(),
			Decision:      valueobject.DecisionDenied,
			DecisionDate:  now,
			TermMonths:    app.TermMonths(),
			DSCR:          dscr,
			ReasonCodes:   []string{reason},
			UnderwriterNotes: fmt.Sprintf(
				"Denied: credit score %d, DSCR %.2f below policy thresholds.", score, dscr),
		}
	}
}

func approval(
	app model.LoanApplication,
	amount decimal.Decimal,
	rate, dscr float64,
	reasonCodes, conditions []string,
	now time.Time,
) model.UnderwritingDecision {
	return model.UnderwritingDecision{
		ApplicationID:  app.ID(),
		Decision:       valueobject.DecisionApproved,
		DecisionDate:   now,
		ApprovedAmount: amount,
		InterestRate:   rate,
		TermMonths:     app.TermMonths(),
		DSCR:           dscr,
		Conditions:     conditions,
		ReasonCodes:    reasonCodes,
		UnderwriterNotes: fmt.Sprintf(
			"Approved at %.2f%% based on credit score and debt service coverage (DSCR %.2f).",
			rate, dscr),
	}
}
