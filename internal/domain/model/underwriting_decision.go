package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/valueobject"
)

// Reason codes emitted by the underwriting engine.
const (
	ReasonLowCreditScore       = "LOW_CREDIT_SCORE"
	ReasonInsufficientCashFlow = "INSUFFICIENT_CASH_FLOW"
	ReasonIndeterminateRatio   = "INDETERMINATE_CASH_FLOW"
	ReasonMeetsCreditBar       = "MEETS_CREDIT_REQUIREMENTS"
	ReasonStrongCashFlow       = "STRONG_CASH_FLOW"
	ReasonAdequateCashFlow     = "ADEQUATE_CASH_FLOW"
)

// UnderwritingDecision is the engine's output for one evaluation. One record
// exists per application; re-evaluation upserts by application ID.
type UnderwritingDecision struct {
	ApplicationID    string
	Decision         valueobject.DecisionOutcome
	DecisionDate     time.Time
	ApprovedAmount   decimal.Decimal
	InterestRate     float64
	TermMonths       int
	DSCR             float64
	Conditions       []string
	ReasonCodes      []string
	UnderwriterNotes string
}

// IsApproved reports whether the decision approves the application.
func (d UnderwritingDecision) IsApproved() bool {
	return d.Decision == valueobject.DecisionApproved
}
