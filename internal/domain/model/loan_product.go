package model

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanProduct – versioned pricing/eligibility template
// ---------------------------------------------------------------------------

// EligibilityCriteria are the thresholds an applicant must clear for a
// product.
type EligibilityCriteria struct {
	MinCreditScore int      `json:"min_credit_score"`
	Conditions     []string `json:"conditions,omitempty"`
}

// LoanProduct is one immutable version of a lending product. The
// (ProductID, VersionNumber) pair is the storage key; "updating" a product's
// terms normally means creating the next version via NewVersion, while
// Update-in-place on the same version is reserved for corrections.
type LoanProduct struct {
	ProductID              string
	VersionNumber          int
	ProductName            string
	ProductType            string
	MinLoanAmount          decimal.Decimal
	MaxLoanAmount          decimal.Decimal
	InterestRateType       valueobject.InterestRateType
	BaseInterestRate       float64
	TermOptions            []int
	EligibilityCriteria    EligibilityCriteria
	Fees                   map[string]decimal.Decimal
	CollateralRequirements string
	UnderwritingGuidelines string
	Status                 valueobject.ProductStatus
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Validate checks the structural invariants of a product version.
func (p LoanProduct) Validate() error {
	if p.ProductID == "" {
		return valueobject.NewValidationError("product ID is required")
	}
	if p.VersionNumber < 1 {
		return valueobject.NewValidationError("version number must be at least 1")
	}
	if p.ProductName == "" {
		return valueobject.NewValidationError("product name is required")
	}
	if p.MinLoanAmount.LessThanOrEqual(decimal.Zero) {
		return valueobject.NewValidationError("minimum loan amount must be positive")
	}
	if p.MaxLoanAmount.LessThan(p.MinLoanAmount) {
		return valueobject.NewValidationError("maximum loan amount must not be below the minimum")
	}
	if len(p.TermOptions) == 0 {
		return valueobject.NewValidationError("at least one term option is required")
	}
	return nil
}

// AllowsTerm reports whether termMonths is one of the product's term options.
func (p LoanProduct) AllowsTerm(termMonths int) bool {
	return slices.Contains(p.TermOptions, termMonths)
}

// AllowsAmount reports whether amount falls within the product's loan range.
func (p LoanProduct) AllowsAmount(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(p.MinLoanAmount) && amount.LessThanOrEqual(p.MaxLoanAmount)
}

// NewVersion returns a copy carrying the next version number with fresh
// timestamps. The caller applies field overrides to the copy before saving;
// the prior version remains retrievable unchanged.
func (p LoanProduct) NewVersion(now time.Time) LoanProduct {
	next := p
	next.VersionNumber = p.VersionNumber + 1
	next.TermOptions = slices.Clone(p.TermOptions)
	if p.Fees != nil {
		next.Fees = make(map[string]decimal.Decimal, len(p.Fees))
		for k, v := range p.Fees {
			next.Fees[k] = v
		}
	}
	next.EligibilityCriteria.Conditions = slices.Clone(p.EligibilityCriteria.Conditions)
	next.CreatedAt = now
	next.UpdatedAt = now
	return next
}

// Deprecate marks this version as deprecated. It is a status transition on
// the current version, not a deletion; history stays intact.
func (p LoanProduct) Deprecate(now time.Time) LoanProduct {
	next := p
	next.Status = valueobject.ProductStatusDeprecated
	next.UpdatedAt = now
	return next
}
