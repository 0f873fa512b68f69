package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

func newTestProduct() model.LoanProduct {
	created := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return model.LoanProduct{
		ProductID:        "prod-001",
		VersionNumber:    1,
		ProductName:      "Small Business Term Loan",
		ProductType:      "TERM_LOAN",
		MinLoanAmount:    decimal.NewFromInt(10_000),
		MaxLoanAmount:    decimal.NewFromInt(500_000),
		InterestRateType: valueobject.InterestRateFixed,
		BaseInterestRate: 6.5,
		TermOptions:      []int{12, 24, 36, 60},
		EligibilityCriteria: model.EligibilityCriteria{
			MinCreditScore: 650,
			Conditions:     []string{"2 years in business"},
		},
		Fees:      map[string]decimal.Decimal{"origination": decimal.NewFromInt(500)},
		Status:    valueobject.ProductStatusActive,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestLoanProduct_Validate(t *testing.T) {
	t.Run("valid product passes", func(t *testing.T) {
		assert.NoError(t, newTestProduct().Validate())
	})

	t.Run("missing name fails", func(t *testing.T) {
		p := newTestProduct()
		p.ProductName = ""
		assert.Error(t, p.Validate())
	})

	t.Run("max below min fails", func(t *testing.T) {
		p := newTestProduct()
		p.MaxLoanAmount = decimal.NewFromInt(5_000)
		assert.Error(t, p.Validate())
	})

	t.Run("no term options fails", func(t *testing.T) {
		p := newTestProduct()
		p.TermOptions = nil
		assert.Error(t, p.Validate())
	})
}

func TestLoanProduct_Constraints(t *testing.T) {
	p := newTestProduct()

	assert.True(t, p.AllowsTerm(36))
	assert.False(t, p.AllowsTerm(48))

	assert.True(t, p.AllowsAmount(decimal.NewFromInt(10_000)))
	assert.True(t, p.AllowsAmount(decimal.NewFromInt(500_000)))
	assert.False(t, p.AllowsAmount(decimal.NewFromInt(9_999)))
	assert.False(t, p.AllowsAmount(decimal.NewFromInt(500_001)))
}

func TestLoanProduct_NewVersion(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p := newTestProduct()

	next := p.NewVersion(now)

	assert.Equal(t, 2, next.VersionNumber)
	assert.Equal(t, now, next.CreatedAt)
	assert.Equal(t, now, next.UpdatedAt)
	require.NoError(t, next.Validate())

	// Mutating the copy's collections leaves the prior version intact.
	next.TermOptions[0] = 6
	next.Fees["origination"] = decimal.NewFromInt(999)
	next.EligibilityCriteria.Conditions[0] = "changed"

	assert.Equal(t, 12, p.TermOptions[0])
	assert.True(t, p.Fees["origination"].Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "2 years in business", p.EligibilityCriteria.Conditions[0])
}

func TestLoanProduct_Deprecate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	p := newTestProduct()

	deprecated := p.Deprecate(now)

	assert.True(t, deprecated.Status.Equal(valueobject.ProductStatusDeprecated))
	assert.Equal(t, 1, deprecated.VersionNumber)
	assert.True(t, p.Status.Equal(valueobject.ProductStatusActive), "original copy untouched")
}
