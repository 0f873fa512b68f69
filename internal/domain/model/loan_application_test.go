package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenddesk/los/internal/domain/event"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

func newTestApplication(t *testing.T) model.LoanApplication {
	t.Helper()
	app, err := model.NewLoanApplication(
		"biz-001", "prod-001", 1,
		decimal.NewFromInt(100_000), "working capital", 60,
		"equipment", decimal.NewFromInt(50_000),
		"owner@example.com",
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return app
}

func TestNewLoanApplication(t *testing.T) {
	t.Run("starts in SUBMITTED with a submission event", func(t *testing.T) {
		app := newTestApplication(t)

		assert.NotEmpty(t, app.ID())
		assert.True(t, app.Status().Equal(valueobject.ApplicationStatusSubmitted))
		assert.Equal(t, 1, app.Version())

		require.Len(t, app.DomainEvents(), 1)
		submitted, ok := app.DomainEvents()[0].(event.ApplicationSubmitted)
		require.True(t, ok)
		assert.Equal(t, app.ID(), submitted.AggregateID())
		assert.Equal(t, "biz-001", submitted.BusinessID)
	})

	t.Run("rejects missing business ID", func(t *testing.T) {
		_, err := model.NewLoanApplication(
			"", "prod-001", 1,
			decimal.NewFromInt(100_000), "working capital", 60,
			"", decimal.Zero, "owner@example.com", time.Now(),
		)
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := model.NewLoanApplication(
			"biz-001", "prod-001", 1,
			decimal.Zero, "working capital", 60,
			"", decimal.Zero, "owner@example.com", time.Now(),
		)
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})

	t.Run("rejects non-positive term", func(t *testing.T) {
		_, err := model.NewLoanApplication(
			"biz-001", "prod-001", 1,
			decimal.NewFromInt(100_000), "working capital", 0,
			"", decimal.Zero, "owner@example.com", time.Now(),
		)
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})
}

func TestLoanApplication_Transitions(t *testing.T) {
	now := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("submitted to in review", func(t *testing.T) {
		app := newTestApplication(t)

		reviewed, err := app.BeginReview(now)
		require.NoError(t, err)
		assert.True(t, reviewed.Status().Equal(valueobject.ApplicationStatusInReview))
		assert.Equal(t, now, reviewed.LastReviewDate())

		// The original copy is untouched.
		assert.True(t, app.Status().Equal(valueobject.ApplicationStatusSubmitted))
	})

	t.Run("approve records terms and raises an event", func(t *testing.T) {
		app := newTestApplication(t)
		app, err := app.BeginReview(now)
		require.NoError(t, err)

		approved, err := app.Approve(decimal.NewFromInt(100_000), 5.8, 1.30, "approved", now)
		require.NoError(t, err)
		assert.True(t, approved.Status().Equal(valueobject.ApplicationStatusApproved))
		assert.True(t, approved.ApprovedAmount().Equal(decimal.NewFromInt(100_000)))
		assert.Equal(t, 5.8, approved.InterestRate())
		assert.Equal(t, 1.30, approved.DSCR())

		last := approved.DomainEvents()[len(approved.DomainEvents())-1]
		_, ok := last.(event.ApplicationApproved)
		assert.True(t, ok)
	})

	t.Run("deny records reasons and raises an event", func(t *testing.T) {
		app := newTestApplication(t)
		app, err := app.BeginReview(now)
		require.NoError(t, err)

		denied, err := app.Deny([]string{model.ReasonLowCreditScore}, 1.05, "denied", now)
		require.NoError(t, err)
		assert.True(t, denied.Status().Equal(valueobject.ApplicationStatusDenied))

		last := denied.DomainEvents()[len(denied.DomainEvents())-1]
		deniedEvt, ok := last.(event.ApplicationDenied)
		require.True(t, ok)
		assert.Equal(t, []string{model.ReasonLowCreditScore}, deniedEvt.ReasonCodes)
	})

	t.Run("approved to funded", func(t *testing.T) {
		app := newTestApplication(t)
		app, err := app.BeginReview(now)
		require.NoError(t, err)
		app, err = app.Approve(decimal.NewFromInt(100_000), 5.8, 1.30, "", now)
		require.NoError(t, err)

		funded, err := app.MarkFunded(now)
		require.NoError(t, err)
		assert.True(t, funded.Status().Equal(valueobject.ApplicationStatusFunded))
	})

	t.Run("cannot approve straight from submitted", func(t *testing.T) {
		app := newTestApplication(t)

		_, err := app.Approve(decimal.NewFromInt(100_000), 5.8, 1.30, "", now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("cannot fund an unapproved application", func(t *testing.T) {
		app := newTestApplication(t)

		_, err := app.MarkFunded(now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("cannot review a denied application", func(t *testing.T) {
		app := newTestApplication(t)
		app, err := app.BeginReview(now)
		require.NoError(t, err)
		app, err = app.Deny([]string{model.ReasonLowCreditScore}, 0, "", now)
		require.NoError(t, err)

		_, err = app.BeginReview(now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestLoanApplication_ClearEvents(t *testing.T) {
	app := newTestApplication(t)
	require.NotEmpty(t, app.DomainEvents())

	cleared := app.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.Equal(t, app.ID(), cleared.ID())
}
