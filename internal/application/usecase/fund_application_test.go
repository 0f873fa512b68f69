package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenddesk/los/internal/application/usecase"
	"github.com/lenddesk/los/internal/domain/event"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

func TestFundApplication_Success(t *testing.T) {
	appRepo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _ string) (model.LoanApplication, error) {
			return approvedApplication(), nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := usecase.NewFundApplicationUseCase(appRepo, publisher)

	resp, err := uc.Execute(context.Background(), "app-001")
	require.NoError(t, err)

	assert.Equal(t, "FUNDED", resp.Status)
	require.Len(t, appRepo.savedApps, 1)
	assert.True(t, appRepo.savedApps[0].Status().Equal(valueobject.ApplicationStatusFunded))

	require.Len(t, publisher.publishedEvents, 1)
	funded, ok := publisher.publishedEvents[0].(event.ApplicationFunded)
	require.True(t, ok)
	assert.Equal(t, "app-001", funded.AggregateID())
}

func TestFundApplication_RejectsUnapproved(t *testing.T) {
	appRepo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _ string) (model.LoanApplication, error) {
			return applicationWithStatus(valueobject.ApplicationStatusSubmitted, decimal.NewFromInt(120_000)), nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := usecase.NewFundApplicationUseCase(appRepo, publisher)

	_, err := uc.Execute(context.Background(), "app-001")
	require.Error(t, err)
	assert.True(t, valueobject.IsValidation(err))
	assert.Empty(t, appRepo.savedApps)
	assert.Empty(t, publisher.publishedEvents)
}

func TestFundApplication_NotFound(t *testing.T) {
	uc := usecase.NewFundApplicationUseCase(&mockApplicationRepository{}, &mockEventPublisher{})

	_, err := uc.Execute(context.Background(), "ghost")
	assert.ErrorIs(t, err, valueobject.ErrNotFound)
}
