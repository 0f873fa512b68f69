package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenddesk/los/internal/application/usecase"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

func TestGetApplication_Execute(t *testing.T) {
	appRepo := &mockApplicationRepository{
		findByIDFunc: func(_ context.Context, _ string) (model.LoanApplication, error) {
			return applicationWithStatus(valueobject.ApplicationStatusSubmitted, decimal.NewFromInt(120_000)), nil
		},
	}
	docRepo := &mockDocumentRepository{
		findByApplicationIDFunc: func(_ context.Context, applicationID string) ([]model.Document, error) {
			doc, err := model.NewDocument(applicationID, "TAX_RETURN", "app-001/doc-1", evalNow())
			if err != nil {
				return nil, err
			}
			return []model.Document{doc}, nil
		},
	}
	uc := usecase.NewGetApplicationUseCase(appRepo, docRepo)

	resp, err := uc.Execute(context.Background(), "app-001")
	require.NoError(t, err)

	assert.Equal(t, "app-001", resp.ID)
	assert.Equal(t, "SUBMITTED", resp.Status)
	require.Len(t, resp.Documents, 1)
	assert.Equal(t, "TAX_RETURN", resp.Documents[0].DocumentType)
}

func TestGetApplication_NotFound(t *testing.T) {
	uc := usecase.NewGetApplicationUseCase(&mockApplicationRepository{}, &mockDocumentRepository{})

	_, err := uc.Execute(context.Background(), "ghost")
	assert.ErrorIs(t, err, valueobject.ErrNotFound)
}

func TestGetApplication_ListByBusiness(t *testing.T) {
	appRepo := &mockApplicationRepository{
		findByBusinessIDFunc: func(_ context.Context, _ string) ([]model.LoanApplication, error) {
			return []model.LoanApplication{
				applicationWithStatus(valueobject.ApplicationStatusSubmitted, decimal.NewFromInt(120_000)),
				approvedApplication(),
			}, nil
		},
	}
	uc := usecase.NewGetApplicationUseCase(appRepo, &mockDocumentRepository{})

	resps, err := uc.ListByBusiness(context.Background(), "biz-001")
	require.NoError(t, err)
	require.Len(t, resps, 2)
	assert.Equal(t, "SUBMITTED", resps[0].Status)
	assert.Equal(t, "APPROVED", resps[1].Status)
}

func TestGetApplication_Schedule(t *testing.T) {
	t.Run("approved application yields a full schedule", func(t *testing.T) {
		appRepo := &mockApplicationRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.LoanApplication, error) {
				return approvedApplication(), nil
			},
		}
		uc := usecase.NewGetApplicationUseCase(appRepo, &mockDocumentRepository{})

		schedule, err := uc.Schedule(context.Background(), "app-001")
		require.NoError(t, err)
		require.Len(t, schedule, 12)

		assert.Equal(t, 1, schedule[0].Period)
		assert.True(t, schedule[len(schedule)-1].RemainingBalance.IsZero(),
			"final balance should amortize to zero, got %s", schedule[len(schedule)-1].RemainingBalance)
	})

	t.Run("undecided application has no schedule", func(t *testing.T) {
		appRepo := &mockApplicationRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.LoanApplication, error) {
				return applicationWithStatus(valueobject.ApplicationStatusInReview, decimal.NewFromInt(120_000)), nil
			},
		}
		uc := usecase.NewGetApplicationUseCase(appRepo, &mockDocumentRepository{})

		_, err := uc.Schedule(context.Background(), "app-001")
		require.Error(t, err)
		assert.True(t, valueobject.IsValidation(err))
	})
}
