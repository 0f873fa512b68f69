package usecase

import (
	"context"
	"fmt"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/port"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// GetApplicationUseCase serves read queries over applications: single lookup
// with attached documents, listing by business, and the repayment schedule
// for approved applications.
type GetApplicationUseCase struct {
	appRepo port.LoanApplicationRepository
	docRepo port.DocumentRepository
}

// NewGetApplicationUseCase wires dependencies.
func NewGetApplicationUseCase(
	appRepo port.LoanApplicationRepository,
	docRepo port.DocumentRepository,
) *GetApplicationUseCase {
	return &GetApplicationUseCase{appRepo: appRepo, docRepo: docRepo}
}

// Execute returns one application with its document metadata.
func (uc *GetApplicationUseCase) Execute(
	ctx context.Context,
	applicationID string,
) (dto.ApplicationResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	docs, err := uc.docRepo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find documents: %w", err)
	}
	return toApplicationResponse(app, docs), nil
}

// ListByBusiness returns all applications submitted by one business.
func (uc *GetApplicationUseCase) ListByBusiness(
	ctx context.Context,
	businessID string,
) ([]dto.ApplicationResponse, error) {
	apps, err := uc.appRepo.FindByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("find applications: %w", err)
	}
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationResponse(app, nil))
	}
	return out, nil
}

// Schedule returns the monthly repayment schedule for an application whose
// terms are locked in, meaning it is APPROVED or FUNDED.
func (uc *GetApplicationUseCase) Schedule(
	ctx context.Context,
	applicationID string,
) ([]dto.AmortizationEntryResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}

	status := app.Status()
	if !status.Equal(valueobject.ApplicationStatusApproved) &&
		!status.Equal(valueobject.ApplicationStatusFunded) {
		return nil, valueobject.NewValidationError(
			"application %s has no approved terms (status %s)", app.ID(), status,
		)
	}

	schedule := model.GenerateAmortizationSchedule(
		app.ApprovedAmount(), app.InterestRate(), app.TermMonths(), app.LastReviewDate(),
	)
	return toScheduleResponse(schedule), nil
}
