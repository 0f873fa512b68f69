package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/domain/port"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// FundApplicationUseCase moves an approved application to FUNDED once the
// disbursement has gone out.
type FundApplicationUseCase struct {
	appRepo   port.LoanApplicationRepository
	publisher port.EventPublisher
}

// NewFundApplicationUseCase wires dependencies.
func NewFundApplicationUseCase(
	appRepo port.LoanApplicationRepository,
	publisher port.EventPublisher,
) *FundApplicationUseCase {
	return &FundApplicationUseCase{appRepo: appRepo, publisher: publisher}
}

// Execute transitions the application APPROVED -> FUNDED.
func (uc *FundApplicationUseCase) Execute(
	ctx context.Context,
	applicationID string,
) (dto.ApplicationResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}

	app, err = app.MarkFunded(nowUTC())
	if err != nil {
		if errors.Is(err, valueobject.ErrInvalidStatusTransition) {
			return dto.ApplicationResponse{}, valueobject.NewValidationError(
				"application %s cannot be funded from status %s", app.ID(), app.Status(),
			)
		}
		return dto.ApplicationResponse{}, fmt.Errorf("mark funded: %w", err)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(app.ClearEvents(), nil), nil
}
