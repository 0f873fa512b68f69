package usecase

import (
	"context"
	"fmt"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/domain/event"
	"github.com/lenddesk/los/internal/domain/port"
)

// PerformCreditCheckUseCase pulls a credit report from the bureau and
// persists it keyed by application ID.
type PerformCreditCheckUseCase struct {
	appRepo      port.LoanApplicationRepository
	businessRepo port.BusinessRepository
	reportRepo   port.CreditReportRepository
	bureau       port.CreditBureauClient
	publisher    port.EventPublisher
}

// NewPerformCreditCheckUseCase wires dependencies.
func NewPerformCreditCheckUseCase(
	appRepo port.LoanApplicationRepository,
	businessRepo port.BusinessRepository,
	reportRepo port.CreditReportRepository,
	bureau port.CreditBureauClient,
	publisher port.EventPublisher,
) *PerformCreditCheckUseCase {
	return &PerformCreditCheckUseCase{
		appRepo:      appRepo,
		businessRepo: businessRepo,
		reportRepo:   reportRepo,
		bureau:       bureau,
		publisher:    publisher,
	}
}

// Execute fetches and stores a credit report for the given application.
func (uc *PerformCreditCheckUseCase) Execute(
	ctx context.Context,
	applicationID string,
) (dto.CreditReportResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return dto.CreditReportResponse{}, fmt.Errorf("find application: %w", err)
	}

	business, err := uc.businessRepo.FindByID(ctx, app.BusinessID())
	if err != nil {
		return dto.CreditReportResponse{}, fmt.Errorf("find business: %w", err)
	}

	report, err := uc.bureau.FetchReport(ctx, app.ID(), business)
	if err != nil {
		return dto.CreditReportResponse{}, fmt.Errorf("fetch credit report: %w", err)
	}

	if err := uc.reportRepo.Save(ctx, report); err != nil {
		return dto.CreditReportResponse{}, fmt.Errorf("save credit report: %w", err)
	}

	recorded := event.NewCreditReportRecorded(app.ID(), report.CreditScore)
	if err := uc.publisher.Publish(ctx, recorded); err != nil {
		return dto.CreditReportResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toCreditReportResponse(report), nil
}
