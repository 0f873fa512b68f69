package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/domain/port"
	"github.com/lenddesk/los/internal/domain/service"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// RunUnderwritingUseCase loads an application with its product, credit
// report, and business, runs the decision engine, and persists the outcome.
// Any missing input is fatal: nothing is persisted on a failed load, and the
// decision plus the updated application commit atomically through the writer.
type RunUnderwritingUseCase struct {
	appRepo      port.LoanApplicationRepository
	productRepo  port.LoanProductRepository
	businessRepo port.BusinessRepository
	reportRepo   port.CreditReportRepository
	decisionRepo port.UnderwritingDecisionRepository
	writer       port.UnderwritingWriter
	engine       *service.UnderwritingEngine
	publisher    port.EventPublisher
	notifier     port.DecisionNotifier
	logger       *slog.Logger
}

// NewRunUnderwritingUseCase wires dependencies.
func NewRunUnderwritingUseCase(
	appRepo port.LoanApplicationRepository,
	productRepo port.LoanProductRepository,
	businessRepo port.BusinessRepository,
	reportRepo port.CreditReportRepository,
	decisionRepo port.UnderwritingDecisionRepository,
	writer port.UnderwritingWriter,
	engine *service.UnderwritingEngine,
	publisher port.EventPublisher,
	notifier port.DecisionNotifier,
	logger *slog.Logger,
) *RunUnderwritingUseCase {
	return &RunUnderwritingUseCase{
		appRepo:      appRepo,
		productRepo:  productRepo,
		businessRepo: businessRepo,
		reportRepo:   reportRepo,
		decisionRepo: decisionRepo,
		writer:       writer,
		engine:       engine,
		publisher:    publisher,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute evaluates the application identified by applicationID.
// Re-evaluating an application that already carries a decision is rejected.
func (uc *RunUnderwritingUseCase) Execute(
	ctx context.Context,
	applicationID string,
) (dto.DecisionResponse, error) {
	now := nowUTC()

	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("find application: %w", err)
	}
	if app.Status().IsTerminalDecision() {
		return dto.DecisionResponse{}, valueobject.NewValidationError(
			"application %s already has a decision (status %s)", app.ID(), app.Status(),
		)
	}

	product, err := uc.productRepo.FindVersion(ctx, app.ProductID(), app.ProductVersion())
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("find product: %w", err)
	}
	report, err := uc.reportRepo.FindByApplicationID(ctx, app.ID())
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("find credit report: %w", err)
	}
	business, err := uc.businessRepo.FindByID(ctx, app.BusinessID())
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("find business: %w", err)
	}

	if app.Status().Equal(valueobject.ApplicationStatusSubmitted) {
		app, err = app.BeginReview(now)
		if err != nil {
			return dto.DecisionResponse{}, fmt.Errorf("begin review: %w", err)
		}
	}

	decision := uc.engine.Evaluate(service.EvaluationInput{
		Application:  app,
		Product:      product,
		CreditReport: report,
		Business:     business,
	}, now)

	switch decision.Decision {
	case valueobject.DecisionApproved:
		app, err = app.Approve(
			decision.ApprovedAmount, decision.InterestRate, decision.DSCR,
			decision.UnderwriterNotes, now,
		)
	case valueobject.DecisionDenied:
		app, err = app.Deny(decision.ReasonCodes, decision.DSCR, decision.UnderwriterNotes, now)
	default:
		// NEED_MORE_INFO leaves the application in review.
	}
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	if err := uc.writer.SaveDecisionAndApplication(ctx, decision, app); err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("save decision: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// Notification is fire-and-forget: a delivery failure never fails the
	// evaluation.
	if err := uc.notifier.NotifyDecision(ctx, app.ID(), decision.Decision); err != nil {
		uc.logger.Warn("decision notification failed",
			"application_id", app.ID(),
			"decision", string(decision.Decision),
			"error", err,
		)
	}

	return toDecisionResponse(decision), nil
}

// Decision returns the stored decision for an application.
func (uc *RunUnderwritingUseCase) Decision(
	ctx context.Context,
	applicationID string,
) (dto.DecisionResponse, error) {
	decision, err := uc.decisionRepo.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return dto.DecisionResponse{}, fmt.Errorf("find decision: %w", err)
	}
	return toDecisionResponse(decision), nil
}
