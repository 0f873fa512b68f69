package usecase

import (
	"context"
	"fmt"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/port"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// SubmitApplicationUseCase orchestrates new application intake: borrower
// creation, product constraint validation, and persistence.
type SubmitApplicationUseCase struct {
	businessRepo port.BusinessRepository
	appRepo      port.LoanApplicationRepository
	productRepo  port.LoanProductRepository
	publisher    port.EventPublisher
}

// NewSubmitApplicationUseCase wires dependencies.
func NewSubmitApplicationUseCase(
	businessRepo port.BusinessRepository,
	appRepo port.LoanApplicationRepository,
	productRepo port.LoanProductRepository,
	publisher port.EventPublisher,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		businessRepo: businessRepo,
		appRepo:      appRepo,
		productRepo:  productRepo,
		publisher:    publisher,
	}
}

// Execute validates the request against the chosen product and persists the
// business and application. Validation failures happen before any record is
// written.
func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := nowUTC()

	if req.ProductID == "" {
		return dto.ApplicationResponse{}, valueobject.NewValidationError("product ID is required")
	}

	product, err := uc.resolveProduct(ctx, req.ProductID, req.ProductVersion)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("resolve product: %w", err)
	}

	if !product.AllowsAmount(req.RequestedAmount) {
		return dto.ApplicationResponse{}, valueobject.NewValidationError(
			"requested amount %s is outside the product range [%s, %s]",
			req.RequestedAmount, product.MinLoanAmount, product.MaxLoanAmount,
		)
	}
	if !product.AllowsTerm(req.LoanTerm) {
		return dto.ApplicationResponse{}, valueobject.NewValidationError(
			"loan term %d months is not offered by product %s", req.LoanTerm, product.ProductID,
		)
	}

	structure, err := valueobject.NewBusinessStructure(req.Business.Structure)
	if err != nil {
		return dto.ApplicationResponse{}, valueobject.NewValidationError("%s", err.Error())
	}

	business, err := model.NewBusiness(
		req.Business.LegalName, req.Business.TradingName,
		structure, req.Business.TaxID, req.Business.DateEstablished,
		req.Business.NumberOfEmployees, req.Business.AnnualRevenue,
		req.Business.IndustryCode,
		toAddress(req.Business.Address),
		toContact(req.Business.ContactInformation),
		toStatements(req.Business.FinancialStatements),
		toCreditHistory(req.Business.CreditHistory),
		req.Business.Email,
		now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create business: %w", err)
	}

	app, err := model.NewLoanApplication(
		business.ID, product.ProductID, product.VersionNumber,
		req.RequestedAmount, req.LoanPurpose, req.LoanTerm,
		req.CollateralType, req.CollateralValue,
		req.ApplicantEmail, now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	if err := uc.businessRepo.Save(ctx, business); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save business: %w", err)
	}
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(app.ClearEvents(), nil), nil
}

func (uc *SubmitApplicationUseCase) resolveProduct(
	ctx context.Context,
	productID string,
	version int,
) (model.LoanProduct, error) {
	if version > 0 {
		return uc.productRepo.FindVersion(ctx, productID, version)
	}
	return uc.productRepo.FindLatest(ctx, productID)
}

func toAddress(in dto.AddressInput) model.Address {
	return model.Address{
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
}

func toContact(in dto.ContactInput) model.ContactInformation {
	return model.ContactInformation{
		PrimaryContactName: in.PrimaryContactName,
		PhoneNumber:        in.PhoneNumber,
		Email:              in.Email,
	}
}

func toStatements(in dto.FinancialStatementsInput) model.FinancialStatements {
	return model.FinancialStatements{
		BalanceSheet: model.BalanceSheet{
			TotalAssets:        in.BalanceSheet.TotalAssets,
			TotalLiabilities:   in.BalanceSheet.TotalLiabilities,
			OwnersEquity:       in.BalanceSheet.OwnersEquity,
			CurrentAssets:      in.BalanceSheet.CurrentAssets,
			CurrentLiabilities: in.BalanceSheet.CurrentLiabilities,
		},
		IncomeStatement: model.IncomeStatement{
			Revenue:   in.IncomeStatement.Revenue,
			Expenses:  in.IncomeStatement.Expenses,
			NetIncome: in.IncomeStatement.NetIncome,
		},
		CashFlowStatement: model.CashFlowStatement{
			OperatingCashFlow: in.CashFlowStatement.OperatingCashFlow,
			InvestingCashFlow: in.CashFlowStatement.InvestingCashFlow,
			FinancingCashFlow: in.CashFlowStatement.FinancingCashFlow,
		},
	}
}

func toCreditHistory(in *dto.CreditHistoryInput) *model.CreditHistory {
	if in == nil {
		return nil
	}
	return &model.CreditHistory{
		Bankruptcies:   in.Bankruptcies,
		Liens:          in.Liens,
		Judgments:      in.Judgments,
		DefaultedLoans: in.DefaultedLoans,
	}
}
