package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/port"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// ProductCatalogUseCase covers the loan product catalog: create, versioned
// update, in-place correction, deprecation, lookup, listing, and search.
type ProductCatalogUseCase struct {
	productRepo port.LoanProductRepository
}

// NewProductCatalogUseCase wires dependencies.
func NewProductCatalogUseCase(productRepo port.LoanProductRepository) *ProductCatalogUseCase {
	return &ProductCatalogUseCase{productRepo: productRepo}
}

// Create inserts version 1 of a new product with a generated product ID.
func (uc *ProductCatalogUseCase) Create(
	ctx context.Context,
	req dto.CreateProductRequest,
) (dto.ProductResponse, error) {
	now := nowUTC()

	rateType, err := valueobject.NewInterestRateType(req.InterestRateType)
	if err != nil {
		return dto.ProductResponse{}, valueobject.NewValidationError("%s", err.Error())
	}

	product := model.LoanProduct{
		ProductID:        uuid.New().String(),
		VersionNumber:    1,
		ProductName:      req.ProductName,
		ProductType:      req.ProductType,
		MinLoanAmount:    req.MinLoanAmount,
		MaxLoanAmount:    req.MaxLoanAmount,
		InterestRateType: rateType,
		BaseInterestRate: req.BaseInterestRate,
		TermOptions:      req.TermOptions,
		EligibilityCriteria: model.EligibilityCriteria{
			MinCreditScore: req.EligibilityCriteria.MinCreditScore,
			Conditions:     req.EligibilityCriteria.Conditions,
		},
		Fees:                   req.Fees,
		CollateralRequirements: req.CollateralRequirements,
		UnderwritingGuidelines: req.UnderwritingGuidelines,
		Status:                 valueobject.ProductStatusActive,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := product.Validate(); err != nil {
		return dto.ProductResponse{}, err
	}
	if err := uc.productRepo.Save(ctx, product); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("save product: %w", err)
	}
	return toProductResponse(product), nil
}

// Get returns a product version. Version 0 resolves to the latest.
func (uc *ProductCatalogUseCase) Get(
	ctx context.Context,
	productID string,
	version int,
) (dto.ProductResponse, error) {
	var (
		product model.LoanProduct
		err     error
	)
	if version > 0 {
		product, err = uc.productRepo.FindVersion(ctx, productID, version)
	} else {
		product, err = uc.productRepo.FindLatest(ctx, productID)
	}
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("find product: %w", err)
	}
	return toProductResponse(product), nil
}

// Update applies field overrides to the latest version in place, stamping
// updatedAt. This corrects the current version; use CreateVersion to
// preserve history instead.
func (uc *ProductCatalogUseCase) Update(
	ctx context.Context,
	productID string,
	req dto.UpdateProductRequest,
) (dto.ProductResponse, error) {
	product, err := uc.productRepo.FindLatest(ctx, productID)
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("find product: %w", err)
	}

	product, err = applyOverrides(product, req)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	product.UpdatedAt = nowUTC()

	if err := product.Validate(); err != nil {
		return dto.ProductResponse{}, err
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("update product: %w", err)
	}
	return toProductResponse(product), nil
}

// CreateVersion copies the latest version, applies overrides, increments the
// version number, and inserts the copy. The prior version stays retrievable.
func (uc *ProductCatalogUseCase) CreateVersion(
	ctx context.Context,
	productID string,
	req dto.UpdateProductRequest,
) (dto.ProductResponse, error) {
	current, err := uc.productRepo.FindLatest(ctx, productID)
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("find product: %w", err)
	}

	next := current.NewVersion(nowUTC())
	next, err = applyOverrides(next, req)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	if err := next.Validate(); err != nil {
		return dto.ProductResponse{}, err
	}
	if err := uc.productRepo.Save(ctx, next); err != nil {
		return dto.ProductResponse{}, fmt.Errorf("save product version: %w", err)
	}
	return toProductResponse(next), nil
}

// Deprecate marks the latest version as deprecated.
func (uc *ProductCatalogUseCase) Deprecate(ctx context.Context, productID string) error {
	product, err := uc.productRepo.FindLatest(ctx, productID)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if err := uc.productRepo.Update(ctx, product.Deprecate(nowUTC())); err != nil {
		return fmt.Errorf("deprecate product: %w", err)
	}
	return nil
}

// List returns every product version across all product IDs, unfiltered.
// Callers wanting only current or active versions filter themselves.
func (uc *ProductCatalogUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return toProductResponses(products), nil
}

// ListVersions returns all versions of one product, newest first.
func (uc *ProductCatalogUseCase) ListVersions(
	ctx context.Context,
	productID string,
) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.FindAllVersions(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list product versions: %w", err)
	}
	return toProductResponses(products), nil
}

// Search returns products matching all supplied criteria.
func (uc *ProductCatalogUseCase) Search(
	ctx context.Context,
	req dto.SearchProductsRequest,
) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.Search(ctx, port.ProductSearchCriteria{
		ProductType:      req.ProductType,
		MinAmount:        req.MinAmount,
		MaxAmount:        req.MaxAmount,
		InterestRateType: req.InterestRateType,
	})
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return toProductResponses(products), nil
}

func applyOverrides(product model.LoanProduct, req dto.UpdateProductRequest) (model.LoanProduct, error) {
	if req.ProductName != nil {
		product.ProductName = *req.ProductName
	}
	if req.ProductType != nil {
		product.ProductType = *req.ProductType
	}
	if req.MinLoanAmount != nil {
		product.MinLoanAmount = *req.MinLoanAmount
	}
	if req.MaxLoanAmount != nil {
		product.MaxLoanAmount = *req.MaxLoanAmount
	}
	if req.InterestRateType != nil {
		rateType, err := valueobject.NewInterestRateType(*req.InterestRateType)
		if err != nil {
			return model.LoanProduct{}, valueobject.NewValidationError("%s", err.Error())
		}
		product.InterestRateType = rateType
	}
	if req.BaseInterestRate != nil {
		product.BaseInterestRate = *req.BaseInterestRate
	}
	if req.TermOptions != nil {
		product.TermOptions = req.TermOptions
	}
	if req.EligibilityCriteria != nil {
		product.EligibilityCriteria = model.EligibilityCriteria{
			MinCreditScore: req.EligibilityCriteria.MinCreditScore,
			Conditions:     req.EligibilityCriteria.Conditions,
		}
	}
	if req.Fees != nil {
		product.Fees = req.Fees
	}
	if req.CollateralRequirements != nil {
		product.CollateralRequirements = *req.CollateralRequirements
	}
	if req.UnderwritingGuidelines != nil {
		product.UnderwritingGuidelines = *req.UnderwritingGuidelines
	}
	if req.Status != nil {
		status, err := valueobject.NewProductStatus(*req.Status)
		if err != nil {
			return model.LoanProduct{}, valueobject.NewValidationError("%s", err.Error())
		}
		product.Status = status
	}
	return product, nil
}
