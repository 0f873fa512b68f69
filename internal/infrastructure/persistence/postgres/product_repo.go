package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/port"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// LoanProductRepo implements port.LoanProductRepository. Products are keyed
// by (product_id, version_number); structured fields live in JSONB columns.
type LoanProductRepo struct {
	pool *pgxpool.Pool
}

// NewLoanProductRepo creates a new repository backed by PostgreSQL.
func NewLoanProductRepo(pool *pgxpool.Pool) *LoanProductRepo {
	return &LoanProductRepo{pool: pool}
}

// Save writes a product version. An existing (product_id, version_number)
// pair is overwritten.
func (r *LoanProductRepo) Save(ctx context.Context, product model.LoanProduct) error {
	return r.write(ctx, product, `
		INSERT INTO loan_products (
			product_id, version_number, product_name, product_type,
			min_loan_amount, max_loan_amount, interest_rate_type,
			base_interest_rate, term_options, eligibility_criteria, fees,
			collateral_requirements, underwriting_guidelines, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (product_id, version_number) DO UPDATE SET
			product_name            = EXCLUDED.product_name,
			product_type            = EXCLUDED.product_type,
			min_loan_amount         = EXCLUDED.min_loan_amount,
			max_loan_amount         = EXCLUDED.max_loan_amount,
			interest_rate_type      = EXCLUDED.interest_rate_type,
			base_interest_rate      = EXCLUDED.base_interest_rate,
			term_options            = EXCLUDED.term_options,
			eligibility_criteria    = EXCLUDED.eligibility_criteria,
			fees                    = EXCLUDED.fees,
			collateral_requirements = EXCLUDED.collateral_requirements,
			underwriting_guidelines = EXCLUDED.underwriting_guidelines,
			status                  = EXCLUDED.status,
			updated_at              = EXCLUDED.updated_at
	`)
}

// Update rewrites an existing product version in place. Same statement as
// Save; kept separate so call sites state their intent.
func (r *LoanProductRepo) Update(ctx context.Context, product model.LoanProduct) error {
	return r.Save(ctx, product)
}

func (r *LoanProductRepo) write(ctx context.Context, product model.LoanProduct, query string) error {
	termOptions, err := json.Marshal(product.TermOptions)
	if err != nil {
		return fmt.Errorf("marshal term options: %w", err)
	}
	eligibility, err := json.Marshal(product.EligibilityCriteria)
	if err != nil {
		return fmt.Errorf("marshal eligibility criteria: %w", err)
	}
	fees, err := json.Marshal(product.Fees)
	if err != nil {
		return fmt.Errorf("marshal fees: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		product.ProductID, product.VersionNumber, product.ProductName, product.ProductType,
		product.MinLoanAmount, product.MaxLoanAmount, string(product.InterestRateType),
		product.BaseInterestRate, termOptions, eligibility, fees,
		product.CollateralRequirements, product.UnderwritingGuidelines, product.Status.String(),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save loan product: %w", err)
	}
	return nil
}

// FindVersion retrieves one specific product version.
func (r *LoanProductRepo) FindVersion(ctx context.Context, productID string, versionNumber int) (model.LoanProduct, error) {
	query := productSelect + ` WHERE product_id = $1 AND version_number = $2`
	product, err := scanProduct(r.pool.QueryRow(ctx, query, productID, versionNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanProduct{}, fmt.Errorf(
			"loan product %s version %d: %w", productID, versionNumber, valueobject.ErrNotFound)
	}
	return product, err
}

// FindLatest retrieves the highest-numbered version of a product.
func (r *LoanProductRepo) FindLatest(ctx context.Context, productID string) (model.LoanProduct, error) {
	query := productSelect + ` WHERE product_id = $1 ORDER BY version_number DESC LIMIT 1`
	product, err := scanProduct(r.pool.QueryRow(ctx, query, productID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanProduct{}, fmt.Errorf("loan product %s: %w", productID, valueobject.ErrNotFound)
	}
	return product, err
}

// FindAllVersions retrieves every version of one product, newest first.
func (r *LoanProductRepo) FindAllVersions(ctx context.Context, productID string) ([]model.LoanProduct, error) {
	query := productSelect + ` WHERE product_id = $1 ORDER BY version_number DESC`
	return r.scanMany(ctx, query, productID)
}

// List retrieves every stored product version.
func (r *LoanProductRepo) List(ctx context.Context) ([]model.LoanProduct, error) {
	query := productSelect + ` ORDER BY product_id, version_number DESC`
	return r.scanMany(ctx, query)
}

// Search filters the latest version of each product. Criteria combine with
// AND; MinAmount bounds the product floor from below, MaxAmount bounds the
// product ceiling from above.
func (r *LoanProductRepo) Search(ctx context.Context, criteria port.ProductSearchCriteria) ([]model.LoanProduct, error) {
	query := `
		SELECT * FROM (
			SELECT DISTINCT ON (product_id)
			       product_id, version_number, product_name, product_type,
			       min_loan_amount, max_loan_amount, interest_rate_type,
			       base_interest_rate, term_options, eligibility_criteria, fees,
			       collateral_requirements, underwriting_guidelines, status,
			       created_at, updated_at
			FROM loan_products
			ORDER BY product_id, version_number DESC
		) latest
		WHERE 1=1`

	var args []any
	if criteria.ProductType != "" {
		args = append(args, criteria.ProductType)
		query += fmt.Sprintf(" AND product_type = $%d", len(args))
	}
	if criteria.MinAmount != nil {
		args = append(args, *criteria.MinAmount)
		query += fmt.Sprintf(" AND min_loan_amount >= $%d", len(args))
	}
	if criteria.MaxAmount != nil {
		args = append(args, *criteria.MaxAmount)
		query += fmt.Sprintf(" AND max_loan_amount <= $%d", len(args))
	}
	if criteria.InterestRateType != "" {
		args = append(args, criteria.InterestRateType)
		query += fmt.Sprintf(" AND interest_rate_type = $%d", len(args))
	}
	query += " ORDER BY product_name"

	return r.scanMany(ctx, query, args...)
}

const productSelect = `
	SELECT product_id, version_number, product_name, product_type,
	       min_loan_amount, max_loan_amount, interest_rate_type,
	       base_interest_rate, term_options, eligibility_criteria, fees,
	       collateral_requirements, underwriting_guidelines, status,
	       created_at, updated_at
	FROM loan_products`

func (r *LoanProductRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.LoanProduct, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loan products: %w", err)
	}
	defer rows.Close()

	var result []model.LoanProduct
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}

func scanProduct(s scannable) (model.LoanProduct, error) {
	var (
		productID, productName, productType              string
		versionNumber                                    int
		minAmount, maxAmount                             decimal.Decimal
		rateTypeStr                                      string
		baseRate                                         float64
		termOptionsRaw, eligibilityRaw, feesRaw          []byte
		collateralRequirements, underwritingGuidelines   string
		statusStr                                        string
		createdAt, updatedAt                             time.Time
	)

	err := s.Scan(
		&productID, &versionNumber, &productName, &productType,
		&minAmount, &maxAmount, &rateTypeStr,
		&baseRate, &termOptionsRaw, &eligibilityRaw, &feesRaw,
		&collateralRequirements, &underwritingGuidelines, &statusStr,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LoanProduct{}, err
		}
		return model.LoanProduct{}, fmt.Errorf("scan loan product: %w", err)
	}

	rateType, err := valueobject.NewInterestRateType(rateTypeStr)
	if err != nil {
		return model.LoanProduct{}, fmt.Errorf("parse rate type: %w", err)
	}
	status, err := valueobject.NewProductStatus(statusStr)
	if err != nil {
		return model.LoanProduct{}, fmt.Errorf("parse product status: %w", err)
	}

	var termOptions []int
	if err := json.Unmarshal(termOptionsRaw, &termOptions); err != nil {
		return model.LoanProduct{}, fmt.Errorf("unmarshal term options: %w", err)
	}
	var eligibility model.EligibilityCriteria
	if err := json.Unmarshal(eligibilityRaw, &eligibility); err != nil {
		return model.LoanProduct{}, fmt.Errorf("unmarshal eligibility criteria: %w", err)
	}
	var fees map[string]decimal.Decimal
	if err := json.Unmarshal(feesRaw, &fees); err != nil {
		return model.LoanProduct{}, fmt.Errorf("unmarshal fees: %w", err)
	}

	return model.LoanProduct{
		ProductID:              productID,
		VersionNumber:          versionNumber,
		ProductName:            productName,
		ProductType:            productType,
		MinLoanAmount:          minAmount,
		MaxLoanAmount:          maxAmount,
		InterestRateType:       rateType,
		BaseInterestRate:       baseRate,
		TermOptions:            termOptions,
		EligibilityCriteria:    eligibility,
		Fees:                   fees,
		CollateralRequirements: collateralRequirements,
		UnderwritingGuidelines: underwritingGuidelines,
		Status:                 status,
		CreatedAt:              createdAt,
		UpdatedAt:              updatedAt,
	}, nil
}
