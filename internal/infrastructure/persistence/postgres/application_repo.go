package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
	pkgpostgres "github.com/lenddesk/los/pkg/postgres"
)

// LoanApplicationRepo implements port.LoanApplicationRepository.
type LoanApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewLoanApplicationRepo creates a new repository backed by PostgreSQL.
func NewLoanApplicationRepo(pool *pgxpool.Pool) *LoanApplicationRepo {
	return &LoanApplicationRepo{pool: pool}
}

// Save persists a loan application (upsert by ID with optimistic locking).
func (r *LoanApplicationRepo) Save(ctx context.Context, app model.LoanApplication) error {
	return saveApplication(ctx, r.pool, app)
}

// saveApplication runs the upsert against q, which is either the pool or a
// transaction (see UnderwritingWriteRepo).
func saveApplication(ctx context.Context, q pkgpostgres.Querier, app model.LoanApplication) error {
	query := `
		INSERT INTO loan_applications (
			id, business_id, product_id, product_version, status,
			submission_date, requested_amount, loan_purpose, term_months,
			collateral_type, collateral_value, applicant_email,
			approved_amount, interest_rate, dscr, last_review_date,
			underwriter_notes, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (id) DO UPDATE SET
			status            = EXCLUDED.status,
			approved_amount   = EXCLUDED.approved_amount,
			interest_rate     = EXCLUDED.interest_rate,
			dscr              = EXCLUDED.dscr,
			last_review_date  = EXCLUDED.last_review_date,
			underwriter_notes = EXCLUDED.underwriter_notes,
			version           = loan_applications.version + 1,
			updated_at        = EXCLUDED.updated_at
		WHERE loan_applications.version = $18
	`
	tag, err := q.Exec(ctx, query,
		app.ID(), app.BusinessID(), app.ProductID(), app.ProductVersion(),
		app.Status().String(),
		app.SubmissionDate(), app.RequestedAmount(), app.LoanPurpose(), app.TermMonths(),
		app.CollateralType(), app.CollateralValue(), app.ApplicantEmail(),
		app.ApprovedAmount(), app.InterestRate(), app.DSCR(), nullableTime(app.LastReviewDate()),
		app.UnderwriterNotes(), app.Version(), app.CreatedAt(), app.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on loan application")
	}
	return nil
}

// FindByID retrieves a single loan application.
func (r *LoanApplicationRepo) FindByID(ctx context.Context, id string) (model.LoanApplication, error) {
	query := applicationSelect + ` WHERE id = $1`
	app, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LoanApplication{}, fmt.Errorf("loan application %s: %w", id, valueobject.ErrNotFound)
	}
	return app, err
}

// FindByBusinessID retrieves all applications submitted by a business,
// newest first.
func (r *LoanApplicationRepo) FindByBusinessID(ctx context.Context, businessID string) ([]model.LoanApplication, error) {
	query := applicationSelect + ` WHERE business_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("query loan applications: %w", err)
	}
	defer rows.Close()

	var result []model.LoanApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

const applicationSelect = `
	SELECT id, business_id, product_id, product_version, status,
	       submission_date, requested_amount, loan_purpose, term_months,
	       collateral_type, collateral_value, applicant_email,
	       approved_amount, interest_rate, dscr, last_review_date,
	       underwriter_notes, version, created_at, updated_at
	FROM loan_applications`

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanApplication(s scannable) (model.LoanApplication, error) {
	var (
		id, businessID, productID        string
		productVersion                   int
		statusStr                        string
		submissionDate                   time.Time
		requestedAmount                  decimal.Decimal
		loanPurpose                      string
		termMonths                       int
		collateralType                   string
		collateralValue, approvedAmount  decimal.Decimal
		applicantEmail                   string
		interestRate, dscr               float64
		lastReviewDate                   *time.Time
		underwriterNotes                 string
		version                          int
		createdAt, updatedAt             time.Time
	)

	err := s.Scan(
		&id, &businessID, &productID, &productVersion, &statusStr,
		&submissionDate, &requestedAmount, &loanPurpose, &termMonths,
		&collateralType, &collateralValue, &applicantEmail,
		&approvedAmount, &interestRate, &dscr, &lastReviewDate,
		&underwriterNotes, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LoanApplication{}, err
		}
		return model.LoanApplication{}, fmt.Errorf("scan loan application: %w", err)
	}

	status, err := valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.LoanApplication{}, fmt.Errorf("parse status: %w", err)
	}

	var reviewed time.Time
	if lastReviewDate != nil {
		reviewed = *lastReviewDate
	}

	return model.ReconstructLoanApplication(
		id, businessID, productID, productVersion, status,
		submissionDate, requestedAmount, loanPurpose, termMonths,
		collateralType, collateralValue, applicantEmail,
		approvedAmount, interestRate, dscr, reviewed,
		underwriterNotes, version, createdAt, updatedAt,
	), nil
}

// nullableTime maps the zero time to SQL NULL.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
