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
	"github.com/lenddesk/los/internal/domain/valueobject"
	pkgpostgres "github.com/lenddesk/los/pkg/postgres"
)

// ---------------------------------------------------------------------------
// CreditReportRepo
// ---------------------------------------------------------------------------

// CreditReportRepo implements port.CreditReportRepository. Reports are keyed
// one-to-one with an application; a re-run replaces the stored report.
type CreditReportRepo struct {
	pool *pgxpool.Pool
}

// NewCreditReportRepo creates a new repository backed by PostgreSQL.
func NewCreditReportRepo(pool *pgxpool.Pool) *CreditReportRepo {
	return &CreditReportRepo{pool: pool}
}

// Save upserts a credit report keyed by application ID.
func (r *CreditReportRepo) Save(ctx context.Context, report model.CreditReport) error {
	query := `
		INSERT INTO credit_reports (
			application_id, credit_score, report_date, delinquencies,
			bankruptcies, credit_utilization, credit_history_months
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (application_id) DO UPDATE SET
			credit_score          = EXCLUDED.credit_score,
			report_date           = EXCLUDED.report_date,
			delinquencies         = EXCLUDED.delinquencies,
			bankruptcies          = EXCLUDED.bankruptcies,
			credit_utilization    = EXCLUDED.credit_utilization,
			credit_history_months = EXCLUDED.credit_history_months
	`
	_, err := r.pool.Exec(ctx, query,
		report.ApplicationID, report.CreditScore, report.ReportDate, report.Delinquencies,
		report.Bankruptcies, report.CreditUtilization, report.CreditHistoryMonths,
	)
	if err != nil {
		return fmt.Errorf("save credit report: %w", err)
	}
	return nil
}

// FindByApplicationID retrieves the stored report for an application.
func (r *CreditReportRepo) FindByApplicationID(ctx context.Context, applicationID string) (model.CreditReport, error) {
	query := `
		SELECT application_id, credit_score, report_date, delinquencies,
		       bankruptcies, credit_utilization, credit_history_months
		FROM credit_reports
		WHERE application_id = $1
	`
	var report model.CreditReport
	err := r.pool.QueryRow(ctx, query, applicationID).Scan(
		&report.ApplicationID, &report.CreditScore, &report.ReportDate, &report.Delinquencies,
		&report.Bankruptcies, &report.CreditUtilization, &report.CreditHistoryMonths,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.CreditReport{}, fmt.Errorf("credit report for application %s: %w", applicationID, valueobject.ErrNotFound)
	}
	if err != nil {
		return model.CreditReport{}, fmt.Errorf("scan credit report: %w", err)
	}
	return report, nil
}

// ---------------------------------------------------------------------------
// UnderwritingDecisionRepo
// ---------------------------------------------------------------------------

// UnderwritingDecisionRepo implements port.UnderwritingDecisionRepository.
type UnderwritingDecisionRepo struct {
	pool *pgxpool.Pool
}

// NewUnderwritingDecisionRepo creates a new repository backed by PostgreSQL.
func NewUnderwritingDecisionRepo(pool *pgxpool.Pool) *UnderwritingDecisionRepo {
	return &UnderwritingDecisionRepo{pool: pool}
}

// Upsert writes the decision keyed by application ID, replacing any prior
// evaluation outcome.
func (r *UnderwritingDecisionRepo) Upsert(ctx context.Context, decision model.UnderwritingDecision) error {
	return upsertDecision(ctx, r.pool, decision)
}

// upsertDecision runs the upsert against q, which is either the pool or a
// transaction (see UnderwritingWriteRepo).
func upsertDecision(ctx context.Context, q pkgpostgres.Querier, decision model.UnderwritingDecision) error {
	conditions, err := json.Marshal(decision.Conditions)
	if err != nil {
		return fmt.Errorf("marshal conditions: %w", err)
	}
	reasonCodes, err := json.Marshal(decision.ReasonCodes)
	if err != nil {
		return fmt.Errorf("marshal reason codes: %w", err)
	}

	query := `
		INSERT INTO underwriting_decisions (
			application_id, decision, decision_date, approved_amount,
			interest_rate, term_months, dscr, conditions, reason_codes,
			underwriter_notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (application_id) DO UPDATE SET
			decision          = EXCLUDED.decision,
			decision_date     = EXCLUDED.decision_date,
			approved_amount   = EXCLUDED.approved_amount,
			interest_rate     = EXCLUDED.interest_rate,
			term_months       = EXCLUDED.term_months,
			dscr              = EXCLUDED.dscr,
			conditions        = EXCLUDED.conditions,
			reason_codes      = EXCLUDED.reason_codes,
			underwriter_notes = EXCLUDED.underwriter_notes
	`
	_, err = q.Exec(ctx, query,
		decision.ApplicationID, string(decision.Decision), decision.DecisionDate, decision.ApprovedAmount,
		decision.InterestRate, decision.TermMonths, decision.DSCR, conditions, reasonCodes,
		decision.UnderwriterNotes,
	)
	if err != nil {
		return fmt.Errorf("save underwriting decision: %w", err)
	}
	return nil
}

// FindByApplicationID retrieves the stored decision for an application.
func (r *UnderwritingDecisionRepo) FindByApplicationID(ctx context.Context, applicationID string) (model.UnderwritingDecision, error) {
	query := `
		SELECT application_id, decision, decision_date, approved_amount,
		       interest_rate, term_months, dscr, conditions, reason_codes,
		       underwriter_notes
		FROM underwriting_decisions
		WHERE application_id = $1
	`

	var (
		decision                  model.UnderwritingDecision
		decisionStr               string
		decisionDate              time.Time
		approvedAmount            decimal.Decimal
		conditionsRaw, reasonsRaw []byte
	)
	err := r.pool.QueryRow(ctx, query, applicationID).Scan(
		&decision.ApplicationID, &decisionStr, &decisionDate, &approvedAmount,
		&decision.InterestRate, &decision.TermMonths, &decision.DSCR, &conditionsRaw, &reasonsRaw,
		&decision.UnderwriterNotes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.UnderwritingDecision{}, fmt.Errorf(
			"underwriting decision for application %s: %w", applicationID, valueobject.ErrNotFound)
	}
	if err != nil {
		return model.UnderwritingDecision{}, fmt.Errorf("scan underwriting decision: %w", err)
	}

	outcome, err := valueobject.NewDecisionOutcome(decisionStr)
	if err != nil {
		return model.UnderwritingDecision{}, fmt.Errorf("parse decision outcome: %w", err)
	}
	decision.Decision = outcome
	decision.DecisionDate = decisionDate
	decision.ApprovedAmount = approvedAmount

	if err := json.Unmarshal(conditionsRaw, &decision.Conditions); err != nil {
		return model.UnderwritingDecision{}, fmt.Errorf("unmarshal conditions: %w", err)
	}
	if err := json.Unmarshal(reasonsRaw, &decision.ReasonCodes); err != nil {
		return model.UnderwritingDecision{}, fmt.Errorf("unmarshal reason codes: %w", err)
	}
	return decision, nil
}
