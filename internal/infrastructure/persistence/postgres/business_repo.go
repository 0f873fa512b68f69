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
)

// BusinessRepo implements port.BusinessRepository. The nested profile
// documents (address, contacts, statements, credit history) live in JSONB.
type BusinessRepo struct {
	pool *pgxpool.Pool
}

// NewBusinessRepo creates a new repository backed by PostgreSQL.
func NewBusinessRepo(pool *pgxpool.Pool) *BusinessRepo {
	return &BusinessRepo{pool: pool}
}

// Save persists a business. Businesses are immutable after creation, so a
// conflicting ID is left untouched.
func (r *BusinessRepo) Save(ctx context.Context, business model.Business) error {
	address, err := json.Marshal(business.Address)
	if err != nil {
		return fmt.Errorf("marshal address: %w", err)
	}
	contact, err := json.Marshal(business.ContactInformation)
	if err != nil {
		return fmt.Errorf("marshal contact information: %w", err)
	}
	statements, err := json.Marshal(business.FinancialStatements)
	if err != nil {
		return fmt.Errorf("marshal financial statements: %w", err)
	}
	var creditHistory []byte
	if business.CreditHistory != nil {
		creditHistory, err = json.Marshal(business.CreditHistory)
		if err != nil {
			return fmt.Errorf("marshal credit history: %w", err)
		}
	}

	query := `
		INSERT INTO businesses (
			id, legal_name, trading_name, structure, tax_id,
			date_established, number_of_employees, annual_revenue,
			industry_code, address, contact_information,
			financial_statements, credit_history, email, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = r.pool.Exec(ctx, query,
		business.ID, business.LegalName, business.TradingName,
		string(business.Structure), business.TaxID,
		business.DateEstablished, business.NumberOfEmployees, business.AnnualRevenue,
		business.IndustryCode, address, contact,
		statements, creditHistory, business.Email, business.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save business: %w", err)
	}
	return nil
}

// FindByID retrieves a business by ID.
func (r *BusinessRepo) FindByID(ctx context.Context, id string) (model.Business, error) {
	query := `
		SELECT id, legal_name, trading_name, structure, tax_id,
		       date_established, number_of_employees, annual_revenue,
		       industry_code, address, contact_information,
		       financial_statements, credit_history, email, created_at
		FROM businesses
		WHERE id = $1
	`

	var (
		business                                       model.Business
		structureStr                                   string
		dateEstablished, createdAt                     time.Time
		annualRevenue                                  decimal.Decimal
		addressRaw, contactRaw, statementsRaw, histRaw []byte
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&business.ID, &business.LegalName, &business.TradingName, &structureStr, &business.TaxID,
		&dateEstablished, &business.NumberOfEmployees, &annualRevenue,
		&business.IndustryCode, &addressRaw, &contactRaw,
		&statementsRaw, &histRaw, &business.Email, &createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Business{}, fmt.Errorf("business %s: %w", id, valueobject.ErrNotFound)
	}
	if err != nil {
		return model.Business{}, fmt.Errorf("scan business: %w", err)
	}

	structure, err := valueobject.NewBusinessStructure(structureStr)
	if err != nil {
		return model.Business{}, fmt.Errorf("parse business structure: %w", err)
	}
	business.Structure = structure
	business.DateEstablished = dateEstablished
	business.AnnualRevenue = annualRevenue
	business.CreatedAt = createdAt

	if err := json.Unmarshal(addressRaw, &business.Address); err != nil {
		return model.Business{}, fmt.Errorf("unmarshal address: %w", err)
	}
	if err := json.Unmarshal(contactRaw, &business.ContactInformation); err != nil {
		return model.Business{}, fmt.Errorf("unmarshal contact information: %w", err)
	}
	if err := json.Unmarshal(statementsRaw, &business.FinancialStatements); err != nil {
		return model.Business{}, fmt.Errorf("unmarshal financial statements: %w", err)
	}
	if len(histRaw) > 0 {
		business.CreditHistory = &model.CreditHistory{}
		if err := json.Unmarshal(histRaw, business.CreditHistory); err != nil {
			return model.Business{}, fmt.Errorf("unmarshal credit history: %w", err)
		}
	}
	return business, nil
}
