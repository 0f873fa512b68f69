package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Business – borrower legal identity and financial profile
// ---------------------------------------------------------------------------

// Address is a postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// ContactInformation identifies the primary contact for a business.
type ContactInformation struct {
	PrimaryContactName string `json:"primary_contact_name"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
}

// BalanceSheet is a point-in-time snapshot of a business's financial position.
type BalanceSheet struct {
	TotalAssets        decimal.Decimal `json:"total_assets"`
	TotalLiabilities   decimal.Decimal `json:"total_liabilities"`
	OwnersEquity       decimal.Decimal `json:"owners_equity"`
	CurrentAssets      decimal.Decimal `json:"current_assets"`
	CurrentLiabilities decimal.Decimal `json:"current_liabilities"`
}

// IncomeStatement summarises a reporting period's earnings.
type IncomeStatement struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetIncome decimal.Decimal `json:"net_income"`
}

// CashFlowStatement summarises a reporting period's cash movements.
type CashFlowStatement struct {
	OperatingCashFlow decimal.Decimal `json:"operating_cash_flow"`
	InvestingCashFlow decimal.Decimal `json:"investing_cash_flow"`
	FinancingCashFlow decimal.Decimal `json:"financing_cash_flow"`
}

// FinancialStatements bundles the three statements underwriting reads.
type FinancialStatements struct {
	BalanceSheet      BalanceSheet      `json:"balance_sheet"`
	IncomeStatement   IncomeStatement   `json:"income_statement"`
	CashFlowStatement CashFlowStatement `json:"cash_flow_statement"`
}

// CreditHistory records prior adverse credit events for a business.
type CreditHistory struct {
	Bankruptcies   int `json:"bankruptcies"`
	Liens          int `json:"liens"`
	Judgments      int `json:"judgments"`
	DefaultedLoans int `json:"defaulted_loans"`
}

// Business is the borrower entity. It is created on application submission
// and immutable thereafter; applications reference it by ID.
type Business struct {
	ID                  string
	LegalName           string
	TradingName         string
	Structure           valueobject.BusinessStructure
	TaxID               string
	DateEstablished     time.Time
	NumberOfEmployees   int
	AnnualRevenue       decimal.Decimal
	IndustryCode        string
	Address             Address
	ContactInformation  ContactInformation
	FinancialStatements FinancialStatements
	CreditHistory       *CreditHistory
	Email               string
	CreatedAt           time.Time
}

// NewBusiness creates a Business with a generated ID, validating required
// identity fields.
func NewBusiness(
	legalName, tradingName string,
	structure valueobject.BusinessStructure,
	taxID string,
	dateEstablished time.Time,
	numberOfEmployees int,
	annualRevenue decimal.Decimal,
	industryCode string,
	address Address,
	contact ContactInformation,
	statements FinancialStatements,
	creditHistory *CreditHistory,
	email string,
	now time.Time,
) (Business, error) {
	if legalName == "" {
		return Business{}, valueobject.NewValidationError("business legal name is required")
	}
	if taxID == "" {
		return Business{}, valueobject.NewValidationError("business tax ID is required")
	}
	if annualRevenue.IsNegative() {
		return Business{}, valueobject.NewValidationError("annual revenue must not be negative")
	}

	return Business{
		ID:                  uuid.New().String(),
		LegalName:           legalName,
		TradingName:         tradingName,
		Structure:           structure,
		TaxID:               taxID,
		DateEstablished:     dateEstablished,
		NumberOfEmployees:   numberOfEmployees,
		AnnualRevenue:       annualRevenue,
		IndustryCode:        industryCode,
		Address:             address,
		ContactInformation:  contact,
		FinancialStatements: statements,
		CreditHistory:       creditHistory,
		Email:               email,
		CreatedAt:           now,
	}, nil
}
