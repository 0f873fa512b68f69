package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Application submission
// ---------------------------------------------------------------------------

// AddressInput mirrors model.Address for request payloads.
type AddressInput struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// ContactInput mirrors model.ContactInformation.
type ContactInput struct {
	PrimaryContactName string `json:"primary_contact_name"`
	PhoneNumber        string `json:"phone_number"`
	Email              string `json:"email"`
}

// BalanceSheetInput mirrors model.BalanceSheet.
type BalanceSheetInput struct {
	TotalAssets        decimal.Decimal `json:"total_assets"`
	TotalLiabilities   decimal.Decimal `json:"total_liabilities"`
	OwnersEquity       decimal.Decimal `json:"owners_equity"`
	CurrentAssets      decimal.Decimal `json:"current_assets"`
	CurrentLiabilities decimal.Decimal `json:"current_liabilities"`
}

// IncomeStatementInput mirrors model.IncomeStatement.
type IncomeStatementInput struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetIncome decimal.Decimal `json:"net_income"`
}

// CashFlowStatementInput mirrors model.CashFlowStatement.
type CashFlowStatementInput struct {
	OperatingCashFlow decimal.Decimal `json:"operating_cash_flow"`
	InvestingCashFlow decimal.Decimal `json:"investing_cash_flow"`
	FinancingCashFlow decimal.Decimal `json:"financing_cash_flow"`
}

// FinancialStatementsInput bundles the three statements.
type FinancialStatementsInput struct {
	BalanceSheet      BalanceSheetInput      `json:"balance_sheet"`
	IncomeStatement   IncomeStatementInput   `json:"income_statement"`
	CashFlowStatement CashFlowStatementInput `json:"cash_flow_statement"`
}

// CreditHistoryInput mirrors model.CreditHistory.
type CreditHistoryInput struct {
	Bankruptcies   int `json:"bankruptcies"`
	Liens          int `json:"liens"`
	Judgments      int `json:"judgments"`
	DefaultedLoans int `json:"defaulted_loans"`
}

// BusinessInput carries the borrower profile submitted with an application.
type BusinessInput struct {
	LegalName           string                   `json:"legal_name"`
	TradingName         string                   `json:"trading_name,omitempty"`
	Structure           string                   `json:"structure"`
	TaxID               string                   `json:"tax_id"`
	DateEstablished     time.Time                `json:"date_established"`
	NumberOfEmployees   int                      `json:"number_of_employees"`
	AnnualRevenue       decimal.Decimal          `json:"annual_revenue"`
	IndustryCode        string                   `json:"industry_code"`
	Address             AddressInput             `json:"address"`
	ContactInformation  ContactInput             `json:"contact_information"`
	FinancialStatements FinancialStatementsInput `json:"financial_statements"`
	CreditHistory       *CreditHistoryInput      `json:"credit_history,omitempty"`
	Email               string                   `json:"email"`
}

// SubmitApplicationRequest is the POST /applications payload.
// ProductVersion 0 resolves to the product's latest version.
type SubmitApplicationRequest struct {
	Business        BusinessInput   `json:"business"`
	ProductID       string          `json:"product_id"`
	ProductVersion  int             `json:"product_version,omitempty"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	LoanPurpose     string          `json:"loan_purpose"`
	LoanTerm        int             `json:"loan_term"`
	CollateralType  string          `json:"collateral_type,omitempty"`
	CollateralValue decimal.Decimal `json:"collateral_value,omitempty"`
	ApplicantEmail  string          `json:"applicant_email"`
}

// ApplicationResponse is the canonical application view.
type ApplicationResponse struct {
	ID               string             `json:"id"`
	BusinessID       string             `json:"business_id"`
	ProductID        string             `json:"product_id"`
	ProductVersion   int                `json:"product_version"`
	Status           string             `json:"status"`
	SubmissionDate   time.Time          `json:"submission_date"`
	RequestedAmount  decimal.Decimal    `json:"requested_amount"`
	LoanPurpose      string             `json:"loan_purpose"`
	LoanTerm         int                `json:"loan_term"`
	CollateralType   string             `json:"collateral_type,omitempty"`
	CollateralValue  decimal.Decimal    `json:"collateral_value,omitempty"`
	ApplicantEmail   string             `json:"applicant_email"`
	ApprovedAmount   decimal.Decimal    `json:"approved_amount,omitempty"`
	InterestRate     float64            `json:"interest_rate,omitempty"`
	DSCR             float64            `json:"dscr,omitempty"`
	LastReviewDate   *time.Time         `json:"last_review_date,omitempty"`
	UnderwriterNotes string             `json:"underwriter_notes,omitempty"`
	Documents        []DocumentResponse `json:"documents,omitempty"`
}

// ---------------------------------------------------------------------------
// Credit check and underwriting
// ---------------------------------------------------------------------------

// CreditReportResponse is the credit-check output.
type CreditReportResponse struct {
	ApplicationID       string    `json:"application_id"`
	CreditScore         int       `json:"credit_score"`
	ReportDate          time.Time `json:"report_date"`
	Delinquencies       int       `json:"delinquencies"`
	Bankruptcies        int       `json:"bankruptcies"`
	CreditUtilization   float64   `json:"credit_utilization"`
	CreditHistoryMonths int       `json:"credit_history_months"`
}

// DecisionResponse is the underwriting engine's output view.
type DecisionResponse struct {
	ApplicationID    string          `json:"application_id"`
	Decision         string          `json:"decision"`
	DecisionDate     time.Time       `json:"decision_date"`
	ApprovedAmount   decimal.Decimal `json:"approved_amount,omitempty"`
	InterestRate     float64         `json:"interest_rate,omitempty"`
	Term             int             `json:"term,omitempty"`
	DSCR             float64         `json:"dscr,omitempty"`
	Conditions       []string        `json:"conditions,omitempty"`
	ReasonCodes      []string        `json:"reason_codes,omitempty"`
	UnderwriterNotes string          `json:"underwriter_notes,omitempty"`
}

// AmortizationEntryResponse is one period of a repayment schedule.
type AmortizationEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// ---------------------------------------------------------------------------
// Documents
// ---------------------------------------------------------------------------

// UploadDocumentRequest is the POST /documents payload. FileContent is
// base64-encoded.
type UploadDocumentRequest struct {
	ApplicationID string `json:"application_id"`
	DocumentType  string `json:"document_type"`
	FileContent   string `json:"file_content"`
}

// DocumentResponse is the stored document metadata view.
type DocumentResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	DocumentType  string    `json:"document_type"`
	FileLocation  string    `json:"file_location"`
	UploadDate    time.Time `json:"upload_date"`
}

// ---------------------------------------------------------------------------
// Loan product catalog
// ---------------------------------------------------------------------------

// CreateProductRequest is the POST /loan-products payload. The catalog
// assigns productId, version 1, and ACTIVE status.
type CreateProductRequest struct {
	ProductName            string                     `json:"product_name"`
	ProductType            string                     `json:"product_type"`
	MinLoanAmount          decimal.Decimal            `json:"min_loan_amount"`
	MaxLoanAmount          decimal.Decimal            `json:"max_loan_amount"`
	InterestRateType       string                     `json:"interest_rate_type"`
	BaseInterestRate       float64                    `json:"base_interest_rate"`
	TermOptions            []int                      `json:"term_options"`
	EligibilityCriteria    EligibilityCriteriaInput   `json:"eligibility_criteria"`
	Fees                   map[string]decimal.Decimal `json:"fees,omitempty"`
	CollateralRequirements string                     `json:"collateral_requirements,omitempty"`
	UnderwritingGuidelines string                     `json:"underwriting_guidelines,omitempty"`
}

// EligibilityCriteriaInput mirrors model.EligibilityCriteria.
type EligibilityCriteriaInput struct {
	MinCreditScore int      `json:"min_credit_score"`
	Conditions     []string `json:"conditions,omitempty"`
}

// UpdateProductRequest carries partial field overrides. Nil fields keep the
// stored value. Used both for in-place updates and for new-version creation.
type UpdateProductRequest struct {
	ProductName            *string                    `json:"product_name,omitempty"`
	ProductType            *string                    `json:"product_type,omitempty"`
	MinLoanAmount          *decimal.Decimal           `json:"min_loan_amount,omitempty"`
	MaxLoanAmount          *decimal.Decimal           `json:"max_loan_amount,omitempty"`
	InterestRateType       *string                    `json:"interest_rate_type,omitempty"`
	BaseInterestRate       *float64                   `json:"base_interest_rate,omitempty"`
	TermOptions            []int                      `json:"term_options,omitempty"`
	EligibilityCriteria    *EligibilityCriteriaInput  `json:"eligibility_criteria,omitempty"`
	Fees                   map[string]decimal.Decimal `json:"fees,omitempty"`
	CollateralRequirements *string                    `json:"collateral_requirements,omitempty"`
	UnderwritingGuidelines *string                    `json:"underwriting_guidelines,omitempty"`
	Status                 *string                    `json:"status,omitempty"`
}

// SearchProductsRequest filters the catalog; empty fields are ignored.
type SearchProductsRequest struct {
	ProductType      string           `json:"product_type,omitempty"`
	MinAmount        *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount        *decimal.Decimal `json:"max_amount,omitempty"`
	InterestRateType string           `json:"interest_rate_type,omitempty"`
}

// ProductResponse is the catalog's product view.
type ProductResponse struct {
	ProductID              string                     `json:"product_id"`
	VersionNumber          int                        `json:"version_number"`
	ProductName            string                     `json:"product_name"`
	ProductType            string                     `json:"product_type"`
	MinLoanAmount          decimal.Decimal            `json:"min_loan_amount"`
	MaxLoanAmount          decimal.Decimal            `json:"max_loan_amount"`
	InterestRateType       string                     `json:"interest_rate_type"`
	BaseInterestRate       float64                    `json:"base_interest_rate"`
	TermOptions            []int                      `json:"term_options"`
	EligibilityCriteria    EligibilityCriteriaInput   `json:"eligibility_criteria"`
	Fees                   map[string]decimal.Decimal `json:"fees,omitempty"`
	CollateralRequirements string                     `json:"collateral_requirements,omitempty"`
	UnderwritingGuidelines string                     `json:"underwriting_guidelines,omitempty"`
	Status                 string                     `json:"status"`
	CreatedAt              time.Time                  `json:"created_at"`
	UpdatedAt              time.Time                  `json:"updated_at"`
}
