package event

import (
	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Loan application events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a new application enters the system.
type ApplicationSubmitted struct {
	events.BaseEvent
	BusinessID      string          `json:"business_id"`
	ProductID       string          `json:"product_id"`
	ProductVersion  int             `json:"product_version"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	TermMonths      int             `json:"term_months"`
	LoanPurpose     string          `json:"loan_purpose"`
}

func NewApplicationSubmitted(
	applicationID, businessID, productID string,
	productVersion int,
	requestedAmount decimal.Decimal,
	termMonths int,
	loanPurpose string,
) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:       events.NewBaseEvent("los.application.submitted", applicationID, "LoanApplication"),
		BusinessID:      businessID,
		ProductID:       productID,
		ProductVersion:  productVersion,
		RequestedAmount: requestedAmount,
		TermMonths:      termMonths,
		LoanPurpose:     loanPurpose,
	}
}

// ApplicationApproved is raised when underwriting approves an application.
type ApplicationApproved struct {
	events.BaseEvent
	ApprovedAmount decimal.Decimal `json:"approved_amount"`
	InterestRate   float64         `json:"interest_rate"`
	DSCR           float64         `json:"dscr"`
}

func NewApplicationApproved(
	applicationID string,
	approvedAmount decimal.Decimal,
	interestRate, dscr float64,
) ApplicationApproved {
	return ApplicationApproved{
		BaseEvent:      events.NewBaseEvent("los.application.approved", applicationID, "LoanApplication"),
		ApprovedAmount: approvedAmount,
		InterestRate:   interestRate,
		DSCR:           dscr,
	}
}

// ApplicationDenied is raised when underwriting denies an application.
type ApplicationDenied struct {
	events.BaseEvent
	ReasonCodes []string `json:"reason_codes"`
}

func NewApplicationDenied(applicationID string, reasonCodes []string) ApplicationDenied {
	return ApplicationDenied{
		BaseEvent:   events.NewBaseEvent("los.application.denied", applicationID, "LoanApplication"),
		ReasonCodes: reasonCodes,
	}
}

// ApplicationFunded is raised when an approved application is funded.
type ApplicationFunded struct {
	events.BaseEvent
}

func NewApplicationFunded(applicationID string) ApplicationFunded {
	return ApplicationFunded{
		BaseEvent: events.NewBaseEvent("los.application.funded", applicationID, "LoanApplication"),
	}
}

// ---------------------------------------------------------------------------
// Supporting record events
// ---------------------------------------------------------------------------

// DocumentUploaded is raised when a supporting document is attached to an
// application.
type DocumentUploaded struct {
	events.BaseEvent
	DocumentID   string `json:"document_id"`
	DocumentType string `json:"document_type"`
	FileLocation string `json:"file_location"`
}

func NewDocumentUploaded(applicationID, documentID, documentType, fileLocation string) DocumentUploaded {
	return DocumentUploaded{
		BaseEvent:    events.NewBaseEvent("los.document.uploaded", applicationID, "LoanApplication"),
		DocumentID:   documentID,
		DocumentType: documentType,
		FileLocation: fileLocation,
	}
}

// CreditReportRecorded is raised when a credit check completes.
type CreditReportRecorded struct {
	events.BaseEvent
	CreditScore int `json:"credit_score"`
}

func NewCreditReportRecorded(applicationID string, creditScore int) CreditReportRecorded {
	return CreditReportRecorded{
		BaseEvent:   events.NewBaseEvent("los.credit_report.recorded", applicationID, "LoanApplication"),
		CreditScore: creditScore,
	}
}
