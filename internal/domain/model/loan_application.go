package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/event"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanApplication aggregate root
// ---------------------------------------------------------------------------

// LoanApplication is an immutable aggregate. Every mutation returns a new copy.
// Status changes go through the transition table in valueobject; any other
// ordering is rejected with ErrInvalidStatusTransition.
type LoanApplication struct {
	id               string
	businessID       string
	productID        string
	productVersion   int
	status           valueobject.ApplicationStatus
	submissionDate   time.Time
	requestedAmount  decimal.Decimal
	loanPurpose      string
	termMonths       int
	collateralType   string
	collateralValue  decimal.Decimal
	applicantEmail   string
	approvedAmount   decimal.Decimal
	interestRate     float64
	dscr             float64
	lastReviewDate   time.Time
	underwriterNotes string
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	domainEvents     []event.DomainEvent
}

// NewLoanApplication creates a brand-new application in SUBMITTED status.
// Product-range validation (amount within product limits, term among the
// product's term options) happens in the submission use case before this
// aggregate is persisted.
func NewLoanApplication(
	businessID, productID string,
	productVersion int,
	requestedAmount decimal.Decimal,
	loanPurpose string,
	termMonths int,
	collateralType string,
	collateralValue decimal.Decimal,
	applicantEmail string,
	now time.Time,
) (LoanApplication, error) {
	if businessID == "" {
		return LoanApplication{}, valueobject.NewValidationError("business ID is required")
	}
	if productID == "" {
		return LoanApplication{}, valueobject.NewValidationError("product ID is required")
	}
	if productVersion < 1 {
		return LoanApplication{}, valueobject.NewValidationError("product version must be at least 1")
	}
	if requestedAmount.LessThanOrEqual(decimal.Zero) {
		return LoanApplication{}, valueobject.NewValidationError("requested amount must be positive")
	}
	if termMonths <= 0 {
		return LoanApplication{}, valueobject.NewValidationError("loan term must be positive")
	}
	if applicantEmail == "" {
		return LoanApplication{}, valueobject.NewValidationError("applicant email is required")
	}

	id := uuid.New().String()
	app := LoanApplication{
		id:              id,
		businessID:      businessID,
		productID:       productID,
		productVersion:  productVersion,
		status:          valueobject.ApplicationStatusSubmitted,
		submissionDate:  now,
		requestedAmount: requestedAmount,
		loanPurpose:     loanPurpose,
		termMonths:      termMonths,
		collateralType:  collateralType,
		collateralValue: collateralValue,
		applicantEmail:  applicantEmail,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}

	app.domainEvents = append(app.domainEvents, event.NewApplicationSubmitted(
		id, businessID, productID, productVersion, requestedAmount, termMonths, loanPurpose,
	))
	return app, nil
}

// ReconstructLoanApplication rebuilds an aggregate from persistence without
// side-effects.
func ReconstructLoanApplication(
	id, businessID, productID string,
	productVersion int,
	status valueobject.ApplicationStatus,
	submissionDate time.Time,
	requestedAmount decimal.Decimal,
	loanPurpose string,
	termMonths int,
	collateralType string,
	collateralValue decimal.Decimal,
	applicantEmail string,
	approvedAmount decimal.Decimal,
	interestRate, dscr float64,
	lastReviewDate time.Time,
	underwriterNotes string,
	version int,
	createdAt, updatedAt time.Time,
) LoanApplication {
	return LoanApplication{
		id:               id,
		businessID:       businessID,
		productID:        productID,
		productVersion:   productVersion,
		status:           status,
		submissionDate:   submissionDate,
		requestedAmount:  requestedAmount,
		loanPurpose:      loanPurpose,
		termMonths:       termMonths,
		collateralType:   collateralType,
		collateralValue:  collateralValue,
		applicantEmail:   applicantEmail,
		approvedAmount:   approvedAmount,
		interestRate:     interestRate,
		dscr:             dscr,
		lastReviewDate:   lastReviewDate,
		underwriterNotes: underwriterNotes,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// BeginReview transitions SUBMITTED -> IN_REVIEW.
func (a LoanApplication) BeginReview(now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusInReview) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusInReview
	next.lastReviewDate = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next, nil
}

// Approve transitions IN_REVIEW -> APPROVED, recording the approved terms
// and the DSCR computed by the underwriting engine.
func (a LoanApplication) Approve(
	approvedAmount decimal.Decimal,
	interestRate, dscr float64,
	notes string,
	now time.Time,
) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusApproved) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusApproved
	next.approvedAmount = approvedAmount
	next.interestRate = interestRate
	next.dscr = dscr
	next.underwriterNotes = notes
	next.lastReviewDate = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationApproved(
		a.id, approvedAmount, interestRate, dscr,
	))
	return next, nil
}

// Deny transitions IN_REVIEW -> DENIED.
func (a LoanApplication) Deny(reasonCodes []string, dscr float64, notes string, now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusDenied) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusDenied
	next.dscr = dscr
	next.underwriterNotes = notes
	next.lastReviewDate = now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationDenied(a.id, reasonCodes))
	return next, nil
}

// MarkFunded transitions APPROVED -> FUNDED.
func (a LoanApplication) MarkFunded(now time.Time) (LoanApplication, error) {
	if !a.status.CanTransitionTo(valueobject.ApplicationStatusFunded) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.ApplicationStatusFunded
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationFunded(a.id))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a LoanApplication) ID() string                               { return a.id }
func (a LoanApplication) BusinessID() string                       { return a.businessID }
func (a LoanApplication) ProductID() string                        { return a.productID }
func (a LoanApplication) ProductVersion() int                      { return a.productVersion }
func (a LoanApplication) Status() valueobject.ApplicationStatus    { return a.status }
func (a LoanApplication) SubmissionDate() time.Time                { return a.submissionDate }
func (a LoanApplication) RequestedAmount() decimal.Decimal         { return a.requestedAmount }
func (a LoanApplication) LoanPurpose() string                      { return a.loanPurpose }
func (a LoanApplication) TermMonths() int                          { return a.termMonths }
func (a LoanApplication) CollateralType() string                   { return a.collateralType }
func (a LoanApplication) CollateralValue() decimal.Decimal         { return a.collateralValue }
func (a LoanApplication) ApplicantEmail() string                   { return a.applicantEmail }
func (a LoanApplication) ApprovedAmount() decimal.Decimal          { return a.approvedAmount }
func (a LoanApplication) InterestRate() float64                    { return a.interestRate }
func (a LoanApplication) DSCR() float64                            { return a.dscr }
func (a LoanApplication) LastReviewDate() time.Time                { return a.lastReviewDate }
func (a LoanApplication) UnderwriterNotes() string                 { return a.underwriterNotes }
func (a LoanApplication) Version() int                             { return a.version }
func (a LoanApplication) CreatedAt() time.Time                     { return a.createdAt }
func (a LoanApplication) UpdatedAt() time.Time                     { return a.updatedAt }
func (a LoanApplication) DomainEvents() []event.DomainEvent        { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a LoanApplication) ClearEvents() LoanApplication {
	next := a
	next.domainEvents = nil
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
