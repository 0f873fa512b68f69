package model

import (
	"time"

	"github.com/lenddesk/los/internal/domain/valueobject"
)

// CreditReport is a point-in-time credit snapshot keyed one-to-one with an
// application. Immutable once created.
type CreditReport struct {
	ApplicationID       string
	CreditScore         int
	ReportDate          time.Time
	Delinquencies       int
	Bankruptcies        int
	CreditUtilization   float64
	CreditHistoryMonths int
}

// NewCreditReport validates and builds a credit report.
func NewCreditReport(
	applicationID string,
	creditScore int,
	reportDate time.Time,
	delinquencies, bankruptcies int,
	creditUtilization float64,
	creditHistoryMonths int,
) (CreditReport, error) {
	if applicationID == "" {
		return CreditReport{}, valueobject.NewValidationError("application ID is required")
	}
	if creditScore < 300 || creditScore > 850 {
		return CreditReport{}, valueobject.NewValidationError("credit score must be between 300 and 850, got %d", creditScore)
	}
	return CreditReport{
		ApplicationID:       applicationID,
		CreditScore:         creditScore,
		ReportDate:          reportDate,
		Delinquencies:       delinquencies,
		Bankruptcies:        bankruptcies,
		CreditUtilization:   creditUtilization,
		CreditHistoryMonths: creditHistoryMonths,
	}, nil
}
