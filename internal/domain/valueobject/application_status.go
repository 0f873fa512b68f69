package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ApplicationStatus – immutable value object with an explicit transition table
// ---------------------------------------------------------------------------

// ApplicationStatus represents the lifecycle stage of a loan application.
type ApplicationStatus struct {
	value string
}

const (
	appStatusSubmitted = "SUBMITTED"
	appStatusInReview  = "IN_REVIEW"
	appStatusApproved  = "APPROVED"
	appStatusDenied    = "DENIED"
	appStatusFunded    = "FUNDED"
)

var (
	ApplicationStatusSubmitted = ApplicationStatus{value: appStatusSubmitted}
	ApplicationStatusInReview  = ApplicationStatus{value: appStatusInReview}
	ApplicationStatusApproved  = ApplicationStatus{value: appStatusApproved}
	ApplicationStatusDenied    = ApplicationStatus{value: appStatusDenied}
	ApplicationStatusFunded    = ApplicationStatus{value: appStatusFunded}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	appStatusSubmitted: ApplicationStatusSubmitted,
	appStatusInReview:  ApplicationStatusInReview,
	appStatusApproved:  ApplicationStatusApproved,
	appStatusDenied:    ApplicationStatusDenied,
	appStatusFunded:    ApplicationStatusFunded,
}

// allowedTransitions is the closed transition table:
// SUBMITTED -> IN_REVIEW -> {APPROVED, DENIED}; APPROVED -> FUNDED.
var allowedTransitions = map[string][]string{
	appStatusSubmitted: {appStatusInReview},
	appStatusInReview:  {appStatusApproved, appStatusDenied},
	appStatusApproved:  {appStatusFunded},
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool {
	return s.value == other.value
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to next.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range allowedTransitions[s.value] {
		if allowed == next.value {
			return true
		}
	}
	return false
}

// IsTerminalDecision reports whether an underwriting decision has already
// been recorded for this status.
func (s ApplicationStatus) IsTerminalDecision() bool {
	return s.value == appStatusApproved || s.value == appStatusDenied || s.value == appStatusFunded
}
