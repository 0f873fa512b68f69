package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ProductStatus – immutable value object
// ---------------------------------------------------------------------------

// ProductStatus represents the lifecycle stage of a loan product version.
type ProductStatus struct {
	value string
}

const (
	productStatusActive     = "ACTIVE"
	productStatusInactive   = "INACTIVE"
	productStatusDeprecated = "DEPRECATED"
)

var (
	ProductStatusActive     = ProductStatus{value: productStatusActive}
	ProductStatusInactive   = ProductStatus{value: productStatusInactive}
	ProductStatusDeprecated = ProductStatus{value: productStatusDeprecated}
)

var validProductStatuses = map[string]ProductStatus{
	productStatusActive:     ProductStatusActive,
	productStatusInactive:   ProductStatusInactive,
	productStatusDeprecated: ProductStatusDeprecated,
}

// NewProductStatus creates a ProductStatus from a raw string.
func NewProductStatus(s string) (ProductStatus, error) {
	v, ok := validProductStatuses[s]
	if !ok {
		return ProductStatus{}, fmt.Errorf("invalid product status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ProductStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ProductStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ProductStatus) Equal(other ProductStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// InterestRateType
// ---------------------------------------------------------------------------

// InterestRateType distinguishes fixed from variable pricing.
type InterestRateType string

const (
	InterestRateFixed    InterestRateType = "FIXED"
	InterestRateVariable InterestRateType = "VARIABLE"
)

// NewInterestRateType validates a raw rate type string.
func NewInterestRateType(s string) (InterestRateType, error) {
	switch InterestRateType(s) {
	case InterestRateFixed, InterestRateVariable:
		return InterestRateType(s), nil
	}
	return "", fmt.Errorf("invalid interest rate type: %q", s)
}

// ---------------------------------------------------------------------------
// BusinessStructure
// ---------------------------------------------------------------------------

// BusinessStructure is the legal structure of a borrowing business.
type BusinessStructure string

const (
	StructureSoleProprietorship BusinessStructure = "SOLE_PROPRIETORSHIP"
	StructurePartnership        BusinessStructure = "PARTNERSHIP"
	StructureLLC                BusinessStructure = "LLC"
	StructureCorporation        BusinessStructure = "CORPORATION"
)

// NewBusinessStructure validates a raw structure string.
func NewBusinessStructure(s string) (BusinessStructure, error) {
	switch BusinessStructure(s) {
	case StructureSoleProprietorship, StructurePartnership, StructureLLC, StructureCorporation:
		return BusinessStructure(s), nil
	}
	return "", fmt.Errorf("invalid business structure: %q", s)
}

// ---------------------------------------------------------------------------
// DecisionOutcome
// ---------------------------------------------------------------------------

// DecisionOutcome is the result category of an underwriting evaluation.
type DecisionOutcome string

const (
	DecisionApproved     DecisionOutcome = "APPROVED"
	DecisionDenied       DecisionOutcome = "DENIED"
	DecisionNeedMoreInfo DecisionOutcome = "NEED_MORE_INFO"
)

// NewDecisionOutcome validates a raw decision string.
func NewDecisionOutcome(s string) (DecisionOutcome, error) {
	switch DecisionOutcome(s) {
	case DecisionApproved, DecisionDenied, DecisionNeedMoreInfo:
		return DecisionOutcome(s), nil
	}
	return "", fmt.Errorf("invalid decision outcome: %q", s)
}
