package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/domain/event"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanApplicationRepository persists and retrieves loan applications.
// Save is an optimistic-concurrency upsert: a stale aggregate version fails.
type LoanApplicationRepository interface {
	Save(ctx context.Context, app model.LoanApplication) error
	FindByID(ctx context.Context, id string) (model.LoanApplication, error)
	FindByBusinessID(ctx context.Context, businessID string) ([]model.LoanApplication, error)
}

// ProductSearchCriteria filters a catalog search; nil/empty fields are
// ignored and the remaining criteria combine with logical AND.
// MinAmount matches products whose minimum loan amount is at least the
// given value; MaxAmount matches products whose maximum is at most it.
type ProductSearchCriteria struct {
	ProductType      string
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	InterestRateType string
}

// LoanProductRepository persists and retrieves versioned loan products.
// Save writes a (productID, versionNumber) record; an existing pair is
// silently overwritten, matching the storage-key-only uniqueness of the
// catalog.
type LoanProductRepository interface {
	Save(ctx context.Context, product model.LoanProduct) error
	Update(ctx context.Context, product model.LoanProduct) error
	FindVersion(ctx context.Context, productID string, versionNumber int) (model.LoanProduct, error)
	FindLatest(ctx context.Context, productID string) (model.LoanProduct, error)
	FindAllVersions(ctx context.Context, productID string) ([]model.LoanProduct, error)
	List(ctx context.Context) ([]model.LoanProduct, error)
	Search(ctx context.Context, criteria ProductSearchCriteria) ([]model.LoanProduct, error)
}

// BusinessRepository persists and retrieves borrower businesses.
type BusinessRepository interface {
	Save(ctx context.Context, business model.Business) error
	FindByID(ctx context.Context, id string) (model.Business, error)
}

// CreditReportRepository persists and retrieves credit reports, keyed
// one-to-one with an application.
type CreditReportRepository interface {
	Save(ctx context.Context, report model.CreditReport) error
	FindByApplicationID(ctx context.Context, applicationID string) (model.CreditReport, error)
}

// UnderwritingDecisionRepository upserts decisions keyed by application ID.
type UnderwritingDecisionRepository interface {
	Upsert(ctx context.Context, decision model.UnderwritingDecision) error
	FindByApplicationID(ctx context.Context, applicationID string) (model.UnderwritingDecision, error)
}

// UnderwritingWriter persists an evaluation outcome: the decision record and
// the updated application. Implementations must be atomic; either both
// records are stored or neither is.
type UnderwritingWriter interface {
	SaveDecisionAndApplication(ctx context.Context, decision model.UnderwritingDecision, app model.LoanApplication) error
}

// DocumentRepository appends and lists document metadata records.
type DocumentRepository interface {
	Save(ctx context.Context, doc model.Document) error
	FindByApplicationID(ctx context.Context, applicationID string) ([]model.Document, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// CreditBureauClient pulls a credit report for a business from an external
// bureau.
type CreditBureauClient interface {
	FetchReport(ctx context.Context, applicationID string, business model.Business) (model.CreditReport, error)
}

// DocumentStore writes raw document bytes to blob storage and returns the
// stable location key the metadata record stores.
type DocumentStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// DecisionNotifier delivers a fire-and-forget decision notification keyed by
// application ID. Delivery guarantees are the collaborator's responsibility.
type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, applicationID string, decision valueobject.DecisionOutcome) error
}
