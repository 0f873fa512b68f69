package usecase_test

import (
	"context"
	"fmt"

	"github.com/lenddesk/los/internal/domain/event"
	"github.com/lenddesk/los/internal/domain/model"
	"github.com/lenddesk/los/internal/domain/port"
	"github.com/lenddesk/los/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockApplicationRepository struct {
	saveFunc             func(ctx context.Context, app model.LoanApplication) error
	findByIDFunc         func(ctx context.Context, id string) (model.LoanApplication, error)
	findByBusinessIDFunc func(ctx context.Context, businessID string) ([]model.LoanApplication, error)
	savedApps            []model.LoanApplication
}

func (m *mockApplicationRepository) Save(ctx context.Context, app model.LoanApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	m.savedApps = append(m.savedApps, app)
	return nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id string) (model.LoanApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.LoanApplication{}, fmt.Errorf("application %s: %w", id, valueobject.ErrNotFound)
}

func (m *mockApplicationRepository) FindByBusinessID(ctx context.Context, businessID string) ([]model.LoanApplication, error) {
	if m.findByBusinessIDFunc != nil {
		return m.findByBusinessIDFunc(ctx, businessID)
	}
	return nil, nil
}

type mockProductRepository struct {
	saveFunc        func(ctx context.Context, product model.LoanProduct) error
	updateFunc      func(ctx context.Context, product model.LoanProduct) error
	findVersionFunc func(ctx context.Context, productID string, versionNumber int) (model.LoanProduct, error)
	findLatestFunc  func(ctx context.Context, productID string) (model.LoanProduct, error)
	searchFunc      func(ctx context.Context, criteria port.ProductSearchCriteria) ([]model.LoanProduct, error)
	savedProducts   []model.LoanProduct
	updatedProducts []model.LoanProduct
}

func (m *mockProductRepository) Save(ctx context.Context, product model.LoanProduct) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, product)
	}
	m.savedProducts = append(m.savedProducts, product)
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product model.LoanProduct) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, product)
	}
	m.updatedProducts = append(m.updatedProducts, product)
	return nil
}

func (m *mockProductRepository) FindVersion(ctx context.Context, productID string, versionNumber int) (model.LoanProduct, error) {
	if m.findVersionFunc != nil {
		return m.findVersionFunc(ctx, productID, versionNumber)
	}
	return model.LoanProduct{}, fmt.Errorf("product %s: %w", productID, valueobject.ErrNotFound)
}

func (m *mockProductRepository) FindLatest(ctx context.Context, productID string) (model.LoanProduct, error) {
	if m.findLatestFunc != nil {
		return m.findLatestFunc(ctx, productID)
	}
	return model.LoanProduct{}, fmt.Errorf("product %s: %w", productID, valueobject.ErrNotFound)
}

func (m *mockProductRepository) FindAllVersions(_ context.Context, _ string) ([]model.LoanProduct, error) {
	return nil, nil
}

func (m *mockProductRepository) List(_ context.Context) ([]model.LoanProduct, error) {
	return nil, nil
}

func (m *mockProductRepository) Search(ctx context.Context, criteria port.ProductSearchCriteria) ([]model.LoanProduct, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, criteria)
	}
	return nil, nil
}

type mockBusinessRepository struct {
	saveFunc        func(ctx context.Context, business model.Business) error
	findByIDFunc    func(ctx context.Context, id string) (model.Business, error)
	savedBusinesses []model.Business
}

func (m *mockBusinessRepository) Save(ctx context.Context, business model.Business) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, business)
	}
	m.savedBusinesses = append(m.savedBusinesses, business)
	return nil
}

func (m *mockBusinessRepository) FindByID(ctx context.Context, id string) (model.Business, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Business{}, fmt.Errorf("business %s: %w", id, valueobject.ErrNotFound)
}

type mockCreditReportRepository struct {
	saveFunc                func(ctx context.Context, report model.CreditReport) error
	findByApplicationIDFunc func(ctx context.Context, applicationID string) (model.CreditReport, error)
	savedReports            []model.CreditReport
}

func (m *mockCreditReportRepository) Save(ctx context.Context, report model.CreditReport) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, report)
	}
	m.savedReports = append(m.savedReports, report)
	return nil
}

func (m *mockCreditReportRepository) FindByApplicationID(ctx context.Context, applicationID string) (model.CreditReport, error) {
	if m.findByApplicationIDFunc != nil {
		return m.findByApplicationIDFunc(ctx, applicationID)
	}
	return model.CreditReport{}, fmt.Errorf("credit report for application %s: %w", applicationID, valueobject.ErrNotFound)
}

type mockDecisionRepository struct {
	upsertFunc              func(ctx context.Context, decision model.UnderwritingDecision) error
	findByApplicationIDFunc func(ctx context.Context, applicationID string) (model.UnderwritingDecision, error)
	savedDecisions          []model.UnderwritingDecision
}

func (m *mockDecisionRepository) Upsert(ctx context.Context, decision model.UnderwritingDecision) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, decision)
	}
	m.savedDecisions = append(m.savedDecisions, decision)
	return nil
}

func (m *mockDecisionRepository) FindByApplicationID(ctx context.Context, applicationID string) (model.UnderwritingDecision, error) {
	if m.findByApplicationIDFunc != nil {
		return m.findByApplicationIDFunc(ctx, applicationID)
	}
	return model.UnderwritingDecision{}, fmt.Errorf("decision for application %s: %w", applicationID, valueobject.ErrNotFound)
}

type mockUnderwritingWriter struct {
	saveFunc       func(ctx context.Context, decision model.UnderwritingDecision, app model.LoanApplication) error
	savedDecisions []model.UnderwritingDecision
	savedApps      []model.LoanApplication
}

func (m *mockUnderwritingWriter) SaveDecisionAndApplication(ctx context.Context, decision model.UnderwritingDecision, app model.LoanApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, decision, app)
	}
	m.savedDecisions = append(m.savedDecisions, decision)
	m.savedApps = append(m.savedApps, app)
	return nil
}

type mockDocumentRepository struct {
	saveFunc                func(ctx context.Context, doc model.Document) error
	findByApplicationIDFunc func(ctx context.Context, applicationID string) ([]model.Document, error)
	savedDocs               []model.Document
}

func (m *mockDocumentRepository) Save(ctx context.Context, doc model.Document) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, doc)
	}
	m.savedDocs = append(m.savedDocs, doc)
	return nil
}

func (m *mockDocumentRepository) FindByApplicationID(ctx context.Context, applicationID string) ([]model.Document, error) {
	if m.findByApplicationIDFunc != nil {
		return m.findByApplicationIDFunc(ctx, applicationID)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockCreditBureauClient struct {
	fetchReportFunc func(ctx context.Context, applicationID string, business model.Business) (model.CreditReport, error)
}

func (m *mockCreditBureauClient) FetchReport(ctx context.Context, applicationID string, business model.Business) (model.CreditReport, error) {
	if m.fetchReportFunc != nil {
		return m.fetchReportFunc(ctx, applicationID, business)
	}
	return model.NewCreditReport(applicationID, 750, evalNow(), 0, 0, 0.3, 48)
}

type mockDocumentStore struct {
	putFunc    func(ctx context.Context, key, contentType string, data []byte) (string, error)
	storedKeys []string
}

func (m *mockDocumentStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if m.putFunc != nil {
		return m.putFunc(ctx, key, contentType, data)
	}
	m.storedKeys = append(m.storedKeys, key)
	return key, nil
}

type mockDecisionNotifier struct {
	notifyFunc    func(ctx context.Context, applicationID string, decision valueobject.DecisionOutcome) error
	notifications []valueobject.DecisionOutcome
}

func (m *mockDecisionNotifier) NotifyDecision(ctx context.Context, applicationID string, decision valueobject.DecisionOutcome) error {
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, applicationID, decision)
	}
	m.notifications = append(m.notifications, decision)
	return nil
}
