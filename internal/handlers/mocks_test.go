package handlers_test

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionDetail, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDetail), args.Error(1)
}
func (m *MockLedgerService) GetHistory(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}
func (m *MockLedgerService) ListAuditLog(ctx context.Context) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}
func (m *MockLedgerService) SuggestCategory(ctx context.Context, transactionID string) (*domain.CategorySuggestion, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategorySuggestion), args.Error(1)
}
func (m *MockLedgerService) LoadDemo(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) Upload(ctx context.Context, filename string) ([]domain.Transaction, error) {
	args := m.Called(ctx, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) RecategorizeTransaction(ctx context.Context, transactionID string, category domain.Category) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) BulkRecategorize(ctx context.Context, ids domain.IDSet, category domain.Category) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, ids, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}
func (m *MockLedgerService) BulkToggleFlag(ctx context.Context, ids domain.IDSet) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
func (m *MockLedgerService) ApplySuggestion(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

// --- Mock TableService ---
type MockTableService struct {
	mock.Mock
}

func (m *MockTableService) view(args mock.Arguments) (*domain.TableView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TableView), args.Error(1)
}
func (m *MockTableService) GetView(ctx context.Context) (*domain.TableView, error) {
	return m.view(m.Called(ctx))
}
func (m *MockTableService) SeedFromQuery(ctx context.Context, rawQuery string) (*domain.TableView, error) {
	return m.view(m.Called(ctx, rawQuery))
}
func (m *MockTableService) SetSearch(ctx context.Context, search string) (*domain.TableView, error) {
	return m.view(m.Called(ctx, search))
}
func (m *MockTableService) ToggleSort(ctx context.Context, key domain.SortKey) (*domain.TableView, error) {
	return m.view(m.Called(ctx, key))
}
func (m *MockTableService) SetFilters(ctx context.Context, filters domain.TableFilters) (*domain.TableView, error) {
	return m.view(m.Called(ctx, filters))
}
func (m *MockTableService) ToggleCategoryFilter(ctx context.Context, category domain.Category) (*domain.TableView, error) {
	return m.view(m.Called(ctx, category))
}
func (m *MockTableService) ClearFilters(ctx context.Context) (*domain.TableView, error) {
	return m.view(m.Called(ctx))
}
func (m *MockTableService) ToggleSelection(ctx context.Context, transactionID string) (*domain.TableView, error) {
	return m.view(m.Called(ctx, transactionID))
}
func (m *MockTableService) ToggleSelectAll(ctx context.Context) (*domain.TableView, error) {
	return m.view(m.Called(ctx))
}
func (m *MockTableService) BulkRecategorize(ctx context.Context, category domain.Category) (*domain.TableView, error) {
	return m.view(m.Called(ctx, category))
}
func (m *MockTableService) BulkToggleFlag(ctx context.Context) (*domain.TableView, error) {
	return m.view(m.Called(ctx))
}

var _ portssvc.TableSvcFacade = (*MockTableService)(nil)

// --- Mock InsightService ---
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) InitializeChat(ctx context.Context, transactions []domain.Transaction) {
	m.Called(ctx, transactions)
}
func (m *MockInsightService) SendMessage(ctx context.Context, message string) (*domain.ChatMessage, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatMessage), args.Error(1)
}
func (m *MockInsightService) ListMessages(ctx context.Context) ([]domain.ChatMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}
func (m *MockInsightService) GenerateInsights(ctx context.Context) ([]domain.AIInsight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AIInsight), args.Error(1)
}
func (m *MockInsightService) OnLedgerLoaded(ctx context.Context, transactions []domain.Transaction) {
	m.Called(ctx, transactions)
}

var _ portssvc.InsightSvcFacade = (*MockInsightService)(nil)
