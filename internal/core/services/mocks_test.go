package services_test

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/SscSPs/finsight_dashboard/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/finsight_dashboard/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

// Ensure MockTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepositoryFacade = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) ListEntries(ctx context.Context) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

func (m *MockAuditLogRepository) ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

func (m *MockAuditLogRepository) AppendEntries(ctx context.Context, entries ...domain.AuditLogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// --- Mock LanguageModel ---
type MockLanguageModel struct {
	mock.Mock
}

var _ gateways.LanguageModel = (*MockLanguageModel)(nil)

func (m *MockLanguageModel) Generate(ctx context.Context, req gateways.GenerateRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// --- Recording load listener ---
type recordingListener struct {
	loads [][]domain.Transaction
}

func (l *recordingListener) OnLedgerLoaded(_ context.Context, transactions []domain.Transaction) {
	l.loads = append(l.loads, transactions)
}
