package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/finsight_dashboard/internal/apperrors"
	"github.com/SscSPs/finsight_dashboard/internal/core/audit"
	"github.com/SscSPs/finsight_dashboard/internal/core/bulkedit"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finsight_dashboard/internal/core/suggest"
)

// LedgerService owns the loaded transactions and their category audit log.
// Mutations are serialised so a ledger replacement and its audit entries land together.
type LedgerService struct {
	BaseService
	mu              sync.Mutex
	transactionRepo portsrepo.TransactionRepositoryFacade
	auditLogRepo    portsrepo.AuditLogRepositoryFacade
	editor          *bulkedit.Controller

	listenersMu sync.RWMutex
	listeners   []portssvc.LedgerLoadListener
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*LedgerService)

// WithAuditRecorder sets the recorder used to stamp audit entries.
func WithAuditRecorder(recorder *audit.Recorder) LedgerServiceOption {
	return func(s *LedgerService) {
		s.editor = bulkedit.NewController(recorder)
	}
}

// WithLoadListeners registers listeners notified after every dataset load.
func WithLoadListeners(listeners ...portssvc.LedgerLoadListener) LedgerServiceOption {
	return func(s *LedgerService) {
		s.listeners = append(s.listeners, listeners...)
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(transactionRepo portsrepo.TransactionRepositoryFacade, auditLogRepo portsrepo.AuditLogRepositoryFacade, options ...LedgerServiceOption) *LedgerService {
	svc := &LedgerService{
		transactionRepo: transactionRepo,
		auditLogRepo:    auditLogRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}
	if svc.editor == nil {
		svc.editor = bulkedit.NewController(nil)
	}

	return svc
}

// Ensure LedgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// AddLoadListener registers a listener after construction.
func (s *LedgerService) AddLoadListener(listener portssvc.LedgerLoadListener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// ListTransactions returns the full ledger in load order.
func (s *LedgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// GetTransaction returns a transaction with its history, newest change first.
func (s *LedgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionDetail, error) {
	transaction, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	history, err := s.historyFor(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return &domain.TransactionDetail{
		Transaction:  *transaction,
		DisplayLabel: transaction.DisplayLabel(),
		History:      history,
	}, nil
}

// GetHistory returns the audit entries of one transaction, newest first.
func (s *LedgerService) GetHistory(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error) {
	if _, err := s.transactionRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return s.historyFor(ctx, transactionID)
}

func (s *LedgerService) historyFor(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error) {
	entries, err := s.auditLogRepo.ListEntriesByTransaction(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read audit history", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to read audit history: %w", err)
	}
	audit.SortNewestFirst(entries)
	return entries, nil
}

// ListAuditLog returns every audit entry, newest first.
func (s *LedgerService) ListAuditLog(ctx context.Context) ([]domain.AuditLogEntry, error) {
	entries, err := s.auditLogRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit log")
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	audit.SortNewestFirst(entries)
	return entries, nil
}

// SuggestCategory returns a category suggestion for the transaction, or nil.
func (s *LedgerService) SuggestCategory(ctx context.Context, transactionID string) (*domain.CategorySuggestion, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	if !containsID(transactions, transactionID) {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	suggestion, ok := suggest.Suggest(transactions, transactionID)
	if !ok {
		return nil, nil
	}
	return &suggestion, nil
}

// LoadDemo replaces the ledger with the demo dataset.
func (s *LedgerService) LoadDemo(ctx context.Context) ([]domain.Transaction, error) {
	return s.load(ctx, domain.DemoTransactions(), "demo")
}

// Upload loads the demo dataset in place of the uploaded statement.
func (s *LedgerService) Upload(ctx context.Context, filename string) ([]domain.Transaction, error) {
	s.LogInfo(ctx, "Statement parsing is not supported, loading demo data instead", slog.String("filename", filename))
	return s.load(ctx, domain.DemoTransactions(), "upload")
}

func (s *LedgerService) load(ctx context.Context, transactions []domain.Transaction, origin string) ([]domain.Transaction, error) {
	s.mu.Lock()
	err := s.transactionRepo.ReplaceTransactions(ctx, transactions)
	s.mu.Unlock()
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions", slog.String("origin", origin))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	s.LogInfo(ctx, "Ledger loaded", slog.String("origin", origin), slog.Int("transaction_count", len(transactions)))

	// Listeners may call back into the ledger, so they run outside the lock.
	s.listenersMu.RLock()
	listeners := append([]portssvc.LedgerLoadListener(nil), s.listeners...)
	s.listenersMu.RUnlock()
	for _, l := range listeners {
		l.OnLedgerLoaded(ctx, domain.CloneTransactions(transactions))
	}
	return domain.CloneTransactions(transactions), nil
}

// RecategorizeTransaction applies an inline category edit.
func (s *LedgerService) RecategorizeTransaction(ctx context.Context, transactionID string, category domain.Category) (*domain.Transaction, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
	}
	return s.recategorizeOne(ctx, transactionID, func(transactions []domain.Transaction) ([]domain.Transaction, *domain.AuditLogEntry, error) {
		updated, entry := s.editor.InlineRecategorize(transactions, transactionID, category)
		return updated, entry, nil
	})
}

// ApplySuggestion applies the current suggestion for the transaction with source AI.
func (s *LedgerService) ApplySuggestion(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.recategorizeOne(ctx, transactionID, func(transactions []domain.Transaction) ([]domain.Transaction, *domain.AuditLogEntry, error) {
		suggestion, ok := suggest.Suggest(transactions, transactionID)
		if !ok {
			return nil, nil, fmt.Errorf("no category suggestion for transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		updated, entry := s.editor.ApplySuggestion(transactions, transactionID, suggestion.SuggestedCategory)
		return updated, entry, nil
	})
}

type singleEdit func(transactions []domain.Transaction) ([]domain.Transaction, *domain.AuditLogEntry, error)

func (s *LedgerService) recategorizeOne(ctx context.Context, transactionID string, edit singleEdit) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if !containsID(transactions, transactionID) {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}

	updated, entry, err := edit(transactions)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		if err := s.commit(ctx, transactions, updated, *entry); err != nil {
			return nil, err
		}
		s.LogInfo(ctx, "Transaction recategorized",
			slog.String("transaction_id", transactionID),
			slog.String("old_category", string(entry.OldCategory)),
			slog.String("new_category", string(entry.NewCategory)),
			slog.String("source", string(entry.Source)))
	}

	for _, t := range updated {
		if t.ID == transactionID {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

// BulkRecategorize moves the listed transactions to category.
func (s *LedgerService) BulkRecategorize(ctx context.Context, ids domain.IDSet, category domain.Category) ([]domain.AuditLogEntry, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
	}
	if ids.Len() == 0 {
		return nil, apperrors.ErrNoSelection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	updated, entries := s.editor.BulkRecategorize(transactions, ids, category)
	if len(entries) > 0 {
		if err := s.commit(ctx, transactions, updated, entries...); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "Bulk recategorization applied",
		slog.String("category", string(category)),
		slog.Int("selected", ids.Len()),
		slog.Int("changed", len(entries)))
	return entries, nil
}

// BulkToggleFlag flips the flag of the listed transactions.
func (s *LedgerService) BulkToggleFlag(ctx context.Context, ids domain.IDSet) error {
	if ids.Len() == 0 {
		return apperrors.ErrNoSelection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return fmt.Errorf("failed to list transactions: %w", err)
	}
	if err := s.commit(ctx, transactions, s.editor.BulkToggleFlag(transactions, ids)); err != nil {
		return err
	}

	s.LogInfo(ctx, "Flags toggled", slog.Int("selected", ids.Len()))
	return nil
}

// commit stores the updated ledger and appends its audit entries. When the
// append fails the previous ledger is restored. Callers hold s.mu.
func (s *LedgerService) commit(ctx context.Context, previous, transactions []domain.Transaction, entries ...domain.AuditLogEntry) error {
	if err := s.transactionRepo.ReplaceTransactions(ctx, transactions); err != nil {
		s.LogError(ctx, err, "Failed to store transactions")
		return fmt.Errorf("failed to store transactions: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}
	if err := s.auditLogRepo.AppendEntries(ctx, entries...); err != nil {
		s.LogError(ctx, err, "Failed to append audit entries", slog.Int("entry_count", len(entries)))
		if restoreErr := s.transactionRepo.ReplaceTransactions(context.WithoutCancel(ctx), previous); restoreErr != nil {
			s.LogError(ctx, restoreErr, "Failed to restore transactions after audit failure")
			return fmt.Errorf("failed to append audit entries: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("failed to append audit entries: %w", err)
	}
	return nil
}

func containsID(transactions []domain.Transaction, id string) bool {
	for _, t := range transactions {
		if t.ID == id {
			return true
		}
	}
	return false
}
