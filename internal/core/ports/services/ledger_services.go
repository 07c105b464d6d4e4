package services

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// LedgerReaderSvc defines read operations for the loaded transactions and their audit log
type LedgerReaderSvc interface {
	// ListTransactions retrieves the full ledger in load order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// GetTransaction retrieves a transaction together with its category history.
	GetTransaction(ctx context.Context, transactionID string) (*domain.TransactionDetail, error)

	// GetHistory retrieves the audit entries of one transaction, newest first.
	GetHistory(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error)

	// ListAuditLog retrieves every audit entry, newest first.
	ListAuditLog(ctx context.Context) ([]domain.AuditLogEntry, error)

	// SuggestCategory proposes a category taken from the most similar other
	// transaction. It returns nil when there is nothing to suggest.
	SuggestCategory(ctx context.Context, transactionID string) (*domain.CategorySuggestion, error)
}

// LedgerWriterSvc defines write operations for the loaded transactions
type LedgerWriterSvc interface {
	// LoadDemo replaces the ledger with a fresh copy of the demo dataset.
	LoadDemo(ctx context.Context) ([]domain.Transaction, error)

	// Upload accepts a statement file. Parsing is not supported, so the demo
	// dataset is loaded in its place.
	Upload(ctx context.Context, filename string) ([]domain.Transaction, error)

	// RecategorizeTransaction changes the category of a single transaction and
	// records a "User" audit entry when the category actually changes.
	RecategorizeTransaction(ctx context.Context, transactionID string, category domain.Category) (*domain.Transaction, error)

	// BulkRecategorize moves every listed transaction to category and records a
	// "Bulk Edit" entry per changed row.
	BulkRecategorize(ctx context.Context, ids domain.IDSet, category domain.Category) ([]domain.AuditLogEntry, error)

	// BulkToggleFlag flips the flagged marker of every listed transaction.
	BulkToggleFlag(ctx context.Context, ids domain.IDSet) error

	// ApplySuggestion applies the current category suggestion of a transaction
	// and records an "AI" audit entry.
	ApplySuggestion(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}

// LedgerLoadListener is notified after a new dataset has replaced the ledger.
type LedgerLoadListener interface {
	OnLedgerLoaded(ctx context.Context, transactions []domain.Transaction)
}
