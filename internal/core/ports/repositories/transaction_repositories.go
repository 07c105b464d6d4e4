package repositories

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// TransactionReader defines read operations for the loaded ledger
type TransactionReader interface {
	// ListTransactions retrieves every transaction in load order.
	// The returned slice is a copy; callers may modify it freely.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionByID retrieves a specific transaction by its ID.
	// Returns apperrors.ErrNotFound when the id is unknown.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for the loaded ledger
type TransactionWriter interface {
	// ReplaceTransactions swaps the whole ledger for the given list.
	ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
