package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/finsight_dashboard/internal/apperrors"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight_dashboard/internal/core/ports/repositories"
)

// TransactionRepository keeps the loaded ledger in memory.
// Reads and writes exchange copies, so stored rows are never shared.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// newTransactionRepository creates an empty in-memory ledger.
func newTransactionRepository() *TransactionRepository {
	return &TransactionRepository{transactions: []domain.Transaction{}}
}

// Ensure TransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// ListTransactions returns a copy of the ledger in load order.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

// FindTransactionByID returns a copy of the transaction with the given id.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.transactions {
		if t.ID == transactionID {
			found := t
			return &found, nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
}

// ReplaceTransactions stores a copy of transactions as the new ledger.
func (r *TransactionRepository) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	next := make([]domain.Transaction, len(transactions))
	copy(next, transactions)

	r.mu.Lock()
	r.transactions = next
	r.mu.Unlock()
	return nil
}
