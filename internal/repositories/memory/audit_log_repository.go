package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight_dashboard/internal/core/ports/repositories"
)

// AuditLogRepository is an append-only in-memory audit log.
type AuditLogRepository struct {
	mu      sync.RWMutex
	entries []domain.AuditLogEntry
}

// newAuditLogRepository creates an empty log.
func newAuditLogRepository() *AuditLogRepository {
	return &AuditLogRepository{entries: []domain.AuditLogEntry{}}
}

// Ensure AuditLogRepository implements portsrepo.AuditLogRepositoryFacade
var _ portsrepo.AuditLogRepositoryFacade = (*AuditLogRepository)(nil)

// ListEntries returns a copy of the log in append order.
func (r *AuditLogRepository) ListEntries(ctx context.Context) ([]domain.AuditLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.AuditLogEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// ListEntriesByTransaction returns the entries for one transaction in append order.
func (r *AuditLogRepository) ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.AuditLogEntry, 0)
	for _, e := range r.entries {
		if e.TransactionID == transactionID {
			out = append(out, e)
		}
	}
	return out, nil
}

// AppendEntries adds entries to the end of the log.
func (r *AuditLogRepository) AppendEntries(ctx context.Context, entries ...domain.AuditLogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	r.mu.Lock()
	r.entries = append(r.entries, entries...)
	r.mu.Unlock()
	return nil
}
