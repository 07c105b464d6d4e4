package repositories

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// AuditLogReader defines read operations for the category audit log
type AuditLogReader interface {
	// ListEntries retrieves all entries in append order.
	ListEntries(ctx context.Context) ([]domain.AuditLogEntry, error)

	// ListEntriesByTransaction retrieves the entries of one transaction in append order.
	ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.AuditLogEntry, error)
}

// AuditLogWriter defines write operations for the category audit log.
// The log is append-only: entries are never updated or removed.
type AuditLogWriter interface {
	// AppendEntries adds entries to the end of the log.
	AppendEntries(ctx context.Context, entries ...domain.AuditLogEntry) error
}

// AuditLogRepositoryFacade combines all audit-log repository interfaces
type AuditLogRepositoryFacade interface {
	AuditLogReader
	AuditLogWriter
}
