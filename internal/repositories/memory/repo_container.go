// Package memory holds the in-memory repositories backing a single dashboard session.
package memory

import (
	portsrepo "github.com/SscSPs/finsight_dashboard/internal/core/ports/repositories"
)

// NewRepositoryProvider creates empty in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newTransactionRepository(),
		AuditLogRepo:    newAuditLogRepository(),
	}
}
