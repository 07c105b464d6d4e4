// Package bulkedit applies category and flag changes to transaction lists.
// Every operation returns a freshly built list; the input is never modified.
package bulkedit

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/audit"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// Controller applies mutations and emits the matching audit entries.
type Controller struct {
	recorder *audit.Recorder
}

// NewController creates a Controller that stamps entries with recorder.
func NewController(recorder *audit.Recorder) *Controller {
	if recorder == nil {
		recorder = audit.NewRecorder()
	}
	return &Controller{recorder: recorder}
}

// BulkRecategorize moves every selected transaction to newCategory. Only rows whose
// category actually changes produce a "Bulk Edit" entry. An empty newCategory is a
// no-op; callers are expected to guard against it.
func (c *Controller) BulkRecategorize(transactions []domain.Transaction, selected domain.IDSet, newCategory domain.Category) ([]domain.Transaction, []domain.AuditLogEntry) {
	updated := domain.CloneTransactions(transactions)
	entries := make([]domain.AuditLogEntry, 0)
	if newCategory == "" {
		return updated, entries
	}

	for i, t := range updated {
		if !selected.Has(t.ID) {
			continue
		}
		if entry, changed := c.recorder.Record(t.ID, t.Category, newCategory, domain.SourceBulkEdit); changed {
			entries = append(entries, entry)
		}
		updated[i].Category = newCategory
	}
	return updated, entries
}

// BulkToggleFlag flips the flagged marker of every selected transaction.
// Flag changes are not part of the audit history.
func (c *Controller) BulkToggleFlag(transactions []domain.Transaction, selected domain.IDSet) []domain.Transaction {
	updated := domain.CloneTransactions(transactions)
	for i, t := range updated {
		if selected.Has(t.ID) {
			updated[i].Flagged = !t.Flagged
		}
	}
	return updated
}

// InlineRecategorize changes a single transaction and records a "User" entry.
// When id is unknown or the category is unchanged, the original list is returned
// with no entry.
func (c *Controller) InlineRecategorize(transactions []domain.Transaction, id string, newCategory domain.Category) ([]domain.Transaction, *domain.AuditLogEntry) {
	return c.recategorizeOne(transactions, id, newCategory, domain.SourceUser)
}

// ApplySuggestion is InlineRecategorize for changes proposed by the suggestion engine.
func (c *Controller) ApplySuggestion(transactions []domain.Transaction, id string, newCategory domain.Category) ([]domain.Transaction, *domain.AuditLogEntry) {
	return c.recategorizeOne(transactions, id, newCategory, domain.SourceAI)
}

func (c *Controller) recategorizeOne(transactions []domain.Transaction, id string, newCategory domain.Category, source domain.AuditSource) ([]domain.Transaction, *domain.AuditLogEntry) {
	for i, t := range transactions {
		if t.ID != id {
			continue
		}
		entry, changed := c.recorder.Record(t.ID, t.Category, newCategory, source)
		if !changed {
			return transactions, nil
		}
		updated := domain.CloneTransactions(transactions)
		updated[i].Category = newCategory
		return updated, &entry
	}
	return transactions, nil
}
