// Package audit builds and queries category-change audit entries.
package audit

import (
	"sort"
	"time"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/google/uuid"
)

// Recorder stamps new audit entries with a unique id and the current time.
type Recorder struct {
	now   func() time.Time
	newID func() string
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock overrides the time source.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *Recorder) {
		r.now = now
	}
}

// WithIDGenerator overrides the id generator.
func WithIDGenerator(newID func() string) RecorderOption {
	return func(r *Recorder) {
		r.newID = newID
	}
}

// NewRecorder returns a Recorder using UTC wall-clock time and random UUIDs.
func NewRecorder(options ...RecorderOption) *Recorder {
	r := &Recorder{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Record returns an entry for the change, or false when the category did not change.
func (r *Recorder) Record(transactionID string, oldCategory, newCategory domain.Category, source domain.AuditSource) (domain.AuditLogEntry, bool) {
	if oldCategory == newCategory {
		return domain.AuditLogEntry{}, false
	}
	return domain.AuditLogEntry{
		ID:            r.newID(),
		TransactionID: transactionID,
		OldCategory:   oldCategory,
		NewCategory:   newCategory,
		Source:        source,
		Timestamp:     r.now(),
	}, true
}

// HistoryFor returns the entries of one transaction, newest first.
func HistoryFor(entries []domain.AuditLogEntry, transactionID string) []domain.AuditLogEntry {
	history := make([]domain.AuditLogEntry, 0)
	for _, e := range entries {
		if e.TransactionID == transactionID {
			history = append(history, e)
		}
	}
	SortNewestFirst(history)
	return history
}

// SortNewestFirst orders entries by timestamp descending. Entries with equal
// timestamps are ordered by reverse append order, so the later append comes first.
func SortNewestFirst(entries []domain.AuditLogEntry) {
	reverse(entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}

func reverse(entries []domain.AuditLogEntry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
