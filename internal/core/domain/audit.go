package domain

import "time"

// AuditSource records who or what initiated a category change.
type AuditSource string

const (
	SourceUser     AuditSource = "User"
	SourceAI       AuditSource = "AI"
	SourceBulkEdit AuditSource = "Bulk Edit"
)

// AuditLogEntry is an immutable record of a single category change.
type AuditLogEntry struct {
	ID            string      `json:"id"`
	TransactionID string      `json:"transactionId"`
	OldCategory   Category    `json:"oldCategory"`
	NewCategory   Category    `json:"newCategory"`
	Source        AuditSource `json:"source"`
	Timestamp     time.Time   `json:"timestamp"`
}

// TransactionDetail is a single transaction together with its category history,
// newest change first.
type TransactionDetail struct {
	Transaction  Transaction     `json:"transaction"`
	DisplayLabel string          `json:"displayLabel"`
	History      []AuditLogEntry `json:"history"`
}
