package dto

import (
	"time"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID           string                 `json:"id"`
	Date         string                 `json:"date"`
	Description  string                 `json:"description"`
	Merchant     string                 `json:"merchant,omitempty"`
	DisplayLabel string                 `json:"displayLabel"`
	Amount       decimal.Decimal        `json:"amount"`
	Category     domain.Category        `json:"category"`
	Color        string                 `json:"color"`
	Type         domain.TransactionType `json:"type"`
	Flagged      bool                   `json:"flagged"`
}

// ListTransactionsResponse wraps a list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// UpdateCategoryRequest changes the category of a single transaction.
type UpdateCategoryRequest struct {
	Category string `json:"category" binding:"required,category"`
}

// AuditLogEntryResponse defines the data returned for an audit entry.
type AuditLogEntryResponse struct {
	ID            string             `json:"id"`
	TransactionID string             `json:"transactionId"`
	OldCategory   domain.Category    `json:"oldCategory"`
	NewCategory   domain.Category    `json:"newCategory"`
	Source        domain.AuditSource `json:"source"`
	Timestamp     time.Time          `json:"timestamp"`
}

// ListAuditLogParams defines the query parameters for listing the audit log.
type ListAuditLogParams struct {
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// ListAuditLogResponse is a page of the audit log, newest first.
type ListAuditLogResponse struct {
	Entries   []AuditLogEntryResponse `json:"entries"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// TransactionDetailResponse is a transaction together with its category history.
type TransactionDetailResponse struct {
	Transaction TransactionResponse     `json:"transaction"`
	History     []AuditLogEntryResponse `json:"history"`
}

// CategorySuggestionResponse wraps an optional category suggestion.
type CategorySuggestionResponse struct {
	Suggestion *domain.CategorySuggestion `json:"suggestion"`
}

// CategoryResponse describes one category and its chart color.
type CategoryResponse struct {
	Name  domain.Category `json:"name"`
	Color string          `json:"color"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Date:         t.Date,
		Description:  t.Description,
		Merchant:     t.Merchant,
		DisplayLabel: t.DisplayLabel(),
		Amount:       t.Amount,
		Category:     t.Category,
		Color:        t.Category.Color(),
		Type:         t.Type,
		Flagged:      t.Flagged,
	}
}

// ToListTransactionsResponse converts a slice of transactions to its response DTO
func ToListTransactionsResponse(transactions []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		res[i] = ToTransactionResponse(t) // Reuse the single converter
	}
	return ListTransactionsResponse{Transactions: res, Count: len(res)}
}

// ToAuditLogEntryResponse converts a domain.AuditLogEntry to its response DTO
func ToAuditLogEntryResponse(e domain.AuditLogEntry) AuditLogEntryResponse {
	return AuditLogEntryResponse{
		ID:            e.ID,
		TransactionID: e.TransactionID,
		OldCategory:   e.OldCategory,
		NewCategory:   e.NewCategory,
		Source:        e.Source,
		Timestamp:     e.Timestamp,
	}
}

// ToAuditLogEntryResponses converts a slice of audit entries to response DTOs
func ToAuditLogEntryResponses(entries []domain.AuditLogEntry) []AuditLogEntryResponse {
	res := make([]AuditLogEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToAuditLogEntryResponse(e)
	}
	return res
}

// ToTransactionDetailResponse converts a domain.TransactionDetail to its response DTO
func ToTransactionDetailResponse(d *domain.TransactionDetail) TransactionDetailResponse {
	return TransactionDetailResponse{
		Transaction: ToTransactionResponse(d.Transaction),
		History:     ToAuditLogEntryResponses(d.History),
	}
}

// ToCategoryResponses lists every known category with its color
func ToCategoryResponses() []CategoryResponse {
	res := make([]CategoryResponse, len(domain.Categories))
	for i, c := range domain.Categories {
		res[i] = CategoryResponse{Name: c, Color: c.Color()}
	}
	return res
}
