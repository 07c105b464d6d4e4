package analysis

import (
	"fmt"
	"strings"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// ChatContext renders one line per transaction in the form
// "date: description ($amount) - category" for the assistant's context window.
func ChatContext(transactions []domain.Transaction) string {
	lines := make([]string, len(transactions))
	for i, t := range transactions {
		lines[i] = fmt.Sprintf("%s: %s ($%s) - %s", t.Date, t.Description, t.Amount.String(), t.Category)
	}
	return strings.Join(lines, "\n")
}

// InsightDigest renders at most limit transactions as
// "description: $amount (category)" joined by "; ". A non-positive limit means no cap.
func InsightDigest(transactions []domain.Transaction, limit int) string {
	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}
	parts := make([]string, len(transactions))
	for i, t := range transactions {
		parts[i] = fmt.Sprintf("%s: $%s (%s)", t.Description, t.Amount.String(), t.Category)
	}
	return strings.Join(parts, "; ")
}
