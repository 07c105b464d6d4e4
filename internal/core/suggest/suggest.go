// Package suggest proposes categories for a transaction by comparing its label
// with the labels of the other transactions in the ledger.
package suggest

import (
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/agnivade/levenshtein"
)

// MinSimilarity is the lowest label similarity that still yields a suggestion.
const MinSimilarity = 0.6

// Similarity returns 1 - editDistance/maxLen over the case-folded, trimmed labels.
// Two empty labels are not considered similar.
func Similarity(a, b string) float64 {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}

// Suggest finds the transaction whose display label is most similar to that of
// transactionID. The first best match in list order wins. No suggestion is made
// when the id is unknown, the best match is below MinSimilarity, or it already
// shares the transaction's category.
func Suggest(transactions []domain.Transaction, transactionID string) (domain.CategorySuggestion, bool) {
	target, ok := find(transactions, transactionID)
	if !ok {
		return domain.CategorySuggestion{}, false
	}
	label := target.DisplayLabel()

	var best domain.Transaction
	bestScore := -1.0
	for _, t := range transactions {
		if t.ID == target.ID {
			continue
		}
		if score := Similarity(label, t.DisplayLabel()); score > bestScore {
			best, bestScore = t, score
		}
	}

	if bestScore < MinSimilarity || best.Category == target.Category {
		return domain.CategorySuggestion{}, false
	}
	return domain.CategorySuggestion{
		TransactionID:     target.ID,
		CurrentCategory:   target.Category,
		SuggestedCategory: best.Category,
		MatchedID:         best.ID,
		Similarity:        bestScore,
	}, true
}

func find(transactions []domain.Transaction, id string) (domain.Transaction, bool) {
	for _, t := range transactions {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Transaction{}, false
}
