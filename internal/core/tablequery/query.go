package tablequery

import (
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// comparator returns <0, 0 or >0 in ascending order for one sort key.
type comparator func(a, b domain.Transaction) int

var comparators = map[domain.SortKey]comparator{
	domain.SortByDate: func(a, b domain.Transaction) int {
		return strings.Compare(a.Date, b.Date)
	},
	domain.SortByDescription: func(a, b domain.Transaction) int {
		return strings.Compare(a.SortLabel(), b.SortLabel())
	},
	domain.SortByCategory: func(a, b domain.Transaction) int {
		return strings.Compare(string(a.Category), string(b.Category))
	},
	domain.SortByAmount: func(a, b domain.Transaction) int {
		return a.Amount.Cmp(b.Amount)
	},
}

// Query returns the visible rows for s: search, category, date range and amount
// range filters in that order, then a stable sort. The input slice is not modified.
func Query(transactions []domain.Transaction, s domain.TableQueryState) []domain.Transaction {
	pred := buildPredicate(s)

	result := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if pred(t) {
			result = append(result, t)
		}
	}

	SortTransactions(result, s.Sort)
	return result
}

// SortTransactions stable-sorts txs in place. Unknown keys fall back to date.
func SortTransactions(txs []domain.Transaction, order domain.Sort) {
	cmp, ok := comparators[order.Key]
	if !ok {
		cmp = comparators[domain.SortByDate]
	}
	desc := order.Direction != domain.Ascending

	sort.SliceStable(txs, func(i, j int) bool {
		c := cmp(txs[i], txs[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// VisibleIDs returns the ids of txs in order.
func VisibleIDs(txs []domain.Transaction) []string {
	ids := make([]string, len(txs))
	for i, t := range txs {
		ids[i] = t.ID
	}
	return ids
}

func buildPredicate(s domain.TableQueryState) func(domain.Transaction) bool {
	search := strings.ToLower(s.Search)
	f := s.Filters
	startDate, hasStart := parseDateBound(f.StartDate)
	endDate, hasEnd := parseDateBound(f.EndDate)
	minAmount, hasMin := parseAmountBound(f.MinAmount)
	maxAmount, hasMax := parseAmountBound(f.MaxAmount)

	return func(t domain.Transaction) bool {
		if search != "" && !matchesSearch(t, search) {
			return false
		}
		if len(f.Categories) > 0 && !f.HasCategory(t.Category) {
			return false
		}
		if hasStart && t.Date < startDate {
			return false
		}
		if hasEnd && t.Date > endDate {
			return false
		}
		if hasMin && t.Amount.LessThan(minAmount) {
			return false
		}
		if hasMax && t.Amount.GreaterThan(maxAmount) {
			return false
		}
		return true
	}
}

func matchesSearch(t domain.Transaction, lowered string) bool {
	if strings.Contains(strings.ToLower(t.Description), lowered) {
		return true
	}
	return t.Merchant != "" && strings.Contains(strings.ToLower(t.Merchant), lowered)
}

// parseDateBound accepts only YYYY-MM-DD; anything else leaves the bound unset.
func parseDateBound(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if _, err := time.Parse(time.DateOnly, raw); err != nil {
		return "", false
	}
	return raw, true
}

// parseAmountBound leaves the bound unset when raw is not a number.
func parseAmountBound(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
