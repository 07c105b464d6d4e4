package analysis

import (
	"sort"
	"time"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryBreakdown groups spend (debits excluding transfers) by category, sorted
// by amount descending. Categories with equal amounts keep first-seen order.
func CategoryBreakdown(transactions []domain.Transaction) []domain.CategoryBreakdown {
	totals := make(map[domain.Category]decimal.Decimal)
	var order []domain.Category

	for _, t := range transactions {
		if !t.IsSpend() {
			continue
		}
		current, seen := totals[t.Category]
		if !seen {
			order = append(order, t.Category)
			current = decimal.Zero
		}
		totals[t.Category] = current.Add(t.Amount)
	}

	total := decimal.Zero
	for _, c := range order {
		total = total.Add(totals[c])
	}

	breakdown := make([]domain.CategoryBreakdown, 0, len(order))
	for _, c := range order {
		amount := totals[c]
		percentage := decimal.Zero
		if total.IsPositive() {
			percentage = amount.Div(total).Mul(hundred)
		}
		breakdown = append(breakdown, domain.CategoryBreakdown{
			Category:   c,
			Amount:     amount,
			Percentage: percentage,
			Color:      c.Color(),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})
	return breakdown
}

// DailySpend sums every debit per date, transfers included, and orders the result
// by calendar date ascending. Dates without debits are not filled in.
func DailySpend(transactions []domain.Transaction) []domain.DailySpend {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, t := range transactions {
		if t.Type != domain.Debit {
			continue
		}
		current, seen := totals[t.Date]
		if !seen {
			order = append(order, t.Date)
			current = decimal.Zero
		}
		totals[t.Date] = current.Add(t.Amount)
	}

	daily := make([]domain.DailySpend, 0, len(order))
	for _, d := range order {
		daily = append(daily, domain.DailySpend{Date: d, Amount: totals[d]})
	}

	sort.SliceStable(daily, func(i, j int) bool {
		return dateLess(daily[i].Date, daily[j].Date)
	})
	return daily
}

// dateLess compares two dates as calendar dates, falling back to string order
// when either side is not an ISO date.
func dateLess(a, b string) bool {
	ta, errA := time.Parse(time.DateOnly, a)
	tb, errB := time.Parse(time.DateOnly, b)
	if errA != nil || errB != nil {
		return a < b
	}
	return ta.Before(tb)
}
