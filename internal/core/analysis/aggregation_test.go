package analysis_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/finsight_dashboard/internal/core/analysis"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryBreakdown_DemoFixture(t *testing.T) {
	breakdown := analysis.CategoryBreakdown(domain.DemoTransactions())

	wantOrder := []domain.Category{
		domain.Housing,
		domain.FoodAndDining,
		domain.Shopping,
		domain.Utilities,
		domain.Transportation,
		domain.Entertainment,
		domain.Health,
	}
	require.Len(t, breakdown, len(wantOrder))
	for i, c := range wantOrder {
		assert.Equal(t, c, breakdown[i].Category, "position %d", i)
		assert.Equal(t, c.Color(), breakdown[i].Color)
	}
	assert.True(t, dec("340.6").Equal(breakdown[1].Amount))

	total := decimal.Zero
	for _, b := range breakdown {
		total = total.Add(b.Percentage)
	}
	assert.Equal(t, "100.00", total.StringFixed(2))
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	assert.Empty(t, analysis.CategoryBreakdown(nil))
	assert.Empty(t, analysis.CategoryBreakdown([]domain.Transaction{
		tx("a", "2024-01-01", "100", domain.Income, domain.Credit),
	}))
}

func TestCategoryBreakdown_ZeroTotalGivesZeroPercentage(t *testing.T) {
	breakdown := analysis.CategoryBreakdown([]domain.Transaction{
		tx("a", "2024-01-01", "0", domain.Shopping, domain.Debit),
	})

	require.Len(t, breakdown, 1)
	assert.True(t, breakdown[0].Percentage.IsZero())
}

func TestCategoryBreakdown_UnknownCategoryGetsNeutralColor(t *testing.T) {
	breakdown := analysis.CategoryBreakdown([]domain.Transaction{
		tx("a", "2024-01-01", "10", domain.Category("Crypto"), domain.Debit),
	})

	require.Len(t, breakdown, 1)
	assert.Equal(t, domain.NeutralColor, breakdown[0].Color)
}

func TestCategoryBreakdown_TiesKeepFirstSeenOrder(t *testing.T) {
	txs := []domain.Transaction{
		tx("a", "2024-01-01", "10", domain.Health, domain.Debit),
		tx("b", "2024-01-01", "10", domain.Shopping, domain.Debit),
		tx("c", "2024-01-01", "10", domain.Other, domain.Debit),
	}

	for i := 0; i < 5; i++ {
		breakdown := analysis.CategoryBreakdown(txs)
		require.Len(t, breakdown, 3)
		assert.Equal(t, domain.Health, breakdown[0].Category)
		assert.Equal(t, domain.Shopping, breakdown[1].Category)
		assert.Equal(t, domain.Other, breakdown[2].Category)
	}
}

func TestDailySpend_DemoFixture(t *testing.T) {
	daily := analysis.DailySpend(domain.DemoTransactions())

	require.Len(t, daily, 16)
	assert.Equal(t, "2023-10-02", daily[0].Date)
	assert.Equal(t, "2023-10-30", daily[len(daily)-1].Date)
	for i := 1; i < len(daily); i++ {
		assert.Less(t, daily[i-1].Date, daily[i].Date)
	}
	for _, d := range daily {
		if d.Date == "2023-10-05" {
			assert.True(t, dec("27.98").Equal(d.Amount))
		}
	}
}

func TestAggregation_TransferAsymmetry(t *testing.T) {
	txs := []domain.Transaction{
		tx("a", "2024-02-01", "100", domain.Transfers, domain.Debit),
		tx("b", "2024-02-02", "20", domain.Shopping, domain.Debit),
	}

	breakdown := analysis.CategoryBreakdown(txs)
	daily := analysis.DailySpend(txs)

	require.Len(t, breakdown, 1)
	assert.Equal(t, domain.Shopping, breakdown[0].Category)

	require.Len(t, daily, 2)
	assert.Equal(t, "2024-02-01", daily[0].Date)
	assert.True(t, dec("100").Equal(daily[0].Amount))
}

func TestDailySpend_SortsByCalendarDate(t *testing.T) {
	txs := []domain.Transaction{
		tx("a", "2024-03-10", "1", domain.Other, domain.Debit),
		tx("b", "2024-03-02", "2", domain.Other, domain.Debit),
		tx("c", "2024-03-10", "3", domain.Other, domain.Debit),
		tx("d", "2024-03-01", "4", domain.Other, domain.Credit),
	}

	daily := analysis.DailySpend(txs)

	require.Len(t, daily, 2)
	assert.Equal(t, "2024-03-02", daily[0].Date)
	assert.Equal(t, "2024-03-10", daily[1].Date)
	assert.True(t, dec("4").Equal(daily[1].Amount))
}

func TestDailySpendStats(t *testing.T) {
	stats := analysis.DailySpendStats(analysis.DailySpend(domain.DemoTransactions()))

	assert.Equal(t, "173.13", stats.MeanDaily.StringFixed(2))
	assert.Equal(t, "422.08", stats.StdDevDaily.StringFixed(2))
	require.Len(t, stats.SpikeDays, 1)
	assert.Equal(t, "2023-10-02", stats.SpikeDays[0].Date)
}

func TestDailySpendStats_EmptyAndFlat(t *testing.T) {
	empty := analysis.DailySpendStats(nil)
	assert.True(t, empty.MeanDaily.IsZero())
	assert.Empty(t, empty.SpikeDays)

	flat := analysis.DailySpendStats([]domain.DailySpend{
		{Date: "2024-01-01", Amount: dec("10")},
		{Date: "2024-01-02", Amount: dec("10")},
	})
	assert.True(t, flat.StdDevDaily.IsZero())
	assert.Empty(t, flat.SpikeDays)
}

func TestChatContextAndDigest(t *testing.T) {
	txs := domain.DemoTransactions()

	chat := analysis.ChatContext(txs[:2])
	assert.Equal(t, "2023-10-01: Tech Corp Salary ($5200) - Income\n2023-10-02: Downtown Apartments ($1800) - Housing", chat)

	digest := analysis.InsightDigest(txs, 3)
	assert.Equal(t, 2, strings.Count(digest, "; "))
	assert.True(t, strings.HasPrefix(digest, "Tech Corp Salary: $5200 (Income)"))
	assert.Contains(t, digest, "Whole Foods Market: $145.2 (Food & Dining)")

	assert.Equal(t, 17, strings.Count(analysis.InsightDigest(txs, 0), "; "))
}
