package analysis

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	baseRiskScore = 50
	minRiskScore  = 0
	maxRiskScore  = 100

	// defaultDayCount is used as the burn rate divisor when no dates are present.
	defaultDayCount = 30
)

var (
	healthySavingsRate = decimal.NewFromInt(20)
	highDailyBurn      = decimal.NewFromInt(200)
)

// ComputeMetrics derives the dashboard summary metrics from a transaction list.
func ComputeMetrics(transactions []domain.Transaction) domain.FinancialMetrics {
	totalIncome := decimal.Zero
	totalSpend := decimal.Zero
	days := make(map[string]struct{})

	for _, t := range transactions {
		if t.IsIncome() {
			totalIncome = totalIncome.Add(t.Amount)
		}
		if t.IsSpend() {
			totalSpend = totalSpend.Add(t.Amount)
		}
		days[t.Date] = struct{}{}
	}

	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = totalIncome.Sub(totalSpend).Div(totalIncome).Mul(hundred)
	}

	dayCount := len(days)
	if dayCount == 0 {
		dayCount = defaultDayCount
	}
	burnRate := totalSpend.Div(decimal.NewFromInt(int64(dayCount)))

	topCategory := domain.NoCategory
	if breakdown := CategoryBreakdown(transactions); len(breakdown) > 0 {
		topCategory = string(breakdown[0].Category)
	}

	return domain.FinancialMetrics{
		TotalIncome:         totalIncome,
		TotalSpend:          totalSpend,
		SavingsRate:         savingsRate,
		BurnRate:            burnRate,
		RiskScore:           RiskScore(savingsRate, totalIncome, totalSpend, burnRate),
		TopSpendingCategory: topCategory,
	}
}

// RiskScore applies every adjustment independently to the base score and clamps
// the result to [0, 100].
func RiskScore(savingsRate, totalIncome, totalSpend, burnRate decimal.Decimal) int {
	score := baseRiskScore
	if savingsRate.GreaterThan(healthySavingsRate) {
		score -= 20
	}
	if savingsRate.IsNegative() {
		score += 30
	}
	if totalSpend.GreaterThan(totalIncome) {
		score += 20
	}
	if burnRate.GreaterThan(highDailyBurn) {
		score += 10
	}
	return max(minRiskScore, min(maxRiskScore, score))
}
