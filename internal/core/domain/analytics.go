package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryBreakdown is one slice of the spend-by-category chart.
type CategoryBreakdown struct {
	Category   Category        `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"` // Share of total breakdown amount, 0-100
	Color      string          `json:"color"`
}

// DailySpend is the total debit amount for one calendar date.
type DailySpend struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// FinancialMetrics is the summary snapshot shown at the top of the dashboard.
type FinancialMetrics struct {
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalSpend          decimal.Decimal `json:"totalSpend"`
	SavingsRate         decimal.Decimal `json:"savingsRate"` // Percentage
	BurnRate            decimal.Decimal `json:"burnRate"`    // Average spend per distinct day
	RiskScore           int             `json:"riskScore"`   // 0-100, lower is safer
	TopSpendingCategory string          `json:"topSpendingCategory"`
}

// SpendStats summarises the daily spend series.
type SpendStats struct {
	MeanDaily   decimal.Decimal `json:"meanDaily"`
	StdDevDaily decimal.Decimal `json:"stdDevDaily"`
	SpikeDays   []DailySpend    `json:"spikeDays"`
}

// DashboardSummary bundles everything the dashboard charts and cards consume.
type DashboardSummary struct {
	Metrics           FinancialMetrics    `json:"metrics"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	DailySpend        []DailySpend        `json:"dailySpend"`
	Stats             SpendStats          `json:"stats"`
	TransactionCount  int                 `json:"transactionCount"`
}
