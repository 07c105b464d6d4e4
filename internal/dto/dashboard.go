package dto

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/SscSPs/finsight_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// MetricsResponse is the summary card data, rounded for display.
type MetricsResponse struct {
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalSpend          decimal.Decimal `json:"totalSpend"`
	SavingsRate         decimal.Decimal `json:"savingsRate"`
	BurnRate            decimal.Decimal `json:"burnRate"`
	RiskScore           int             `json:"riskScore"`
	TopSpendingCategory string          `json:"topSpendingCategory"`
}

// CategoryBreakdownResponse is one slice of the spend-by-category chart.
type CategoryBreakdownResponse struct {
	Category   domain.Category `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
	Color      string          `json:"color"`
}

// DailySpendResponse is one point of the daily spend series.
type DailySpendResponse struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// SpendStatsResponse summarises the daily spend series.
type SpendStatsResponse struct {
	MeanDaily   decimal.Decimal      `json:"meanDaily"`
	StdDevDaily decimal.Decimal      `json:"stdDevDaily"`
	SpikeDays   []DailySpendResponse `json:"spikeDays"`
}

// DashboardSummaryResponse is everything the dashboard charts and cards need.
type DashboardSummaryResponse struct {
	Metrics           MetricsResponse             `json:"metrics"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categoryBreakdown"`
	DailySpend        []DailySpendResponse        `json:"dailySpend"`
	Stats             SpendStatsResponse          `json:"stats"`
	TransactionCount  int                         `json:"transactionCount"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its response DTO.
// Chart series are passed through in engine order.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	breakdown := make([]CategoryBreakdownResponse, len(s.CategoryBreakdown))
	for i, b := range s.CategoryBreakdown {
		breakdown[i] = CategoryBreakdownResponse{
			Category:   b.Category,
			Amount:     utils.RoundMoney(b.Amount),
			Percentage: utils.RoundPercent(b.Percentage),
			Color:      b.Color,
		}
	}

	return DashboardSummaryResponse{
		Metrics: MetricsResponse{
			TotalIncome:         utils.RoundMoney(s.Metrics.TotalIncome),
			TotalSpend:          utils.RoundMoney(s.Metrics.TotalSpend),
			SavingsRate:         utils.RoundPercent(s.Metrics.SavingsRate),
			BurnRate:            utils.RoundMoney(s.Metrics.BurnRate),
			RiskScore:           s.Metrics.RiskScore,
			TopSpendingCategory: s.Metrics.TopSpendingCategory,
		},
		CategoryBreakdown: breakdown,
		DailySpend:        toDailySpendResponses(s.DailySpend),
		Stats: SpendStatsResponse{
			MeanDaily:   utils.RoundMoney(s.Stats.MeanDaily),
			StdDevDaily: utils.RoundMoney(s.Stats.StdDevDaily),
			SpikeDays:   toDailySpendResponses(s.Stats.SpikeDays),
		},
		TransactionCount: s.TransactionCount,
	}
}

func toDailySpendResponses(days []domain.DailySpend) []DailySpendResponse {
	res := make([]DailySpendResponse, len(days))
	for i, d := range days {
		res[i] = DailySpendResponse{Date: d.Date, Amount: utils.RoundMoney(d.Amount)}
	}
	return res
}
