package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finsight_dashboard/internal/core/analysis"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
)

// dashboardService implements the DashboardSvc interface
type dashboardService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewDashboardService creates a new dashboard service reading from repo
func NewDashboardService(repo portsrepo.TransactionReader) portssvc.DashboardSvc {
	return &dashboardService{transactionRepo: repo}
}

// Ensure dashboardService implements the DashboardSvc interface
var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetSummary recomputes every dashboard figure from the current ledger
func (s *dashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for dashboard")
		return nil, fmt.Errorf("failed to retrieve transactions for dashboard: %w", err)
	}

	daily := analysis.DailySpend(transactions)
	summary := &domain.DashboardSummary{
		Metrics:           analysis.ComputeMetrics(transactions),
		CategoryBreakdown: analysis.CategoryBreakdown(transactions),
		DailySpend:        daily,
		Stats:             analysis.DailySpendStats(daily),
		TransactionCount:  len(transactions),
	}

	s.LogDebug(ctx, "Dashboard summary computed",
		slog.Int("transaction_count", summary.TransactionCount),
		slog.Int("risk_score", summary.Metrics.RiskScore),
		slog.String("top_category", summary.Metrics.TopSpendingCategory))
	return summary, nil
}
