package services

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// DashboardSvc computes the figures shown on the dashboard
type DashboardSvc interface {
	// GetSummary returns metrics, chart series and spend statistics for the
	// current ledger.
	GetSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
