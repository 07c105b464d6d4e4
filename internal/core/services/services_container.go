package services

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/finsight_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finsight_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// model may be nil, in which case AI features answer with fallbacks.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, model gateways.LanguageModel) *portssvc.ServiceContainer {
	// Create the container structure first
	container := &portssvc.ServiceContainer{}

	insight := NewInsightService(
		repos.TransactionRepo,
		WithLanguageModel(model),
		WithModelNames(cfg.ChatModel, cfg.InsightModel),
		WithInsightSampleSize(cfg.InsightSampleSize),
	)

	// The ledger notifies the chat and the table whenever a dataset is loaded
	ledger := NewLedgerService(repos.TransactionRepo, repos.AuditLogRepo, WithLoadListeners(insight))
	table := NewTableService(ledger)
	ledger.AddLoadListener(table)

	container.Ledger = ledger
	container.Table = table
	container.Insight = insight
	container.Dashboard = NewDashboardService(repos.TransactionRepo)

	return container
}
