package services

import (
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/platform/config"
	"github.com/SscSPs/finance_engine/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Metrics are registered on reg when they are enabled in cfg and reg is not nil. opts are
// applied after the configured ones.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, prices portssvc.MarketPriceProvider, reg prometheus.Registerer, opts ...AnalyticsServiceOption) *portssvc.ServiceContainer {
	options := []AnalyticsServiceOption{
		WithDebtPlanner(cfg.DebtPlanner()),
		WithRateSolver(cfg.RateSolver()),
		WithNetWorthMonths(cfg.NetWorthDefaultMonths),
		WithProjectionMaxMonths(cfg.ProjectionMaxMonths),
	}
	if cfg.MetricsEnabled && reg != nil {
		options = append(options, WithMetrics(metrics.NewRecorder(reg)))
	}
	options = append(options, opts...)

	return &portssvc.ServiceContainer{
		Analytics: NewAnalyticsService(repos, prices, options...),
	}
}
