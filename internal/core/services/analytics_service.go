package services

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/analytics"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/platform/metrics"
	"github.com/SscSPs/finance_engine/internal/utils/finmath"
)

// Operation names used for logging and metrics.
const (
	opDebtAnalytics      = "DebtAnalytics"
	opPlanDebtPayoff     = "PlanDebtPayoff"
	opLoanSchedule       = "LoanSchedule"
	opNetWorthHistory    = "NetWorthHistory"
	opInvestmentReturn   = "InvestmentReturn"
	opCreateGoal         = "CreateGoal"
	opUpdateGoal         = "UpdateGoal"
	opContributeToGoal   = "ContributeToGoal"
	opGoalProjection     = "GoalProjection"
	opIncomeProjection   = "IncomeProjection"
	opCashFlowProjection = "CashFlowProjection"
)

const defaultProjectionMaxMonths = 600

// analyticsService loads records through the repository ports, runs the analytics
// engine over them and hands back the derived results.
type analyticsService struct {
	BaseService
	debtRepo       portsrepo.DebtReader
	assetRepo      portsrepo.AssetReader
	liabilityRepo  portsrepo.LiabilityReader
	investmentRepo portsrepo.InvestmentReader
	cashFlowRepo   portsrepo.CashFlowReader
	goalRepo       portsrepo.GoalRepositoryFacade
	prices         portssvc.MarketPriceProvider

	planner             analytics.DebtPlanner
	solver              finmath.RateSolver
	netWorthMonths      int
	projectionMaxMonths int
	metrics             *metrics.Recorder
	now                 func() time.Time
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithDebtPlanner sets the debt planner, e.g. to change the payoff month cap.
func WithDebtPlanner(planner analytics.DebtPlanner) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.planner = planner
	}
}

// WithRateSolver sets the rate solver used for investment returns.
func WithRateSolver(solver finmath.RateSolver) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.solver = solver
	}
}

// WithNetWorthMonths sets the length of the default net worth window.
func WithNetWorthMonths(months int) AnalyticsServiceOption {
	return func(s *analyticsService) {
		if months > 0 {
			s.netWorthMonths = months
		}
	}
}

// WithProjectionMaxMonths bounds the length of income and cash flow projections.
func WithProjectionMaxMonths(months int) AnalyticsServiceOption {
	return func(s *analyticsService) {
		if months > 0 {
			s.projectionMaxMonths = months
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(recorder *metrics.Recorder) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.metrics = recorder
	}
}

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) AnalyticsServiceOption {
	return func(s *analyticsService) {
		s.now = now
	}
}

// NewAnalyticsService creates a new analytics service with the provided options
func NewAnalyticsService(repos portsrepo.RepositoryProvider, prices portssvc.MarketPriceProvider, options ...AnalyticsServiceOption) portssvc.AnalyticsSvcFacade {
	svc := &analyticsService{
		debtRepo:            repos.DebtRepo,
		assetRepo:           repos.AssetRepo,
		liabilityRepo:       repos.LiabilityRepo,
		investmentRepo:      repos.InvestmentRepo,
		cashFlowRepo:        repos.CashFlowRepo,
		goalRepo:            repos.GoalRepo,
		prices:              prices,
		solver:              finmath.DefaultRateSolver(),
		netWorthMonths:      analytics.DefaultNetWorthMonths,
		projectionMaxMonths: defaultProjectionMaxMonths,
		now:                 time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure analyticsService implements the AnalyticsSvcFacade interface
var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

func (s *analyticsService) today() time.Time {
	return s.now().UTC()
}

// observe records the outcome of operation based on err.
func (s *analyticsService) observe(operation string, start time.Time, err error) {
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	s.metrics.Observe(operation, outcome, start)
}

// isClientError reports whether err was caused by the request rather than a collaborator.
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDomain) || errors.Is(err, apperrors.ErrNotFound)
}

// logFailure logs err at the level its cause deserves.
func (s *analyticsService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if isClientError(err) {
		s.LogDebug(ctx, msg, append(keyvals, "error", err.Error())...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
