package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/dto"
	"github.com/SscSPs/finance_engine/internal/platform/metrics"
	"github.com/SscSPs/finance_engine/internal/utils/finmath"
)

// DebtAnalytics summarises the user's debts and projects every payoff strategy.
func (s *analyticsService) DebtAnalytics(ctx context.Context, userID string) (result *domain.DebtAnalytics, err error) {
	start := time.Now()
	defer func() { s.observe(opDebtAnalytics, start, err) }()

	debts, err := s.debtRepo.ListDebts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	analytics := s.planner.Analytics(debts)

	s.LogInfo(ctx, "Debt analytics computed",
		slog.String("user_id", userID),
		slog.Int("debt_count", len(debts)),
		slog.String("total_debt", analytics.TotalDebt.String()))
	return &analytics, nil
}

// PlanDebtPayoff simulates paying off the user's debts under the requested strategy.
// A plan in which some debt cannot be paid off within the month cap is returned with
// Converged=false rather than as an error.
func (s *analyticsService) PlanDebtPayoff(ctx context.Context, userID string, req dto.PayoffPlanRequest) (result *domain.PayoffPlan, err error) {
	start := time.Now()
	defer func() {
		if err == nil && !result.Converged {
			s.metrics.Observe(opPlanDebtPayoff, metrics.OutcomeNonConvergence, start)
			return
		}
		s.observe(opPlanDebtPayoff, start, err)
	}()

	if err := dto.Validate(req); err != nil {
		s.logFailure(ctx, err, "Invalid payoff plan request", slog.String("user_id", userID))
		return nil, err
	}
	strategy, err := domain.ParsePayoffStrategy(req.Strategy)
	if err != nil {
		return nil, err
	}

	debts, err := s.debtRepo.ListDebts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	plan, err := s.planner.PlanStrategy(debts, strategy, req.AdditionalPayment)
	if err != nil {
		s.logFailure(ctx, err, "Failed to plan debt payoff", slog.String("user_id", userID))
		return nil, err
	}

	if !plan.Converged {
		s.LogWarn(ctx, "Payoff plan hit the month cap before every debt was repaid",
			slog.String("user_id", userID),
			slog.String("strategy", strategy.String()),
			slog.Int("total_months", plan.TotalMonths))
	}
	s.LogInfo(ctx, "Debt payoff plan computed",
		slog.String("user_id", userID),
		slog.String("strategy", strategy.String()),
		slog.Int("total_months", plan.TotalMonths),
		slog.String("total_interest", plan.TotalInterest.String()))
	return &plan, nil
}

// LoanSchedule computes the amortization schedule of a hypothetical loan.
func (s *analyticsService) LoanSchedule(ctx context.Context, req dto.LoanScheduleRequest) (result []domain.AmortizationRow, err error) {
	start := time.Now()
	defer func() { s.observe(opLoanSchedule, start, err) }()

	if err := dto.Validate(req); err != nil {
		s.logFailure(ctx, err, "Invalid loan schedule request")
		return nil, err
	}

	schedule, err := finmath.AmortizationSchedule(req.Principal, req.AnnualRatePercent, req.Years, req.PeriodsPerYear)
	if err != nil {
		s.logFailure(ctx, err, "Failed to compute amortization schedule")
		return nil, err
	}

	s.LogDebug(ctx, "Amortization schedule computed",
		slog.String("principal", req.Principal.String()),
		slog.Int("periods", len(schedule)))
	return schedule, nil
}
