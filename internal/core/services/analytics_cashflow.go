package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/analytics"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/dto"
)

// IncomeProjection projects the user's income month by month.
func (s *analyticsService) IncomeProjection(ctx context.Context, userID string, req dto.CashFlowProjectionRequest) (result []domain.MonthlyTotal, err error) {
	start := time.Now()
	defer func() { s.observe(opIncomeProjection, start, err) }()

	if err := s.validateProjection(ctx, userID, req); err != nil {
		return nil, err
	}

	incomes, err := s.cashFlowRepo.ListIncomes(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incomes", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	totals, err := analytics.ProjectMonths(incomes, req.Months)
	if err != nil {
		s.logFailure(ctx, err, "Failed to project income", slog.String("user_id", userID))
		return nil, err
	}

	s.LogDebug(ctx, "Income projection computed",
		slog.String("user_id", userID),
		slog.Int("months", req.Months),
		slog.Int("incomes", len(incomes)))
	return totals, nil
}

// CashFlowProjection projects income, expenses and their net month by month.
func (s *analyticsService) CashFlowProjection(ctx context.Context, userID string, req dto.CashFlowProjectionRequest) (result []domain.CashFlowMonth, err error) {
	start := time.Now()
	defer func() { s.observe(opCashFlowProjection, start, err) }()

	if err := s.validateProjection(ctx, userID, req); err != nil {
		return nil, err
	}

	incomes, err := s.cashFlowRepo.ListIncomes(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incomes", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	expenses, err := s.cashFlowRepo.ListExpenses(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	months, err := analytics.ProjectCashFlow(incomes, expenses, req.Months)
	if err != nil {
		s.logFailure(ctx, err, "Failed to project cash flow", slog.String("user_id", userID))
		return nil, err
	}

	s.LogDebug(ctx, "Cash flow projection computed",
		slog.String("user_id", userID),
		slog.Int("months", req.Months))
	return months, nil
}

func (s *analyticsService) validateProjection(ctx context.Context, userID string, req dto.CashFlowProjectionRequest) error {
	if err := dto.Validate(req); err != nil {
		s.logFailure(ctx, err, "Invalid projection request", slog.String("user_id", userID))
		return err
	}
	if req.Months > s.projectionMaxMonths {
		return fmt.Errorf("%w: months must not exceed %d", apperrors.ErrValidation, s.projectionMaxMonths)
	}
	return nil
}
