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
	"github.com/SscSPs/finance_engine/internal/platform/metrics"
)

// NetWorthHistory reconstructs the user's monthly net worth over a date range.
// Every investment's current price is looked up exactly once.
func (s *analyticsService) NetWorthHistory(ctx context.Context, userID string, req dto.NetWorthHistoryRequest) (result []domain.NetWorthPoint, err error) {
	start := time.Now()
	defer func() { s.observe(opNetWorthHistory, start, err) }()

	if err := dto.Validate(req); err != nil {
		s.logFailure(ctx, err, "Invalid net worth history request", slog.String("user_id", userID))
		return nil, err
	}

	today := s.today()
	from, to := req.From, req.To
	if to.IsZero() {
		to = today
	}
	if from.IsZero() {
		from, _ = analytics.DefaultNetWorthRange(to, s.netWorthMonths)
	}

	input, err := s.loadNetWorthInput(ctx, userID)
	if err != nil {
		return nil, err
	}

	points, err := analytics.ReconstructNetWorth(input, from, to, today)
	if err != nil {
		s.logFailure(ctx, err, "Failed to reconstruct net worth", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Net worth history reconstructed",
		slog.String("user_id", userID),
		slog.String("from", from.Format(time.DateOnly)),
		slog.String("to", to.Format(time.DateOnly)),
		slog.Int("points", len(points)))
	return points, nil
}

func (s *analyticsService) loadNetWorthInput(ctx context.Context, userID string) (analytics.NetWorthInput, error) {
	var input analytics.NetWorthInput
	var err error

	if input.Assets, err = s.assetRepo.ListAssets(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to list assets", slog.String("user_id", userID))
		return input, fmt.Errorf("failed to list assets: %w", err)
	}
	if input.Liabilities, err = s.liabilityRepo.ListLiabilities(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to list liabilities", slog.String("user_id", userID))
		return input, fmt.Errorf("failed to list liabilities: %w", err)
	}
	if input.Debts, err = s.debtRepo.ListDebtsWithPayments(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to list debt payments", slog.String("user_id", userID))
		return input, fmt.Errorf("failed to list debt payments: %w", err)
	}

	investments, err := s.investmentRepo.ListInvestments(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments", slog.String("user_id", userID))
		return input, fmt.Errorf("failed to list investments: %w", err)
	}
	input.Investments = make([]domain.PricedInvestment, 0, len(investments))
	for _, inv := range investments {
		price, err := s.prices.CurrentPrice(ctx, inv.Symbol)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch current price",
				slog.String("investment_id", inv.InvestmentID),
				slog.String("symbol", inv.Symbol))
			return input, fmt.Errorf("failed to fetch current price for %s: %w", inv.Symbol, err)
		}
		input.Investments = append(input.Investments, domain.PricedInvestment{Investment: inv, CurrentPrice: price})
	}
	return input, nil
}

// InvestmentReturn estimates the rate of return of one investment from its
// transaction log and current price. An undeterminable rate is not an error.
func (s *analyticsService) InvestmentReturn(ctx context.Context, userID string, investmentID string) (result *domain.InvestmentReturn, err error) {
	start := time.Now()
	defer func() {
		if err == nil && !result.Determinable {
			s.metrics.Observe(opInvestmentReturn, metrics.OutcomeNonConvergence, start)
			return
		}
		s.observe(opInvestmentReturn, start, err)
	}()

	inv, err := s.investmentRepo.FindInvestmentByID(ctx, userID, investmentID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find investment",
			slog.String("user_id", userID),
			slog.String("investment_id", investmentID))
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}
	if inv == nil {
		return nil, fmt.Errorf("investment %s: %w", investmentID, apperrors.ErrNotFound)
	}

	price, err := s.prices.CurrentPrice(ctx, inv.Symbol)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch current price",
			slog.String("investment_id", investmentID),
			slog.String("symbol", inv.Symbol))
		return nil, fmt.Errorf("failed to fetch current price for %s: %w", inv.Symbol, err)
	}

	ret := analytics.EstimateInvestmentReturn(s.solver, *inv, price, s.today())
	if !ret.Determinable {
		s.LogWarn(ctx, "Investment return could not be determined",
			slog.String("investment_id", investmentID),
			slog.Int("transactions", len(inv.Transactions)))
	} else {
		s.LogInfo(ctx, "Investment return estimated",
			slog.String("investment_id", investmentID),
			slog.Float64("annualized_rate", ret.AnnualizedRate))
	}
	return &ret, nil
}
