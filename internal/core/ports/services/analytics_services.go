package services

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/dto"
)

// DebtAnalyticsSvc defines debt analysis and payoff planning operations.
type DebtAnalyticsSvc interface {
	// DebtAnalytics summarises the user's debts and projects every payoff strategy.
	DebtAnalytics(ctx context.Context, userID string) (*domain.DebtAnalytics, error)

	// PlanDebtPayoff simulates paying off the user's debts under the requested strategy.
	PlanDebtPayoff(ctx context.Context, userID string, req dto.PayoffPlanRequest) (*domain.PayoffPlan, error)

	// LoanSchedule computes the amortization schedule of a hypothetical loan.
	LoanSchedule(ctx context.Context, req dto.LoanScheduleRequest) ([]domain.AmortizationRow, error)
}

// WealthAnalyticsSvc defines net worth and investment return operations.
type WealthAnalyticsSvc interface {
	// NetWorthHistory reconstructs the user's monthly net worth over a date range.
	NetWorthHistory(ctx context.Context, userID string, req dto.NetWorthHistoryRequest) ([]domain.NetWorthPoint, error)

	// InvestmentReturn estimates the rate of return of one investment.
	InvestmentReturn(ctx context.Context, userID string, investmentID string) (*domain.InvestmentReturn, error)
}

// GoalSvc defines savings goal operations.
type GoalSvc interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.GoalRecord, error)
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.GoalRecord, error)
	ContributeToGoal(ctx context.Context, goalID string, req dto.GoalContributionRequest) (*domain.GoalRecord, error)
	GoalProjection(ctx context.Context, goalID string) (*domain.GoalProjection, error)
}

// CashFlowSvc defines income and expense projection operations.
type CashFlowSvc interface {
	// IncomeProjection projects the user's income month by month.
	IncomeProjection(ctx context.Context, userID string, req dto.CashFlowProjectionRequest) ([]domain.MonthlyTotal, error)

	// CashFlowProjection projects income, expenses and their net month by month.
	CashFlowProjection(ctx context.Context, userID string, req dto.CashFlowProjectionRequest) ([]domain.CashFlowMonth, error)
}

// AnalyticsSvcFacade combines all analytics service interfaces.
// This is a facade for clients that need access to all operations.
type AnalyticsSvcFacade interface {
	DebtAnalyticsSvc
	WealthAnalyticsSvc
	GoalSvc
	CashFlowSvc
}
