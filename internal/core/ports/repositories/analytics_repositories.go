package repositories

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
)

// DebtReader loads debts and their payment logs for a user.
type DebtReader interface {
	// ListDebts returns the user's open debts.
	ListDebts(ctx context.Context, userID string) ([]domain.DebtRecord, error)

	// ListDebtsWithPayments returns every debt together with its recorded payments.
	ListDebtsWithPayments(ctx context.Context, userID string) ([]domain.DebtWithPayments, error)
}

// AssetReader loads assets with their valuation history.
type AssetReader interface {
	ListAssets(ctx context.Context, userID string) ([]domain.Asset, error)
}

// LiabilityReader loads liabilities.
type LiabilityReader interface {
	ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error)
}

// InvestmentReader loads investments with their transaction logs.
type InvestmentReader interface {
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)

	// FindInvestmentByID returns apperrors.ErrNotFound when the investment does not
	// exist or does not belong to the user.
	FindInvestmentByID(ctx context.Context, userID, investmentID string) (*domain.Investment, error)
}

// CashFlowReader loads recurring and one-time incomes and expenses.
type CashFlowReader interface {
	ListIncomes(ctx context.Context, userID string) ([]domain.IncomeRecord, error)
	ListExpenses(ctx context.Context, userID string) ([]domain.ExpenseRecord, error)
}

// GoalReader defines read operations for savings goals.
type GoalReader interface {
	// FindGoalByID returns apperrors.ErrNotFound when the goal does not exist.
	FindGoalByID(ctx context.Context, goalID string) (*domain.GoalRecord, error)
}

// GoalWriter defines write operations for savings goals.
type GoalWriter interface {
	SaveGoal(ctx context.Context, goal domain.GoalRecord) error
	UpdateGoal(ctx context.Context, goal domain.GoalRecord) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
