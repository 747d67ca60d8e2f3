package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoffPlanRequest asks for a debt payoff plan.
type PayoffPlanRequest struct {
	Strategy          string          `json:"strategy" validate:"required,oneof=avalanche snowball minimum"`
	AdditionalPayment decimal.Decimal `json:"additionalPayment" validate:"gte=0"`
}

// LoanScheduleRequest describes a hypothetical fixed-payment loan.
type LoanScheduleRequest struct {
	Principal         decimal.Decimal `json:"principal" validate:"gt=0"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" validate:"gte=0,lte=100"`
	Years             int             `json:"years" validate:"gte=1,lte=50"`
	PeriodsPerYear    int             `json:"periodsPerYear" validate:"omitempty,oneof=1 2 4 12 26 52"` // Defaults to 12
}

// NetWorthHistoryRequest selects the window of a net worth history. Zero dates fall
// back to the configured trailing window ending today.
type NetWorthHistoryRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to" validate:"omitempty,gtefield=From"`
}

// CashFlowProjectionRequest asks for a projection of Months months.
type CashFlowProjectionRequest struct {
	Months int `json:"months" validate:"gte=1"`
}

// CreateGoalRequest creates a savings goal.
type CreateGoalRequest struct {
	UserID              string          `json:"userID" validate:"required"`
	Name                string          `json:"name" validate:"required,max=100"`
	CurrentAmount       decimal.Decimal `json:"currentAmount" validate:"gte=0"`
	TargetAmount        decimal.Decimal `json:"targetAmount" validate:"gt=0"`
	TargetDate          time.Time       `json:"targetDate" validate:"required"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" validate:"gte=0"`
}

// UpdateGoalRequest changes a savings goal. Nil fields are left untouched.
type UpdateGoalRequest struct {
	UserID              string           `json:"userID" validate:"required"`
	Name                *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TargetAmount        *decimal.Decimal `json:"targetAmount,omitempty" validate:"omitempty,gt=0"`
	TargetDate          *time.Time       `json:"targetDate,omitempty"`
	MonthlyContribution *decimal.Decimal `json:"monthlyContribution,omitempty" validate:"omitempty,gte=0"`
}

// GoalContributionRequest adds money to a savings goal.
type GoalContributionRequest struct {
	UserID string          `json:"userID" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
}
