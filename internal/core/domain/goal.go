package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalRecord is a savings goal with a fixed target date.
type GoalRecord struct {
	GoalID              string          `json:"goalID"`
	Name                string          `json:"name"`
	CurrentAmount       decimal.Decimal `json:"currentAmount"`
	TargetAmount        decimal.Decimal `json:"targetAmount"`
	TargetDate          time.Time       `json:"targetDate"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	CompletedAt         *time.Time      `json:"completedAt,omitempty"` // Set once, when the goal is first achieved
	AuditFields
}

// GoalProjection summarises where a goal stands and what it still needs.
type GoalProjection struct {
	GoalID              string          `json:"goalID"`
	ProgressPercent     decimal.Decimal `json:"progressPercent"`
	RemainingAmount     decimal.Decimal `json:"remainingAmount"`
	MonthsRemaining     int             `json:"monthsRemaining"`
	RequiredMonthly     decimal.Decimal `json:"requiredMonthly"`
	Achieved            bool            `json:"achieved"`
	OnTrack             bool            `json:"onTrack"`
	ProjectedCompletion *time.Time      `json:"projectedCompletion,omitempty"` // Nil when no contribution is planned
}
