package analytics

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/calendar"
	"github.com/shopspring/decimal"
)

// GoalUpdate lists the mutable fields of a goal. Nil fields are left unchanged.
type GoalUpdate struct {
	Name                *string
	TargetAmount        *decimal.Decimal
	TargetDate          *time.Time
	MonthlyContribution *decimal.Decimal
}

// ValidateGoal checks the invariants every created or updated goal must satisfy:
// non-negative amounts, a target above the current amount and a target date after today.
func ValidateGoal(goal domain.GoalRecord, today time.Time) error {
	switch {
	case goal.CurrentAmount.IsNegative():
		return fmt.Errorf("%w: current amount must not be negative", apperrors.ErrDomain)
	case goal.MonthlyContribution.IsNegative():
		return fmt.Errorf("%w: monthly contribution must not be negative", apperrors.ErrDomain)
	case !goal.TargetAmount.GreaterThan(goal.CurrentAmount):
		return fmt.Errorf("%w: target amount %s must exceed current amount %s", apperrors.ErrDomain, goal.TargetAmount, goal.CurrentAmount)
	case !calendar.Day(goal.TargetDate).After(calendar.Day(today)):
		return fmt.Errorf("%w: target date %s must be in the future", apperrors.ErrDomain, goal.TargetDate.Format(time.DateOnly))
	}
	return nil
}

// UpdateGoal applies upd to a copy of goal and validates the result. The original
// goal is returned unchanged alongside the error when the update is rejected.
func UpdateGoal(goal domain.GoalRecord, upd GoalUpdate, today time.Time) (domain.GoalRecord, error) {
	updated := goal
	if upd.Name != nil {
		updated.Name = *upd.Name
	}
	if upd.TargetAmount != nil {
		updated.TargetAmount = *upd.TargetAmount
	}
	if upd.TargetDate != nil {
		updated.TargetDate = *upd.TargetDate
	}
	if upd.MonthlyContribution != nil {
		updated.MonthlyContribution = *upd.MonthlyContribution
	}
	if err := ValidateGoal(updated, today); err != nil {
		return goal, err
	}
	updated.LastUpdatedAt = today
	return updated, nil
}

// ProgressPercent returns currentAmount/targetAmount*100, or zero for a zero target.
func ProgressPercent(goal domain.GoalRecord) decimal.Decimal {
	if !goal.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
}

// RemainingAmount returns targetAmount-currentAmount.
func RemainingAmount(goal domain.GoalRecord) decimal.Decimal {
	return goal.TargetAmount.Sub(goal.CurrentAmount)
}

// IsAchieved reports whether the current amount has reached the target.
func IsAchieved(goal domain.GoalRecord) bool {
	return goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
}

// MonthsRemaining counts whole calendar months from today to the target date, at least one.
func MonthsRemaining(goal domain.GoalRecord, today time.Time) int {
	return max(1, calendar.MonthsBetween(today, goal.TargetDate))
}

// RequiredMonthlyContribution spreads the remaining amount over the months left,
// rounded to cents. It is zero once the goal is achieved.
func RequiredMonthlyContribution(goal domain.GoalRecord, today time.Time) decimal.Decimal {
	if IsAchieved(goal) {
		return decimal.Zero
	}
	months := decimal.NewFromInt(int64(MonthsRemaining(goal, today)))
	return RemainingAmount(goal).Div(months).Round(2)
}

// ApplyContribution returns a copy of goal with amount added. A contribution that
// would push the goal past its target is rejected. CompletedAt is set the first time
// the goal is achieved and never changed afterwards.
func ApplyContribution(goal domain.GoalRecord, amount decimal.Decimal, now time.Time) (domain.GoalRecord, error) {
	if amount.IsNegative() {
		return goal, fmt.Errorf("%w: contribution must not be negative", apperrors.ErrDomain)
	}
	if goal.CurrentAmount.Add(amount).GreaterThan(goal.TargetAmount) {
		return goal, fmt.Errorf("%w: contribution of %s exceeds target", apperrors.ErrDomain, amount)
	}

	updated := goal
	updated.CurrentAmount = goal.CurrentAmount.Add(amount)
	if IsAchieved(updated) && updated.CompletedAt == nil {
		completed := now
		updated.CompletedAt = &completed
	}
	if !amount.IsZero() {
		updated.LastUpdatedAt = now
	}
	return updated, nil
}

// ProjectGoal summarises a goal. The projected completion assumes the goal's own
// monthly contribution is saved every month starting this month.
func ProjectGoal(goal domain.GoalRecord, today time.Time) domain.GoalProjection {
	projection := domain.GoalProjection{
		GoalID:          goal.GoalID,
		ProgressPercent: ProgressPercent(goal).Round(2),
		RemainingAmount: RemainingAmount(goal),
		MonthsRemaining: MonthsRemaining(goal, today),
		RequiredMonthly: RequiredMonthlyContribution(goal, today),
		Achieved:        IsAchieved(goal),
	}

	switch {
	case projection.Achieved:
		projection.RemainingAmount = decimal.Zero
		projection.ProjectedCompletion = goal.CompletedAt
		projection.OnTrack = true
	case goal.MonthlyContribution.IsPositive():
		months := projection.RemainingAmount.Div(goal.MonthlyContribution).Ceil().IntPart()
		completion := calendar.EndOfMonth(calendar.AddMonths(today, int(months)-1))
		projection.ProjectedCompletion = &completion
		projection.OnTrack = !completion.After(calendar.EndOfMonth(goal.TargetDate))
	}
	return projection
}
