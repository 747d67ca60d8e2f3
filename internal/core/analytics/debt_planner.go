package analytics

import (
	"fmt"
	"slices"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/finmath"
	"github.com/shopspring/decimal"
)

// DefaultMaxPayoffMonths bounds a payoff simulation to 30 years.
const DefaultMaxPayoffMonths = 360

// DebtPlanner simulates debt payoffs. The zero value uses DefaultMaxPayoffMonths.
type DebtPlanner struct {
	MaxMonths int
}

// NewDebtPlanner returns a planner capped at maxMonths; non-positive values use the default.
func NewDebtPlanner(maxMonths int) DebtPlanner {
	return DebtPlanner{MaxMonths: maxMonths}
}

func (p DebtPlanner) maxMonths() int {
	if p.MaxMonths <= 0 {
		return DefaultMaxPayoffMonths
	}
	return p.MaxMonths
}

// SimulatePayoff pays balance down month by month with minimumPayment+extraPayment.
// Each month accrues balance*monthlyRate of interest and applies what is left of the
// payment to the principal. The balance never increases. When the payment cannot
// cover the interest the simulation runs to the month cap and reports Converged=false.
func (p DebtPlanner) SimulatePayoff(balance, annualRatePercent, minimumPayment, extraPayment decimal.Decimal) domain.PayoffResult {
	payment := minimumPayment.Add(extraPayment)
	rate := finmath.PeriodicRate(annualRatePercent, 12)
	limit := p.maxMonths()

	result := domain.PayoffResult{MonthlyPayment: payment, Converged: true}
	totalInterest := decimal.Zero
	for balance.IsPositive() {
		if result.Months == limit {
			result.Converged = false
			break
		}
		result.Months++

		interest := balance.Mul(rate)
		principal := decimal.Min(balance, payment.Sub(interest))
		totalInterest = totalInterest.Add(interest)
		if principal.IsPositive() {
			balance = balance.Sub(principal)
		}
	}
	result.TotalInterest = totalInterest.Round(2)
	return result
}

// PlanStrategy orders debts by strategy and simulates each one.
//
// additionalPayment is added to every debt's own simulation; it is not rolled onto
// the top-priority debt, nor are freed-up minimums cascaded once a debt is paid off.
// Under this model the strategy only changes the order of PayoffSchedule, never
// the totals. TotalMonths is the longest individual payoff and TotalInterest the sum.
func (p DebtPlanner) PlanStrategy(debts []domain.DebtRecord, strategy domain.PayoffStrategy, additionalPayment decimal.Decimal) (domain.PayoffPlan, error) {
	if !strategy.Valid() {
		return domain.PayoffPlan{}, fmt.Errorf("%w: unknown payoff strategy %q", apperrors.ErrValidation, strategy)
	}
	if additionalPayment.IsNegative() {
		return domain.PayoffPlan{}, fmt.Errorf("%w: additional payment must not be negative, got %s", apperrors.ErrDomain, additionalPayment)
	}
	return p.plan(debts, strategy, additionalPayment), nil
}

func (p DebtPlanner) plan(debts []domain.DebtRecord, strategy domain.PayoffStrategy, additionalPayment decimal.Decimal) domain.PayoffPlan {
	plan := domain.PayoffPlan{
		Strategy:       strategy,
		TotalInterest:  decimal.Zero,
		MonthlyCost:    decimal.Zero,
		PayoffSchedule: make([]domain.DebtPayoff, 0, len(debts)),
		Converged:      true,
	}

	sorted := slices.Clone(debts)
	slices.SortStableFunc(sorted, strategy.Compare)

	for _, debt := range sorted {
		result := p.SimulatePayoff(debt.Balance, debt.AnnualRatePercent, debt.MinimumPayment, additionalPayment)
		plan.PayoffSchedule = append(plan.PayoffSchedule, domain.DebtPayoff{
			DebtID:            debt.DebtID,
			Name:              debt.Name,
			Balance:           debt.Balance,
			AnnualRatePercent: debt.AnnualRatePercent,
			PayoffResult:      result,
		})
		plan.TotalMonths = max(plan.TotalMonths, result.Months)
		plan.TotalInterest = plan.TotalInterest.Add(result.TotalInterest)
		plan.MonthlyCost = plan.MonthlyCost.Add(result.MonthlyPayment)
		plan.Converged = plan.Converged && result.Converged
	}
	return plan
}

// Analytics summarises debts: totals, balance-weighted average rate, per type
// breakdown and a payoff projection for every strategy with no additional payment.
// An empty slice yields the zeroed default.
func (p DebtPlanner) Analytics(debts []domain.DebtRecord) domain.DebtAnalytics {
	analytics := domain.DebtAnalytics{
		TotalDebt:           decimal.Zero,
		AverageInterestRate: decimal.Zero,
		MonthlyPayments:     decimal.Zero,
		DebtsByType:         map[domain.DebtType]domain.DebtTypeSummary{},
		SortedDebts:         []domain.DebtRecord{},
	}

	weighted := decimal.Zero
	for _, debt := range debts {
		analytics.TotalDebt = analytics.TotalDebt.Add(debt.Balance)
		analytics.MonthlyPayments = analytics.MonthlyPayments.Add(debt.MinimumPayment)
		weighted = weighted.Add(debt.Balance.Mul(debt.AnnualRatePercent))

		debtType := debt.DebtType
		if debtType == "" {
			debtType = domain.OtherDebt
		}
		summary := analytics.DebtsByType[debtType]
		summary.Count++
		summary.Balance = summary.Balance.Add(debt.Balance)
		analytics.DebtsByType[debtType] = summary
	}
	if analytics.TotalDebt.IsPositive() {
		analytics.AverageInterestRate = weighted.Div(analytics.TotalDebt).Round(2)
	}

	analytics.PayoffProjection = domain.PayoffProjection{
		Minimum:   p.plan(debts, domain.StrategyMinimum, decimal.Zero),
		Snowball:  p.plan(debts, domain.StrategySnowball, decimal.Zero),
		Avalanche: p.plan(debts, domain.StrategyAvalanche, decimal.Zero),
	}
	analytics.SortedDebts = append(analytics.SortedDebts, debts...)
	slices.SortStableFunc(analytics.SortedDebts, domain.StrategyAvalanche.Compare)
	return analytics
}
