package analytics_test

import (
	"testing"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/analytics"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebtPlanner_SimulatePayoff(t *testing.T) {
	tests := []struct {
		name          string
		balance       string
		rate          string
		minimum       string
		extra         string
		wantMonths    int
		wantInterest  float64
		wantConverged bool
	}{
		{name: "credit card", balance: "1000", rate: "20", minimum: "50", extra: "0", wantMonths: 25, wantInterest: 226.61, wantConverged: true},
		{name: "extra payment shortens payoff", balance: "1000", rate: "20", minimum: "50", extra: "10", wantMonths: 20, wantInterest: 181.36, wantConverged: true},
		{name: "smaller loan", balance: "500", rate: "15", minimum: "30", extra: "0", wantMonths: 19, wantInterest: 64.20, wantConverged: true},
		{name: "zero rate", balance: "1200", rate: "0", minimum: "100", extra: "0", wantMonths: 12, wantInterest: 0, wantConverged: true},
		{name: "already paid", balance: "0", rate: "10", minimum: "100", extra: "0", wantMonths: 0, wantInterest: 0, wantConverged: true},
		{name: "payment below interest hits cap", balance: "1000", rate: "20", minimum: "10", extra: "0", wantMonths: 360, wantInterest: 6000, wantConverged: false},
		{name: "no payment hits cap", balance: "1000", rate: "0", minimum: "0", extra: "0", wantMonths: 360, wantInterest: 0, wantConverged: false},
	}

	planner := analytics.DebtPlanner{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planner.SimulatePayoff(d(tt.balance), d(tt.rate), d(tt.minimum), d(tt.extra))
			assert.Equal(t, tt.wantMonths, got.Months)
			assert.InDelta(t, tt.wantInterest, got.TotalInterest.InexactFloat64(), 0.01)
			assert.Equal(t, tt.wantConverged, got.Converged)
			assert.True(t, got.MonthlyPayment.Equal(d(tt.minimum).Add(d(tt.extra))))
		})
	}
}

func TestDebtPlanner_CustomCap(t *testing.T) {
	got := analytics.NewDebtPlanner(12).SimulatePayoff(d("1000"), d("20"), d("50"), decimal.Zero)
	assert.Equal(t, 12, got.Months)
	assert.False(t, got.Converged)
}

func sampleDebts() []domain.DebtRecord {
	return []domain.DebtRecord{
		{DebtID: "card", Name: "Card", DebtType: domain.CreditCard, Balance: d("1000"), AnnualRatePercent: d("20"), MinimumPayment: d("50"), DueDate: date(2025, 3, 20)},
		{DebtID: "loan", Name: "Loan", DebtType: domain.PersonalLoan, Balance: d("500"), AnnualRatePercent: d("15"), MinimumPayment: d("30"), DueDate: date(2025, 3, 5)},
	}
}

func TestDebtPlanner_PlanStrategy_Ordering(t *testing.T) {
	debts := []domain.DebtRecord{
		{DebtID: "a", Balance: d("3000"), AnnualRatePercent: d("10"), MinimumPayment: d("100"), DueDate: date(2025, 1, 15)},
		{DebtID: "b", Balance: d("500"), AnnualRatePercent: d("24"), MinimumPayment: d("40"), DueDate: date(2025, 1, 28)},
		{DebtID: "c", Balance: d("500"), AnnualRatePercent: d("18"), MinimumPayment: d("25"), DueDate: date(2025, 1, 3)},
		{DebtID: "d", Balance: d("5000"), AnnualRatePercent: d("24"), MinimumPayment: d("150"), DueDate: date(2025, 1, 10)},
	}

	tests := []struct {
		strategy domain.PayoffStrategy
		want     []string
	}{
		// Rate descending, larger balance first on ties.
		{strategy: domain.StrategyAvalanche, want: []string{"d", "b", "c", "a"}},
		// Balance ascending, higher rate first on ties.
		{strategy: domain.StrategySnowball, want: []string{"b", "c", "a", "d"}},
		// Due date order.
		{strategy: domain.StrategyMinimum, want: []string{"c", "d", "a", "b"}},
	}

	planner := analytics.DebtPlanner{}
	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			plan, err := planner.PlanStrategy(debts, tt.strategy, decimal.Zero)
			require.NoError(t, err)
			ids := make([]string, len(plan.PayoffSchedule))
			for i, p := range plan.PayoffSchedule {
				ids[i] = p.DebtID
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, tt.strategy, plan.Strategy)
		})
	}

	// The input slice keeps its order.
	assert.Equal(t, "a", debts[0].DebtID)
}

func TestDebtPlanner_PlanStrategy_Totals(t *testing.T) {
	planner := analytics.DebtPlanner{}
	plan, err := planner.PlanStrategy(sampleDebts(), domain.StrategyAvalanche, decimal.Zero)
	require.NoError(t, err)

	require.Len(t, plan.PayoffSchedule, 2)
	assert.True(t, plan.PayoffSchedule[0].AnnualRatePercent.Equal(d("20")))
	assert.Equal(t, 25, plan.TotalMonths)
	assert.InDelta(t, 226.61+64.20, plan.TotalInterest.InexactFloat64(), 0.02)
	assert.True(t, plan.MonthlyCost.Equal(d("80")))
	assert.True(t, plan.Converged)

	// The additional payment is applied to each debt on its own.
	plan, err = planner.PlanStrategy(sampleDebts(), domain.StrategySnowball, d("10"))
	require.NoError(t, err)
	assert.True(t, plan.MonthlyCost.Equal(d("100")))
	for _, p := range plan.PayoffSchedule {
		single := planner.SimulatePayoff(p.Balance, p.AnnualRatePercent, p.MonthlyPayment.Sub(d("10")), d("10"))
		assert.Equal(t, single.Months, p.Months)
		assert.True(t, single.TotalInterest.Equal(p.TotalInterest))
	}
}

func TestDebtPlanner_PlanStrategy_Invalid(t *testing.T) {
	planner := analytics.DebtPlanner{}

	_, err := planner.PlanStrategy(sampleDebts(), domain.PayoffStrategy("fastest"), decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = planner.PlanStrategy(sampleDebts(), domain.StrategyAvalanche, d("-1"))
	assert.ErrorIs(t, err, apperrors.ErrDomain)
}

func TestDebtPlanner_PlanStrategy_Empty(t *testing.T) {
	plan, err := analytics.DebtPlanner{}.PlanStrategy(nil, domain.StrategySnowball, decimal.Zero)
	require.NoError(t, err)
	assert.Zero(t, plan.TotalMonths)
	assert.True(t, plan.TotalInterest.IsZero())
	assert.NotNil(t, plan.PayoffSchedule)
	assert.Empty(t, plan.PayoffSchedule)
	assert.True(t, plan.Converged)
}

func TestDebtPlanner_PlanStrategy_FlagsNonConvergence(t *testing.T) {
	debts := append(sampleDebts(), domain.DebtRecord{DebtID: "stuck", Balance: d("10000"), AnnualRatePercent: d("30"), MinimumPayment: d("50")})
	plan, err := analytics.DebtPlanner{}.PlanStrategy(debts, domain.StrategyAvalanche, decimal.Zero)
	require.NoError(t, err)
	assert.False(t, plan.Converged)
	assert.Equal(t, analytics.DefaultMaxPayoffMonths, plan.TotalMonths)
}

func TestDebtPlanner_Analytics(t *testing.T) {
	got := analytics.DebtPlanner{}.Analytics(sampleDebts())

	assert.True(t, got.TotalDebt.Equal(d("1500")))
	assert.True(t, got.MonthlyPayments.Equal(d("80")))
	// (1000*20 + 500*15) / 1500
	assert.True(t, got.AverageInterestRate.Equal(d("18.33")), "got %s", got.AverageInterestRate)
	require.Len(t, got.SortedDebts, 2)
	assert.True(t, got.SortedDebts[0].AnnualRatePercent.Equal(d("20")))

	assert.Equal(t, 1, got.DebtsByType[domain.CreditCard].Count)
	assert.True(t, got.DebtsByType[domain.PersonalLoan].Balance.Equal(d("500")))

	assert.Equal(t, domain.StrategyMinimum, got.PayoffProjection.Minimum.Strategy)
	assert.Equal(t, "loan", got.PayoffProjection.Minimum.PayoffSchedule[0].DebtID)
	assert.Equal(t, "loan", got.PayoffProjection.Snowball.PayoffSchedule[0].DebtID)
	assert.Equal(t, "card", got.PayoffProjection.Avalanche.PayoffSchedule[0].DebtID)
	assert.Equal(t, 25, got.PayoffProjection.Avalanche.TotalMonths)
}

func TestDebtPlanner_Analytics_Empty(t *testing.T) {
	got := analytics.DebtPlanner{}.Analytics(nil)
	assert.True(t, got.TotalDebt.IsZero())
	assert.True(t, got.AverageInterestRate.IsZero())
	assert.True(t, got.MonthlyPayments.IsZero())
	assert.NotNil(t, got.DebtsByType)
	assert.Empty(t, got.SortedDebts)
	assert.Zero(t, got.PayoffProjection.Avalanche.TotalMonths)
}
