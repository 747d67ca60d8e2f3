package finmath_test

import (
	"testing"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/finmath"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func flows(amounts ...string) []domain.CashFlow {
	out := make([]domain.CashFlow, len(amounts))
	for i, a := range amounts {
		out[i] = domain.CashFlow{Amount: d(a), Period: i + 1}
	}
	return out
}

func TestSolveRate(t *testing.T) {
	tests := []struct {
		name     string
		outlay   string
		flows    []domain.CashFlow
		terminal string
		want     float64
		wantOK   bool
	}{
		{name: "bond priced at par", outlay: "1000", flows: flows("100", "100"), terminal: "1100", want: 0.10, wantOK: true},
		{name: "single period gain", outlay: "1000", flows: nil, terminal: "1050", want: 0.05, wantOK: true},
		{name: "loss", outlay: "1000", flows: nil, terminal: "800", want: -0.20, wantOK: true},
		{name: "flat series converges to zero", outlay: "500", flows: flows("0", "0", "0"), terminal: "500", want: 0, wantOK: true},
		{name: "all zero returns has zero derivative", outlay: "500", flows: flows("0", "0"), terminal: "0", wantOK: false},
		{name: "non positive outlay", outlay: "0", flows: flows("10"), terminal: "10", wantOK: false},
		{name: "negative terminal", outlay: "10", flows: nil, terminal: "-1", wantOK: false},
		{name: "unordered periods", outlay: "100", flows: []domain.CashFlow{{Amount: d("5"), Period: 2}, {Amount: d("5"), Period: 1}}, terminal: "100", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := finmath.SolveRate(d(tt.outlay), tt.flows, d(tt.terminal))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-4)
				assert.InDelta(t, 0, finmath.NPV(got, d(tt.outlay), tt.flows, d(tt.terminal)), 1e-2)
			} else {
				assert.Zero(t, got)
			}
		})
	}
}

func TestRateSolver_IterationBudget(t *testing.T) {
	solver := finmath.RateSolver{InitialGuess: 0.10, Tolerance: 1e-12, MaxIterations: 1}
	_, ok := solver.Solve(d("1000"), flows("50", "50", "50"), decimal.NewFromInt(2000))
	assert.False(t, ok)

	solver.MaxIterations = 100
	rate, ok := solver.Solve(d("1000"), flows("50", "50", "50"), decimal.NewFromInt(2000))
	assert.True(t, ok)
	assert.Greater(t, rate, 0.10)
}

func TestRateSolver_SkippedPeriods(t *testing.T) {
	cfs := []domain.CashFlow{{Amount: d("100"), Period: 1}, {Amount: d("100"), Period: 3}}
	rate, ok := finmath.SolveRate(d("1000"), cfs, d("1000"))
	assert.True(t, ok)
	assert.InDelta(t, 0, finmath.NPV(rate, d("1000"), cfs, d("1000")), 1e-2)
}
