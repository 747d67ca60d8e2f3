package finmath

import (
	"math"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateSolver finds the per-period rate at which the net present value of an
// investment is zero, using Newton-Raphson.
type RateSolver struct {
	InitialGuess  float64
	Tolerance     float64
	MaxIterations int
}

// DefaultRateSolver returns a solver starting at 10% with a 1e-5 tolerance and
// at most 100 iterations.
func DefaultRateSolver() RateSolver {
	return RateSolver{InitialGuess: 0.10, Tolerance: 1e-5, MaxIterations: 100}
}

// SolveRate is DefaultRateSolver().Solve.
func SolveRate(initialOutlay decimal.Decimal, flows []domain.CashFlow, terminalValue decimal.Decimal) (float64, bool) {
	return DefaultRateSolver().Solve(initialOutlay, flows, terminalValue)
}

// Solve returns the rate per period and true, or false when the rate cannot be
// determined: invalid inputs, a zero derivative, a divergent step or no convergence
// within MaxIterations. A false result must never be read as a zero rate.
//
// The terminal value is received one period after the last interim cash flow.
func (s RateSolver) Solve(initialOutlay decimal.Decimal, flows []domain.CashFlow, terminalValue decimal.Decimal) (float64, bool) {
	if !initialOutlay.IsPositive() || terminalValue.IsNegative() {
		return 0, false
	}
	last := 0
	for _, cf := range flows {
		if cf.Period < 1 || cf.Period <= last {
			return 0, false
		}
		last = cf.Period
	}

	series := newSeries(initialOutlay, flows, terminalValue)
	r := s.InitialGuess
	for i := 0; i < s.MaxIterations; i++ {
		if 1+r <= 0 {
			return 0, false
		}
		f, df := series.npv(r)
		if df == 0 {
			return 0, false
		}
		next := r - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if math.Abs(next-r) < s.Tolerance {
			return next, true
		}
		r = next
	}
	return 0, false
}

// NPV returns -initialOutlay + sum(cf_i/(1+r)^i) + terminalValue/(1+r)^(k+1), where k
// is the period of the last interim flow.
func NPV(rate float64, initialOutlay decimal.Decimal, flows []domain.CashFlow, terminalValue decimal.Decimal) float64 {
	f, _ := newSeries(initialOutlay, flows, terminalValue).npv(rate)
	return f
}

type term struct {
	amount float64
	period float64
}

type series struct {
	outlay float64
	terms  []term
}

func newSeries(initialOutlay decimal.Decimal, flows []domain.CashFlow, terminalValue decimal.Decimal) series {
	s := series{outlay: initialOutlay.InexactFloat64(), terms: make([]term, 0, len(flows)+1)}
	last := 0
	for _, cf := range flows {
		s.terms = append(s.terms, term{amount: cf.Amount.InexactFloat64(), period: float64(cf.Period)})
		if cf.Period > last {
			last = cf.Period
		}
	}
	s.terms = append(s.terms, term{amount: terminalValue.InexactFloat64(), period: float64(last + 1)})
	return s
}

// npv returns NPV(r) and its derivative with respect to r.
func (s series) npv(r float64) (f, df float64) {
	f = -s.outlay
	for _, t := range s.terms {
		disc := math.Pow(1+r, t.period)
		f += t.amount / disc
		df -= t.period * t.amount / (disc * (1 + r))
	}
	return f, df
}
