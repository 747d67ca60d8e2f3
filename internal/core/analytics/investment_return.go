package analytics

import (
	"math"
	"slices"
	"time"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/calendar"
	"github.com/SscSPs/finance_engine/internal/utils/finmath"
	"github.com/shopspring/decimal"
)

// InvestmentCashFlows converts an investment's transaction log into rate solver
// inputs with monthly periods. Net purchases in the month of the first transaction
// form the initial outlay; later months contribute sells and dividends minus buys;
// the position held on asOf, valued at price, is the terminal value received in
// asOf's month. Transactions after asOf are ignored.
func InvestmentCashFlows(inv domain.Investment, price decimal.Decimal, asOf time.Time) (outlay decimal.Decimal, flows []domain.CashFlow, terminal decimal.Decimal) {
	txs := make([]domain.InvestmentTransaction, 0, len(inv.Transactions))
	for _, tx := range inv.Transactions {
		if !calendar.Day(tx.Date).After(calendar.Day(asOf)) {
			txs = append(txs, tx)
		}
	}
	if len(txs) == 0 {
		return decimal.Zero, nil, decimal.Zero
	}
	slices.SortStableFunc(txs, func(a, b domain.InvestmentTransaction) int { return a.Date.Compare(b.Date) })

	start := txs[0].Date
	horizon := calendar.MonthsBetween(start, asOf)
	byPeriod := make(map[int]decimal.Decimal)
	for _, tx := range txs {
		period := calendar.MonthsBetween(start, tx.Date)
		amount := tx.CashAmount()
		if tx.Type == domain.Buy {
			amount = amount.Neg()
		}
		byPeriod[period] = byPeriod[period].Add(amount)
	}

	outlay = byPeriod[0].Neg()
	for period := 1; period < horizon; period++ {
		if cf, ok := byPeriod[period]; ok && !cf.IsZero() {
			flows = append(flows, domain.CashFlow{Amount: cf, Period: period})
		}
	}
	// Pad so that the terminal value lands on the asOf month.
	if horizon > 1 && (len(flows) == 0 || flows[len(flows)-1].Period < horizon-1) {
		flows = append(flows, domain.CashFlow{Amount: decimal.Zero, Period: horizon - 1})
	}

	terminal = SharesHeld(inv, asOf).Mul(price)
	if horizon > 0 {
		// Cash moving in the asOf month itself is settled together with the terminal value.
		terminal = terminal.Add(byPeriod[horizon])
	}
	return outlay, flows, terminal
}

// EstimateInvestmentReturn solves for the monthly rate of return of an investment and
// annualises it. Determinable is false when the rate solver cannot settle on a rate.
func EstimateInvestmentReturn(solver finmath.RateSolver, inv domain.Investment, price decimal.Decimal, asOf time.Time) domain.InvestmentReturn {
	outlay, flows, terminal := InvestmentCashFlows(inv, price, asOf)
	result := domain.InvestmentReturn{
		InvestmentID: inv.InvestmentID,
		Invested:     outlay,
		MarketValue:  SharesHeld(inv, asOf).Mul(price),
	}

	rate, ok := solver.Solve(outlay, flows, terminal)
	if !ok {
		return result
	}
	result.MonthlyRate = rate
	result.AnnualizedRate = math.Pow(1+rate, 12) - 1
	result.Determinable = true
	return result
}
