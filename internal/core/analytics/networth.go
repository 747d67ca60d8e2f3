package analytics

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/calendar"
	"github.com/shopspring/decimal"
)

// DefaultNetWorthMonths is the length of the default reconstruction window.
const DefaultNetWorthMonths = 12

// NetWorthInput groups everything needed to rebuild a net-worth history.
type NetWorthInput struct {
	Assets      []domain.Asset
	Liabilities []domain.Liability
	Investments []domain.PricedInvestment
	Debts       []domain.DebtWithPayments
}

// DefaultNetWorthRange returns a window of months calendar months ending today,
// starting on the first day of the earliest month.
func DefaultNetWorthRange(today time.Time, months int) (from, to time.Time) {
	if months <= 0 {
		months = DefaultNetWorthMonths
	}
	to = calendar.Day(today)
	return calendar.AddMonths(to, -(months - 1)), to
}

// ReconstructNetWorth evaluates the net worth at the end of every calendar month
// between from and to inclusive (the last point is taken on to itself). A zero to
// means today, a zero from means the start of the default window ending at to.
//
// Valuation rules per date d:
//   - asset: latest history point on or before d, else its current value
//   - liability: its current amount
//   - investment: net shares held on d times the current price. Historical prices
//     are not available, so past positions are marked at today's price.
//   - debt: initial balance minus the principal of payments made on or before d
func ReconstructNetWorth(in NetWorthInput, from, to, today time.Time) ([]domain.NetWorthPoint, error) {
	if to.IsZero() {
		to = today
	}
	if from.IsZero() {
		from, _ = DefaultNetWorthRange(to, DefaultNetWorthMonths)
	}
	if calendar.Day(to).Before(calendar.Day(from)) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s", apperrors.ErrDomain,
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	assets := make([]assetValuer, len(in.Assets))
	for i, a := range in.Assets {
		assets[i] = newAssetValuer(a)
	}
	liabilities := decimal.Zero
	for _, l := range in.Liabilities {
		liabilities = liabilities.Add(l.Amount)
	}

	dates := calendar.MonthEnds(from, to)
	points := make([]domain.NetWorthPoint, 0, len(dates))
	for _, on := range dates {
		point := domain.NetWorthPoint{
			Date:        on,
			Assets:      decimal.Zero,
			Liabilities: liabilities,
			Investments: decimal.Zero,
			Debts:       decimal.Zero,
		}
		for _, a := range assets {
			point.Assets = point.Assets.Add(a.valueAsOf(on))
		}
		for _, inv := range in.Investments {
			point.Investments = point.Investments.Add(SharesHeld(inv.Investment, on).Mul(inv.CurrentPrice))
		}
		for _, debt := range in.Debts {
			point.Debts = point.Debts.Add(OutstandingDebt(debt, on))
		}
		point.NetWorth = point.Assets.Add(point.Investments).Sub(point.Liabilities).Sub(point.Debts)
		points = append(points, point)
	}
	return points, nil
}

type assetValuer struct {
	current decimal.Decimal
	history *calendar.History[decimal.Decimal]
}

func newAssetValuer(a domain.Asset) assetValuer {
	h := &calendar.History[decimal.Decimal]{}
	for _, p := range a.History {
		h.Append(p.Date, p.Value)
	}
	return assetValuer{current: a.CurrentValue, history: h}
}

func (a assetValuer) valueAsOf(on time.Time) decimal.Decimal {
	if v, ok := a.history.ValueAsOf(on); ok {
		return v
	}
	return a.current
}

// SharesHeld returns bought minus sold shares for transactions dated on or before on.
func SharesHeld(inv domain.Investment, on time.Time) decimal.Decimal {
	on = calendar.Day(on)
	shares := decimal.Zero
	for _, tx := range inv.Transactions {
		if calendar.Day(tx.Date).After(on) {
			continue
		}
		switch tx.Type {
		case domain.Buy:
			shares = shares.Add(tx.Shares)
		case domain.Sell:
			shares = shares.Sub(tx.Shares)
		}
	}
	return shares
}

// OutstandingDebt returns the balance of a debt on a given day. The starting point is
// the original balance, or when unknown the current balance plus every recorded
// principal repayment. The result is never negative.
func OutstandingDebt(debt domain.DebtWithPayments, on time.Time) decimal.Decimal {
	on = calendar.Day(on)
	initial := debt.Debt.OriginalBalance
	reconstruct := !initial.IsPositive()
	if reconstruct {
		initial = debt.Debt.Balance
	}

	repaid := decimal.Zero
	for _, p := range debt.Payments {
		if reconstruct {
			initial = initial.Add(p.PrincipalPortion)
		}
		if !calendar.Day(p.PaidOn).After(on) {
			repaid = repaid.Add(p.PrincipalPortion)
		}
	}

	outstanding := initial.Sub(repaid)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}
