package analytics_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/analytics"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/utils/calendar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNetWorthInput() analytics.NetWorthInput {
	return analytics.NetWorthInput{
		Assets: []domain.Asset{{
			AssetID:      "house",
			CurrentValue: d("300000"),
			History: []domain.ValuationPoint{
				{Date: date(2025, 2, 1), Value: d("280000")},
				{Date: date(2025, 4, 1), Value: d("290000")},
			},
		}},
		Liabilities: []domain.Liability{{LiabilityID: "tax", Amount: d("2000")}},
		Investments: []domain.PricedInvestment{{
			CurrentPrice: d("50"),
			Investment: domain.Investment{
				InvestmentID: "etf",
				Symbol:       "VWCE",
				Transactions: []domain.InvestmentTransaction{
					{Type: domain.Buy, Shares: d("10"), PricePerShare: d("40"), Date: date(2025, 1, 10)},
					{Type: domain.Buy, Shares: d("5"), PricePerShare: d("45"), Date: date(2025, 3, 15)},
					{Type: domain.Dividend, PricePerShare: d("12"), Date: date(2025, 3, 20)},
					{Type: domain.Sell, Shares: d("3"), PricePerShare: d("55"), Date: date(2025, 4, 20)},
				},
			},
		}},
		Debts: []domain.DebtWithPayments{{
			Debt: domain.DebtRecord{DebtID: "car", Balance: d("9200"), OriginalBalance: d("10000")},
			Payments: []domain.PaymentEvent{
				{Amount: d("450"), PrincipalPortion: d("400"), InterestPortion: d("50"), PaidOn: date(2025, 2, 5)},
				{Amount: d("450"), PrincipalPortion: d("400"), InterestPortion: d("50"), PaidOn: date(2025, 3, 5)},
			},
		}},
	}
}

func TestReconstructNetWorth(t *testing.T) {
	points, err := analytics.ReconstructNetWorth(sampleNetWorthInput(), date(2025, 1, 15), date(2025, 4, 10), date(2025, 4, 10))
	require.NoError(t, err)
	require.Len(t, points, 4)

	want := []struct {
		date        time.Time
		assets      string
		investments string
		debts       string
		netWorth    string
	}{
		{date(2025, 1, 31), "300000", "500", "10000", "288500"},
		{date(2025, 2, 28), "280000", "500", "9600", "268900"},
		{date(2025, 3, 31), "280000", "750", "9200", "269550"},
		{date(2025, 4, 10), "290000", "750", "9200", "279550"},
	}
	for i, w := range want {
		p := points[i]
		assert.Equal(t, w.date, p.Date)
		assert.True(t, p.Assets.Equal(d(w.assets)), "assets[%d] = %s", i, p.Assets)
		assert.True(t, p.Liabilities.Equal(d("2000")), "liabilities[%d] = %s", i, p.Liabilities)
		assert.True(t, p.Investments.Equal(d(w.investments)), "investments[%d] = %s", i, p.Investments)
		assert.True(t, p.Debts.Equal(d(w.debts)), "debts[%d] = %s", i, p.Debts)
		assert.True(t, p.NetWorth.Equal(d(w.netWorth)), "netWorth[%d] = %s", i, p.NetWorth)
	}
}

func TestReconstructNetWorth_LengthAndOrder(t *testing.T) {
	ranges := []struct{ from, to time.Time }{
		{date(2024, 1, 1), date(2024, 1, 1)},
		{date(2024, 1, 31), date(2024, 2, 1)},
		{date(2023, 6, 15), date(2025, 6, 14)},
	}

	for _, r := range ranges {
		points, err := analytics.ReconstructNetWorth(analytics.NetWorthInput{}, r.from, r.to, r.to)
		require.NoError(t, err)
		assert.Len(t, points, calendar.MonthsBetween(r.from, r.to)+1)
		for i := 1; i < len(points); i++ {
			assert.True(t, points[i].Date.After(points[i-1].Date))
		}
		for _, p := range points {
			assert.True(t, p.NetWorth.IsZero())
		}
	}
}

func TestReconstructNetWorth_DefaultRange(t *testing.T) {
	today := date(2026, 10, 19)
	points, err := analytics.ReconstructNetWorth(sampleNetWorthInput(), time.Time{}, time.Time{}, today)
	require.NoError(t, err)
	require.Len(t, points, analytics.DefaultNetWorthMonths)
	assert.Equal(t, date(2025, 11, 30), points[0].Date)
	assert.Equal(t, today, points[len(points)-1].Date)

	// Current price applies to the position held today, sell included.
	assert.True(t, points[0].Investments.Equal(d("600")), "got %s", points[0].Investments)
}

func TestReconstructNetWorth_InvertedRange(t *testing.T) {
	_, err := analytics.ReconstructNetWorth(analytics.NetWorthInput{}, date(2025, 5, 1), date(2025, 4, 1), date(2025, 5, 1))
	assert.ErrorIs(t, err, apperrors.ErrDomain)
}

func TestOutstandingDebt(t *testing.T) {
	debt := domain.DebtWithPayments{
		Debt: domain.DebtRecord{Balance: d("9200")},
		Payments: []domain.PaymentEvent{
			{PrincipalPortion: d("400"), PaidOn: date(2025, 2, 5)},
			{PrincipalPortion: d("400"), PaidOn: date(2025, 3, 5)},
		},
	}

	assert.True(t, analytics.OutstandingDebt(debt, date(2025, 1, 1)).Equal(d("10000")))
	assert.True(t, analytics.OutstandingDebt(debt, date(2025, 2, 5)).Equal(d("9600")))
	assert.True(t, analytics.OutstandingDebt(debt, date(2025, 12, 1)).Equal(d("9200")))

	debt.Debt.OriginalBalance = d("500")
	assert.True(t, analytics.OutstandingDebt(debt, date(2025, 12, 1)).Equal(decimal.Zero))
}

func TestDefaultNetWorthRange(t *testing.T) {
	from, to := analytics.DefaultNetWorthRange(time.Date(2026, 10, 19, 15, 4, 0, 0, time.UTC), 0)
	assert.Equal(t, date(2025, 11, 1), from)
	assert.Equal(t, date(2026, 10, 19), to)

	from, _ = analytics.DefaultNetWorthRange(date(2026, 10, 19), 3)
	assert.Equal(t, date(2026, 8, 1), from)
}
