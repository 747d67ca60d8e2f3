package analytics

import (
	"fmt"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	three   = decimal.NewFromInt(3)
	twelve  = decimal.NewFromInt(12)
)

// ToMonthlyEquivalent normalises amount to a per-month figure. One-time amounts are
// returned whole: they belong to their origin month and are never spread.
func ToMonthlyEquivalent(amount decimal.Decimal, frequency domain.Frequency) (decimal.Decimal, error) {
	switch frequency {
	case domain.Monthly, domain.OneTime:
		return amount, nil
	case domain.Quarterly:
		return amount.Div(three), nil
	case domain.Yearly:
		return amount.Div(twelve), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, frequency)
	}
}

type recurring struct {
	amount    decimal.Decimal
	frequency domain.Frequency
}

// ProjectMonths returns numMonths totals starting with the current month (index 0).
// Recurring incomes add their monthly equivalent to every month; one-time incomes add
// their full amount to month 0 only.
func ProjectMonths(incomes []domain.IncomeRecord, numMonths int) ([]domain.MonthlyTotal, error) {
	items := make([]recurring, len(incomes))
	for i, inc := range incomes {
		items[i] = recurring{amount: inc.Amount, frequency: inc.Frequency}
	}
	totals, err := project(items, numMonths)
	if err != nil {
		return nil, err
	}

	out := make([]domain.MonthlyTotal, len(totals))
	for i, total := range totals {
		out[i] = domain.MonthlyTotal{MonthIndex: i, Total: total}
	}
	return out, nil
}

// ProjectCashFlow projects incomes and expenses side by side with the same rules as
// ProjectMonths and reports the net of each month.
func ProjectCashFlow(incomes []domain.IncomeRecord, expenses []domain.ExpenseRecord, numMonths int) ([]domain.CashFlowMonth, error) {
	incomeItems := make([]recurring, len(incomes))
	for i, inc := range incomes {
		incomeItems[i] = recurring{amount: inc.Amount, frequency: inc.Frequency}
	}
	expenseItems := make([]recurring, len(expenses))
	for i, exp := range expenses {
		expenseItems[i] = recurring{amount: exp.Amount, frequency: exp.Frequency}
	}

	in, err := project(incomeItems, numMonths)
	if err != nil {
		return nil, fmt.Errorf("income projection: %w", err)
	}
	out, err := project(expenseItems, numMonths)
	if err != nil {
		return nil, fmt.Errorf("expense projection: %w", err)
	}

	months := make([]domain.CashFlowMonth, len(in))
	for i := range in {
		months[i] = domain.CashFlowMonth{MonthIndex: i, Income: in[i], Expenses: out[i], Net: in[i].Sub(out[i])}
	}
	return months, nil
}

func project(items []recurring, numMonths int) ([]decimal.Decimal, error) {
	if numMonths <= 0 {
		return []decimal.Decimal{}, nil
	}
	totals := make([]decimal.Decimal, numMonths)
	for i := range totals {
		totals[i] = decimal.Zero
	}

	for _, item := range items {
		monthly, err := ToMonthlyEquivalent(item.amount, item.frequency)
		if err != nil {
			return nil, err
		}
		if item.frequency == domain.OneTime {
			totals[0] = totals[0].Add(monthly)
			continue
		}
		for i := range totals {
			totals[i] = totals[i].Add(monthly)
		}
	}
	return totals, nil
}
