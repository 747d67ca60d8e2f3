package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the native recurrence of an income or expense.
type Frequency string

const (
	OneTime   Frequency = "one_time"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Yearly    Frequency = "yearly"
)

// IncomeRecord is an income entry.
type IncomeRecord struct {
	IncomeID  string          `json:"incomeID"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency Frequency       `json:"frequency"`
	Date      time.Time       `json:"date"`
}

// ExpenseRecord is an expense entry. It follows the same frequency model as income.
type ExpenseRecord struct {
	ExpenseID string          `json:"expenseID"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency Frequency       `json:"frequency"`
	Date      time.Time       `json:"date"`
}

// MonthlyTotal is the projected total for one month, 0-indexed from the current month.
type MonthlyTotal struct {
	MonthIndex int             `json:"monthIndex"`
	Total      decimal.Decimal `json:"total"`
}

// CashFlowMonth is one month of a combined income/expense projection.
type CashFlowMonth struct {
	MonthIndex int             `json:"monthIndex"`
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	Net        decimal.Decimal `json:"net"`
}
