package domain

import "github.com/shopspring/decimal"

// CashFlow is one interim cash flow of a rate-of-return calculation.
type CashFlow struct {
	Amount decimal.Decimal `json:"amount"`
	Period int             `json:"period"` // >= 1, strictly increasing within a series
}

// AmortizationRow is one period of an amortization schedule.
type AmortizationRow struct {
	Period    int             `json:"period"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// PayoffResult is the outcome of simulating a single debt's payoff.
// Converged is false when the simulation hit the month cap before the balance reached zero.
type PayoffResult struct {
	Months         int             `json:"months"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	Converged      bool            `json:"converged"`
}

// DebtPayoff is one debt's entry in a payoff plan.
type DebtPayoff struct {
	DebtID            string          `json:"debtID"`
	Name              string          `json:"name"`
	Balance           decimal.Decimal `json:"balance"`
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"`
	PayoffResult
}

// PayoffPlan aggregates the simulated payoffs of several debts under one strategy.
type PayoffPlan struct {
	Strategy       PayoffStrategy  `json:"strategy"`
	TotalMonths    int             `json:"totalMonths"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	MonthlyCost    decimal.Decimal `json:"monthlyCost"`
	PayoffSchedule []DebtPayoff    `json:"payoffSchedule"`
	Converged      bool            `json:"converged"`
}

// PayoffProjection compares the three strategies for the same debts.
type PayoffProjection struct {
	Minimum   PayoffPlan `json:"minimum"`
	Snowball  PayoffPlan `json:"snowball"`
	Avalanche PayoffPlan `json:"avalanche"`
}

// DebtTypeSummary aggregates the debts of one type.
type DebtTypeSummary struct {
	Count   int             `json:"count"`
	Balance decimal.Decimal `json:"balance"`
}

// DebtAnalytics is the portfolio-level view of a set of debts.
type DebtAnalytics struct {
	TotalDebt           decimal.Decimal              `json:"totalDebt"`
	AverageInterestRate decimal.Decimal              `json:"averageInterestRate"` // Balance-weighted
	MonthlyPayments     decimal.Decimal              `json:"monthlyPayments"`
	DebtsByType         map[DebtType]DebtTypeSummary `json:"debtsByType"`
	SortedDebts         []DebtRecord                 `json:"sortedDebts"` // Avalanche order
	PayoffProjection    PayoffProjection             `json:"payoffProjection"`
}

// InvestmentReturn is the estimated rate of return of one investment. The rates are
// only meaningful when Determinable is true.
type InvestmentReturn struct {
	InvestmentID   string          `json:"investmentID"`
	Invested       decimal.Decimal `json:"invested"`
	MarketValue    decimal.Decimal `json:"marketValue"`
	MonthlyRate    float64         `json:"monthlyRate"`
	AnnualizedRate float64         `json:"annualizedRate"`
	Determinable   bool            `json:"determinable"`
}
