package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType classifies a debt for aggregation in analytics.
type DebtType string

const (
	CreditCard   DebtType = "CREDIT_CARD"
	PersonalLoan DebtType = "PERSONAL_LOAN"
	StudentLoan  DebtType = "STUDENT_LOAN"
	AutoLoan     DebtType = "AUTO_LOAN"
	Mortgage     DebtType = "MORTGAGE"
	OtherDebt    DebtType = "OTHER"
)

// DebtRecord is a single debt as supplied by the persistence layer.
type DebtRecord struct {
	DebtID            string          `json:"debtID"`
	Name              string          `json:"name"`
	DebtType          DebtType        `json:"debtType"`
	Balance           decimal.Decimal `json:"balance"`           // Current outstanding balance, >= 0
	OriginalBalance   decimal.Decimal `json:"originalBalance"`   // Balance at origination; zero when unknown
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent"` // e.g. 19.99 for 19.99% APR
	MinimumPayment    decimal.Decimal `json:"minimumPayment"`
	DueDate           time.Time       `json:"dueDate"`
}

// PaymentEvent is a payment made against a debt. PrincipalPortion + InterestPortion == Amount.
type PaymentEvent struct {
	PaymentID        string          `json:"paymentID"`
	DebtID           string          `json:"debtID"`
	Amount           decimal.Decimal `json:"amount"`
	PaidOn           time.Time       `json:"paidOn"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
}

// DebtWithPayments pairs a debt with its payment log.
type DebtWithPayments struct {
	Debt     DebtRecord     `json:"debt"`
	Payments []PaymentEvent `json:"payments"`
}
