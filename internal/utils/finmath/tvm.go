// Package finmath holds the time-value-of-money primitives and the rate solver used
// by the analytics engine. Monetary values are decimals; exponentiation is done in
// float64 and converted back.
package finmath

import (
	"fmt"
	"math"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultPeriodsPerYear is used whenever a non-positive period count is passed.
const DefaultPeriodsPerYear = 12

var hundred = decimal.NewFromInt(100)

func periods(n int) int {
	if n <= 0 {
		return DefaultPeriodsPerYear
	}
	return n
}

// PeriodicRate converts an annual percentage rate into a per-period fraction.
func PeriodicRate(annualRatePercent decimal.Decimal, periodsPerYear int) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(decimal.NewFromInt(int64(periods(periodsPerYear))))
}

// CompoundInterest returns the future value principal*(1+r/n)^(n*years).
func CompoundInterest(principal, annualRatePercent decimal.Decimal, years float64, periodsPerYear int) decimal.Decimal {
	n := float64(periods(periodsPerYear))
	r := annualRatePercent.Div(hundred).InexactFloat64()
	factor := math.Pow(1+r/n, n*years)
	return principal.Mul(decimal.NewFromFloat(factor))
}

// LoanPayment returns the fixed periodic payment that amortizes principal over years.
// A zero rate splits the principal evenly across the periods.
func LoanPayment(principal, annualRatePercent decimal.Decimal, years, periodsPerYear int) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: principal must be positive, got %s", apperrors.ErrDomain, principal)
	}
	if annualRatePercent.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: interest rate must not be negative, got %s", apperrors.ErrDomain, annualRatePercent)
	}
	if years <= 0 {
		return decimal.Zero, fmt.Errorf("%w: loan term must be at least one year, got %d", apperrors.ErrDomain, years)
	}

	n := years * periods(periodsPerYear)
	if annualRatePercent.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n))), nil
	}

	// P * r / (1 - (1+r)^-n)
	r := PeriodicRate(annualRatePercent, periodsPerYear).InexactFloat64()
	factor := 1 - math.Pow(1+r, -float64(n))
	return principal.Mul(decimal.NewFromFloat(r / factor)), nil
}

// AmortizationSchedule breaks a fixed-payment loan into years*periodsPerYear rows.
// Payments and interest are rounded to cents; the final period absorbs the rounding
// so that the principal column sums exactly to principal and the balance ends at zero.
func AmortizationSchedule(principal, annualRatePercent decimal.Decimal, years, periodsPerYear int) ([]domain.AmortizationRow, error) {
	payment, err := LoanPayment(principal, annualRatePercent, years, periodsPerYear)
	if err != nil {
		return nil, err
	}
	payment = payment.Round(2)

	n := years * periods(periodsPerYear)
	rate := PeriodicRate(annualRatePercent, periodsPerYear)
	balance := principal
	schedule := make([]domain.AmortizationRow, 0, n)

	for period := 1; period <= n; period++ {
		interest := balance.Mul(rate).Round(2)
		principalPart := payment.Sub(interest)
		if period == n || principalPart.GreaterThan(balance) {
			principalPart = balance
		}
		if principalPart.IsNegative() {
			principalPart = decimal.Zero
		}

		balance = balance.Sub(principalPart)
		if balance.IsNegative() {
			balance = decimal.Zero
		}

		schedule = append(schedule, domain.AmortizationRow{
			Period:    period,
			Payment:   principalPart.Add(interest),
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule, nil
}
