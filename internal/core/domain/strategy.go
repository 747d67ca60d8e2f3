package domain

import (
	"fmt"
	"strings"
)

// PayoffStrategy selects the order in which debts are prioritised in a payoff plan.
type PayoffStrategy string

const (
	StrategyAvalanche PayoffStrategy = "avalanche" // Highest interest rate first
	StrategySnowball  PayoffStrategy = "snowball"  // Smallest balance first
	StrategyMinimum   PayoffStrategy = "minimum"   // Minimum payments only, due date order
)

// PayoffStrategies lists every supported strategy.
var PayoffStrategies = []PayoffStrategy{StrategyMinimum, StrategySnowball, StrategyAvalanche}

// debtComparators holds the ordering attached to each strategy. Each returns a
// negative number when a must be paid before b.
var debtComparators = map[PayoffStrategy]func(a, b DebtRecord) int{
	StrategyAvalanche: func(a, b DebtRecord) int {
		if c := b.AnnualRatePercent.Cmp(a.AnnualRatePercent); c != 0 {
			return c
		}
		return b.Balance.Cmp(a.Balance)
	},
	StrategySnowball: func(a, b DebtRecord) int {
		if c := a.Balance.Cmp(b.Balance); c != 0 {
			return c
		}
		return b.AnnualRatePercent.Cmp(a.AnnualRatePercent)
	},
	StrategyMinimum: func(a, b DebtRecord) int {
		return a.DueDate.Compare(b.DueDate)
	},
}

// ParsePayoffStrategy converts a user supplied name into a PayoffStrategy.
func ParsePayoffStrategy(s string) (PayoffStrategy, error) {
	p := PayoffStrategy(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown payoff strategy %q", s)
	}
	return p, nil
}

// Valid reports whether p is one of the supported strategies.
func (p PayoffStrategy) Valid() bool {
	_, ok := debtComparators[p]
	return ok
}

// Compare orders two debts according to the strategy. It panics on an invalid strategy.
func (p PayoffStrategy) Compare(a, b DebtRecord) int {
	cmp, ok := debtComparators[p]
	if !ok {
		panic(fmt.Sprintf("domain: invalid payoff strategy %q", string(p)))
	}
	return cmp(a, b)
}

func (p PayoffStrategy) String() string { return string(p) }
