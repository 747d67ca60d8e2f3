package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// MarketPriceProvider supplies the current price of a security. The analytics service
// calls it at most once per investment per calculation and never caches the result.
type MarketPriceProvider interface {
	CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}
