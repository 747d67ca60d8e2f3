package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// StaticPrices is a MarketPriceProvider backed by a fixed price list.
type StaticPrices map[string]decimal.Decimal

var _ portssvc.MarketPriceProvider = StaticPrices(nil)

func (p StaticPrices) CurrentPrice(_ context.Context, symbol string) (decimal.Decimal, error) {
	price, ok := p[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("price for %s: %w", symbol, apperrors.ErrNotFound)
	}
	return price, nil
}
