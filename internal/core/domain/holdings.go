package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValuationPoint is the value of an asset on a given date.
type ValuationPoint struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Asset is a valued possession (property, vehicle, cash account...). History must be
// strictly increasing in Date.
type Asset struct {
	AssetID      string           `json:"assetID"`
	Name         string           `json:"name"`
	AssetType    string           `json:"assetType"`
	CurrentValue decimal.Decimal  `json:"currentValue"`
	History      []ValuationPoint `json:"history"`
}

// Liability is an obligation with a static amount. Liabilities carry no history.
type Liability struct {
	LiabilityID string          `json:"liabilityID"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvestmentTransactionType indicates the kind of an investment transaction.
type InvestmentTransactionType string

const (
	Buy      InvestmentTransactionType = "BUY"
	Sell     InvestmentTransactionType = "SELL"
	Dividend InvestmentTransactionType = "DIVIDEND"
)

// InvestmentTransaction is a single lot movement or distribution for an investment.
type InvestmentTransaction struct {
	TransactionID string                    `json:"transactionID"`
	Type          InvestmentTransactionType `json:"type"`
	Shares        decimal.Decimal           `json:"shares"`        // Zero for dividends
	PricePerShare decimal.Decimal           `json:"pricePerShare"` // Cash amount per share; total amount for dividends
	Fees          decimal.Decimal           `json:"fees"`
	Date          time.Time                 `json:"date"`
}

// CashAmount is the cash that moved with the transaction, always >= 0. Buys include
// fees, sells and dividends are net of fees.
func (t InvestmentTransaction) CashAmount() decimal.Decimal {
	switch t.Type {
	case Buy:
		return t.Shares.Mul(t.PricePerShare).Add(t.Fees)
	case Sell:
		return t.Shares.Mul(t.PricePerShare).Sub(t.Fees)
	case Dividend:
		return t.PricePerShare.Sub(t.Fees)
	default:
		return decimal.Zero
	}
}

// Investment is a security position with its transaction log.
type Investment struct {
	InvestmentID string                  `json:"investmentID"`
	Symbol       string                  `json:"symbol"`
	Name         string                  `json:"name"`
	Transactions []InvestmentTransaction `json:"transactions"`
}

// PricedInvestment is an investment together with the current market price the caller
// looked up for it.
type PricedInvestment struct {
	Investment   Investment      `json:"investment"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

// NetWorthPoint is one entry of a reconstructed net-worth series.
// NetWorth = Assets + Investments - Liabilities - Debts.
type NetWorthPoint struct {
	Date        time.Time       `json:"date"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Investments decimal.Decimal `json:"investments"`
	Debts       decimal.Decimal `json:"debts"`
	NetWorth    decimal.Decimal `json:"netWorth"`
}
