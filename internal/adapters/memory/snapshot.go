// Package memory holds user financial records in memory. It backs the repository
// ports for the command line tool and for tests that need real collaborators.
package memory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Portfolio is everything recorded for one user.
type Portfolio struct {
	Debts       []domain.DebtWithPayments `json:"debts"`
	Assets      []domain.Asset            `json:"assets"`
	Liabilities []domain.Liability        `json:"liabilities"`
	Investments []domain.Investment       `json:"investments"`
	Incomes     []domain.IncomeRecord     `json:"incomes"`
	Expenses    []domain.ExpenseRecord    `json:"expenses"`
}

// Snapshot is the serialised form of a Store.
type Snapshot struct {
	Portfolios map[string]Portfolio       `json:"portfolios"` // Keyed by user ID
	Goals      []domain.GoalRecord        `json:"goals"`
	Prices     map[string]decimal.Decimal `json:"prices"` // Current price by symbol
}

// LoadSnapshot decodes a JSON snapshot. Unknown fields are rejected so that typos in
// hand-written files do not silently drop records.
func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	for _, goal := range snap.Goals {
		if goal.GoalID == "" {
			return nil, fmt.Errorf("failed to decode snapshot: goal %q has no goalID", goal.Name)
		}
	}
	return &snap, nil
}
