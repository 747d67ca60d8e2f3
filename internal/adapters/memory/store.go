package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
)

// Store implements every analytics repository port over a Snapshot.
// Users without a portfolio have no records; that is not an error.
type Store struct {
	mu         sync.RWMutex
	portfolios map[string]Portfolio
	goals      map[string]domain.GoalRecord
}

// NewStore creates a store seeded from snap. A nil snap gives an empty store.
func NewStore(snap *Snapshot) *Store {
	s := &Store{
		portfolios: make(map[string]Portfolio),
		goals:      make(map[string]domain.GoalRecord),
	}
	if snap == nil {
		return s
	}
	for userID, p := range snap.Portfolios {
		s.portfolios[userID] = p
	}
	for _, g := range snap.Goals {
		s.goals[g.GoalID] = g
	}
	return s
}

// NewRepositoryProvider exposes store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DebtRepo:       store,
		AssetRepo:      store,
		LiabilityRepo:  store,
		InvestmentRepo: store,
		CashFlowRepo:   store,
		GoalRepo:       store,
	}
}

var (
	_ portsrepo.DebtReader           = (*Store)(nil)
	_ portsrepo.AssetReader          = (*Store)(nil)
	_ portsrepo.LiabilityReader      = (*Store)(nil)
	_ portsrepo.InvestmentReader     = (*Store)(nil)
	_ portsrepo.CashFlowReader       = (*Store)(nil)
	_ portsrepo.GoalRepositoryFacade = (*Store)(nil)
)

func (s *Store) portfolio(userID string) Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolios[userID]
}

// ListDebts returns the user's debts with a positive balance.
func (s *Store) ListDebts(_ context.Context, userID string) ([]domain.DebtRecord, error) {
	p := s.portfolio(userID)
	debts := make([]domain.DebtRecord, 0, len(p.Debts))
	for _, d := range p.Debts {
		if d.Debt.Balance.IsPositive() {
			debts = append(debts, d.Debt)
		}
	}
	return debts, nil
}

func (s *Store) ListDebtsWithPayments(_ context.Context, userID string) ([]domain.DebtWithPayments, error) {
	debts := s.portfolio(userID).Debts
	out := make([]domain.DebtWithPayments, len(debts))
	for i, d := range debts {
		out[i] = domain.DebtWithPayments{Debt: d.Debt, Payments: slices.Clone(d.Payments)}
	}
	return out, nil
}

func (s *Store) ListAssets(_ context.Context, userID string) ([]domain.Asset, error) {
	return cloneOrEmpty(s.portfolio(userID).Assets), nil
}

func (s *Store) ListLiabilities(_ context.Context, userID string) ([]domain.Liability, error) {
	return cloneOrEmpty(s.portfolio(userID).Liabilities), nil
}

func (s *Store) ListInvestments(_ context.Context, userID string) ([]domain.Investment, error) {
	return cloneOrEmpty(s.portfolio(userID).Investments), nil
}

// FindInvestmentByID looks the investment up among the user's own investments only.
func (s *Store) FindInvestmentByID(_ context.Context, userID, investmentID string) (*domain.Investment, error) {
	for _, inv := range s.portfolio(userID).Investments {
		if inv.InvestmentID == investmentID {
			inv.Transactions = slices.Clone(inv.Transactions)
			return &inv, nil
		}
	}
	return nil, fmt.Errorf("investment %s: %w", investmentID, apperrors.ErrNotFound)
}

func (s *Store) ListIncomes(_ context.Context, userID string) ([]domain.IncomeRecord, error) {
	return cloneOrEmpty(s.portfolio(userID).Incomes), nil
}

func (s *Store) ListExpenses(_ context.Context, userID string) ([]domain.ExpenseRecord, error) {
	return cloneOrEmpty(s.portfolio(userID).Expenses), nil
}

func (s *Store) FindGoalByID(_ context.Context, goalID string) (*domain.GoalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	goal, ok := s.goals[goalID]
	if !ok {
		return nil, fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	return &goal, nil
}

// SaveGoal inserts a new goal. Saving an existing goal ID is rejected.
func (s *Store) SaveGoal(_ context.Context, goal domain.GoalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.goals[goal.GoalID]; exists {
		return fmt.Errorf("goal %s already exists", goal.GoalID)
	}
	s.goals[goal.GoalID] = goal
	return nil
}

func (s *Store) UpdateGoal(_ context.Context, goal domain.GoalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.goals[goal.GoalID]; !exists {
		return fmt.Errorf("goal %s: %w", goal.GoalID, apperrors.ErrNotFound)
	}
	s.goals[goal.GoalID] = goal
	return nil
}

// Goals returns the stored goals created by userID, ordered by ID.
func (s *Store) Goals(userID string) []domain.GoalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var goals []domain.GoalRecord
	for _, g := range s.goals {
		if g.CreatedBy == userID {
			goals = append(goals, g)
		}
	}
	slices.SortFunc(goals, func(a, b domain.GoalRecord) int { return cmp.Compare(a.GoalID, b.GoalID) })
	return goals
}

func cloneOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}
