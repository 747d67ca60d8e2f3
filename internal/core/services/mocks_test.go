package services_test

import (
	"context"

	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDebtRepository is a mock type for the DebtReader interface
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, userID string) ([]domain.DebtRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtRecord), args.Error(1)
}

func (m *MockDebtRepository) ListDebtsWithPayments(ctx context.Context, userID string) ([]domain.DebtWithPayments, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtWithPayments), args.Error(1)
}

// MockAssetRepository is a mock type for the AssetReader interface
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) ListAssets(ctx context.Context, userID string) ([]domain.Asset, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Asset), args.Error(1)
}

// MockLiabilityRepository is a mock type for the LiabilityReader interface
type MockLiabilityRepository struct {
	mock.Mock
}

func (m *MockLiabilityRepository) ListLiabilities(ctx context.Context, userID string) ([]domain.Liability, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Liability), args.Error(1)
}

// MockInvestmentRepository is a mock type for the InvestmentReader interface
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, userID, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, userID, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

// MockCashFlowRepository is a mock type for the CashFlowReader interface
type MockCashFlowRepository struct {
	mock.Mock
}

func (m *MockCashFlowRepository) ListIncomes(ctx context.Context, userID string) ([]domain.IncomeRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeRecord), args.Error(1)
}

func (m *MockCashFlowRepository) ListExpenses(ctx context.Context, userID string) ([]domain.ExpenseRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseRecord), args.Error(1)
}

// MockGoalRepository is a mock type for the GoalRepositoryFacade interface
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.GoalRecord, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoalRecord), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.GoalRecord) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.GoalRecord) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

// MockPriceProvider is a mock type for the MarketPriceProvider interface
type MockPriceProvider struct {
	mock.Mock
}

func (m *MockPriceProvider) CurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
