package services_test

import (
	"context"
	"testing"

	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	"github.com/SscSPs/finance_engine/internal/core/services"
	"github.com/SscSPs/finance_engine/internal/platform/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewServiceContainer(t *testing.T) {
	cfg := &config.Config{
		RateSolverInitialGuess:  0.1,
		RateSolverTolerance:     1e-5,
		RateSolverMaxIterations: 100,
		PayoffMaxMonths:         120,
		NetWorthDefaultMonths:   6,
		ProjectionMaxMonths:     36,
		MetricsEnabled:          true,
	}
	debtRepo := new(MockDebtRepository)
	debtRepo.On("ListDebts", mock.Anything, "u").Return(sampleDebts(), nil).Once()
	reg := prometheus.NewRegistry()

	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{DebtRepo: debtRepo}, new(MockPriceProvider), reg)
	require.NotNil(t, container.Analytics)

	_, err := container.Analytics.DebtAnalytics(context.Background(), "u")
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "finance_engine_calculations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	debtRepo.AssertExpectations(t)
}

func TestNewServiceContainer_MetricsDisabled(t *testing.T) {
	cfg := &config.Config{MetricsEnabled: false}
	reg := prometheus.NewRegistry()

	container := services.NewServiceContainer(cfg, portsrepo.RepositoryProvider{}, new(MockPriceProvider), reg)
	require.NotNil(t, container.Analytics)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}
