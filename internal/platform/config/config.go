package config

import (
	"log"
	"strings"

	"github.com/SscSPs/finance_engine/internal/core/analytics"
	"github.com/SscSPs/finance_engine/internal/utils/finmath"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	LogLevel  string
	LogFormat string // "json" or "text"

	// Rate solver tuning
	RateSolverInitialGuess  float64
	RateSolverTolerance     float64
	RateSolverMaxIterations int

	PayoffMaxMonths       int
	NetWorthDefaultMonths int
	ProjectionMaxMonths   int // Upper bound accepted for income/cash-flow projections

	MetricsEnabled bool
}

const (
	defaultLogLevel                = "info"
	defaultLogFormat               = "json"
	defaultRateSolverInitialGuess  = 0.10
	defaultRateSolverTolerance     = 1e-5
	defaultRateSolverMaxIterations = 100
	defaultProjectionMaxMonths     = 600
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("LOG_FORMAT", defaultLogFormat)
	viper.SetDefault("RATE_SOLVER_INITIAL_GUESS", defaultRateSolverInitialGuess)
	viper.SetDefault("RATE_SOLVER_TOLERANCE", defaultRateSolverTolerance)
	viper.SetDefault("RATE_SOLVER_MAX_ITERATIONS", defaultRateSolverMaxIterations)
	viper.SetDefault("PAYOFF_MAX_MONTHS", analytics.DefaultMaxPayoffMonths)
	viper.SetDefault("NET_WORTH_DEFAULT_MONTHS", analytics.DefaultNetWorthMonths)
	viper.SetDefault("PROJECTION_MAX_MONTHS", defaultProjectionMaxMonths)
	viper.SetDefault("METRICS_ENABLED", true)

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", cfg.LogLevel, defaultLogLevel)
		cfg.LogLevel = defaultLogLevel
	}

	cfg.LogFormat = strings.ToLower(viper.GetString("LOG_FORMAT"))
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to %s.\n", cfg.LogFormat, defaultLogFormat)
		cfg.LogFormat = defaultLogFormat
	}

	cfg.RateSolverInitialGuess = viper.GetFloat64("RATE_SOLVER_INITIAL_GUESS")
	if cfg.RateSolverInitialGuess <= -1 {
		log.Printf("Warning: RATE_SOLVER_INITIAL_GUESS must be greater than -1. Defaulting to %g.\n", defaultRateSolverInitialGuess)
		cfg.RateSolverInitialGuess = defaultRateSolverInitialGuess
	}

	cfg.RateSolverTolerance = viper.GetFloat64("RATE_SOLVER_TOLERANCE")
	if cfg.RateSolverTolerance <= 0 {
		log.Printf("Warning: RATE_SOLVER_TOLERANCE must be positive. Defaulting to %g.\n", defaultRateSolverTolerance)
		cfg.RateSolverTolerance = defaultRateSolverTolerance
	}

	cfg.RateSolverMaxIterations = positiveInt("RATE_SOLVER_MAX_ITERATIONS", defaultRateSolverMaxIterations)
	cfg.PayoffMaxMonths = positiveInt("PAYOFF_MAX_MONTHS", analytics.DefaultMaxPayoffMonths)
	cfg.NetWorthDefaultMonths = positiveInt("NET_WORTH_DEFAULT_MONTHS", analytics.DefaultNetWorthMonths)
	cfg.ProjectionMaxMonths = positiveInt("PROJECTION_MAX_MONTHS", defaultProjectionMaxMonths)
	cfg.MetricsEnabled = viper.GetBool("METRICS_ENABLED")

	return cfg, nil
}

func positiveInt(key string, def int) int {
	v := viper.GetInt(key)
	if v <= 0 {
		log.Printf("Warning: %s must be a positive integer ('%s'). Defaulting to %d.\n", key, viper.GetString(key), def)
		return def
	}
	return v
}

// RateSolver returns the rate solver configured by c.
func (c *Config) RateSolver() finmath.RateSolver {
	return finmath.RateSolver{
		InitialGuess:  c.RateSolverInitialGuess,
		Tolerance:     c.RateSolverTolerance,
		MaxIterations: c.RateSolverMaxIterations,
	}
}

// DebtPlanner returns the debt planner configured by c.
func (c *Config) DebtPlanner() analytics.DebtPlanner {
	return analytics.NewDebtPlanner(c.PayoffMaxMonths)
}
