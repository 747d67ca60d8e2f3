// Package cli implements the finance-engine command line tool. Each command loads a
// JSON snapshot of user records into memory and runs one analytics operation on it.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/finance_engine/internal/adapters/memory"
	portssvc "github.com/SscSPs/finance_engine/internal/core/ports/services"
	"github.com/SscSPs/finance_engine/internal/core/services"
	"github.com/SscSPs/finance_engine/internal/platform/config"
	"github.com/SscSPs/finance_engine/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// environment is what every command needs once the root command has set up.
type environment struct {
	log       *slog.Logger
	store     *memory.Store
	analytics portssvc.AnalyticsSvcFacade
	registry  *prometheus.Registry
	userID    string
}

type rootOptions struct {
	snapshot    string
	userID      string
	dumpMetrics bool
	now         func() time.Time
}

// Option customises the root command.
type Option func(*rootOptions)

// WithClock overrides the source of "today" for every calculation.
func WithClock(now func() time.Time) Option {
	return func(o *rootOptions) { o.now = now }
}

// NewRootCommand builds the command tree. Logs go to the command's error stream and
// results to its output stream.
func NewRootCommand(opts ...Option) *cobra.Command {
	o := &rootOptions{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	env := &environment{}

	root := &cobra.Command{
		Use:   "finance-engine",
		Short: "Personal finance projections and analytics",
		Long: `finance-engine runs debt payoff plans, net worth histories, goal projections,
investment returns and cash flow projections over a JSON snapshot of a user's
financial records. Settings such as LOG_LEVEL and PAYOFF_MAX_MONTHS are read from
the environment or a .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.setup(cmd, o)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !o.dumpMetrics || env.registry == nil {
				return nil
			}
			return writeMetrics(cmd.ErrOrStderr(), env.registry)
		},
	}
	root.PersistentFlags().StringVarP(&o.snapshot, "snapshot", "s", "", "Path to the JSON snapshot of user records")
	root.PersistentFlags().StringVarP(&o.userID, "user", "u", "", "User whose records are analysed")
	root.PersistentFlags().BoolVar(&o.dumpMetrics, "metrics", false, "Print calculation metrics to stderr when done")

	root.AddCommand(
		newDebtsCmd(env),
		newPayoffCmd(env),
		newLoanCmd(env),
		newNetWorthCmd(env),
		newReturnCmd(env),
		newGoalCmd(env),
		newIncomeCmd(env),
		newCashFlowCmd(env),
	)
	return root
}

// Execute runs the command tree with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (e *environment) setup(cmd *cobra.Command, o *rootOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	e.log = logger.New(cfg, cmd.ErrOrStderr())
	e.userID = o.userID

	snap := &memory.Snapshot{}
	if o.snapshot != "" {
		if snap, err = readSnapshot(o.snapshot); err != nil {
			return err
		}
	}
	e.store = memory.NewStore(snap)

	e.registry = prometheus.NewRegistry()
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(e.store), memory.StaticPrices(snap.Prices), e.registry,
		services.WithClock(o.now))
	e.analytics = container.Analytics
	return nil
}

func readSnapshot(path string) (*memory.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()
	return memory.LoadSnapshot(f)
}

// requestContext returns cmd's context carrying a request-scoped logger for operation.
func (e *environment) requestContext(cmd *cobra.Command, operation string) context.Context {
	ctx, _ := logger.WithRequestLogger(cmd.Context(), e.log, operation)
	return ctx
}

func (e *environment) requireUser() (string, error) {
	if e.userID == "" {
		return "", errors.New("--user is required for this command")
	}
	return e.userID, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
