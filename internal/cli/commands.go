package cli

import (
	"fmt"
	"time"

	"github.com/SscSPs/finance_engine/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newDebtsCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "debts",
		Short: "Summarise debts and compare payoff strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := env.requireUser()
			if err != nil {
				return err
			}
			result, err := env.analytics.DebtAnalytics(env.requestContext(cmd, "debts"), userID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newPayoffCmd(env *environment) *cobra.Command {
	var strategy, extra string
	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Plan debt payoff under one strategy",
		Long: `Simulate paying off every debt under the avalanche, snowball or minimum strategy.
The extra amount is added to each debt's minimum payment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := env.requireUser()
			if err != nil {
				return err
			}
			additional, err := parseAmount("extra", extra)
			if err != nil {
				return err
			}
			plan, err := env.analytics.PlanDebtPayoff(env.requestContext(cmd, "payoff"), userID, dto.PayoffPlanRequest{
				Strategy:          strategy,
				AdditionalPayment: additional,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), plan)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", "avalanche", "avalanche, snowball or minimum")
	cmd.Flags().StringVar(&extra, "extra", "0", "Additional monthly payment per debt")
	return cmd
}

func newLoanCmd(env *environment) *cobra.Command {
	var principal, rate string
	var years, periodsPerYear int
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Print the amortization schedule of a fixed-payment loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := parseAmount("principal", principal)
			if err != nil {
				return err
			}
			r, err := parseAmount("rate", rate)
			if err != nil {
				return err
			}
			rows, err := env.analytics.LoanSchedule(env.requestContext(cmd, "loan"), dto.LoanScheduleRequest{
				Principal:         p,
				AnnualRatePercent: r,
				Years:             years,
				PeriodsPerYear:    periodsPerYear,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&principal, "principal", "", "Loan principal")
	cmd.Flags().StringVar(&rate, "rate", "", "Annual interest rate in percent")
	cmd.Flags().IntVar(&years, "years", 0, "Loan term in years")
	cmd.Flags().IntVar(&periodsPerYear, "periods-per-year", 12, "Payments per year")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

func newNetWorthCmd(env *environment) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "networth",
		Short: "Reconstruct monthly net worth",
		Long: `Reconstruct net worth at the end of every month between --from and --to
(YYYY-MM-DD). Without dates the configured trailing window ending today is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := env.requireUser()
			if err != nil {
				return err
			}
			var req dto.NetWorthHistoryRequest
			if req.From, err = parseDate("from", from); err != nil {
				return err
			}
			if req.To, err = parseDate("to", to); err != nil {
				return err
			}
			points, err := env.analytics.NetWorthHistory(env.requestContext(cmd, "networth"), userID, req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), points)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "First day of the history (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of the history (YYYY-MM-DD)")
	return cmd
}

func newReturnCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "return INVESTMENT_ID",
		Short: "Estimate the rate of return of an investment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := env.requireUser()
			if err != nil {
				return err
			}
			ret, err := env.analytics.InvestmentReturn(env.requestContext(cmd, "return"), userID, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ret)
		},
	}
}

func newGoalCmd(env *environment) *cobra.Command {
	goal := &cobra.Command{
		Use:   "goal",
		Short: "Inspect and update savings goals",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the user's goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := env.requireUser()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), env.store.Goals(userID))
		},
	}

	show := &cobra.Command{
		Use:   "show GOAL_ID",
		Short: "Project a goal's progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projection, err := env.analytics.GoalProjection(env.requestContext(cmd, "goal show"), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), projection)
		},
	}

	contribute := &cobra.Command{
		Use:   "contribute GOAL_ID AMOUNT",
		Short: "Add a contribution to a goal and print the result",
		Long:  `Add a contribution to a goal. The snapshot file is not modified.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := env.requireUser()
			if err != nil {
				return err
			}
			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}
			updated, err := env.analytics.ContributeToGoal(env.requestContext(cmd, "goal contribute"), args[0], dto.GoalContributionRequest{
				UserID: userID,
				Amount: amount,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}

	goal.AddCommand(list, show, contribute)
	return goal
}

func newIncomeCmd(env *environment) *cobra.Command {
	var months int
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Project monthly income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := env.requireUser()
			if err != nil {
				return err
			}
			totals, err := env.analytics.IncomeProjection(env.requestContext(cmd, "income"), userID, dto.CashFlowProjectionRequest{Months: months})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), totals)
		},
	}
	cmd.Flags().IntVar(&months, "months", 12, "Number of months to project")
	return cmd
}

func newCashFlowCmd(env *environment) *cobra.Command {
	var months int
	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Project monthly income, expenses and net cash flow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := env.requireUser()
			if err != nil {
				return err
			}
			flows, err := env.analytics.CashFlowProjection(env.requestContext(cmd, "cashflow"), userID, dto.CashFlowProjectionRequest{Months: months})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), flows)
		},
	}
	cmd.Flags().IntVar(&months, "months", 12, "Number of months to project")
	return cmd
}

func parseAmount(name, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return amount, nil
}

// parseDate parses a YYYY-MM-DD flag value. An empty value is the zero time.
func parseDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", name, value, err)
	}
	return t, nil
}
