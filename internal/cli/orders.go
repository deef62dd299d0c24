package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	apperrors "options-desk/internal/errors"
	"options-desk/internal/ledger"
	"options-desk/internal/logging"
	"options-desk/internal/store"
)

// addOrderCommands adds order lifecycle commands.
func addOrderCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newSubmitCmd(app))
	rootCmd.AddCommand(newOrdersCmd(app))
	rootCmd.AddCommand(newCancelCmd(app))
	rootCmd.AddCommand(newBalanceCmd(app))
	rootCmd.AddCommand(newJournalCmd(app))
}

func newSubmitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the current draft as an order",
		Long: `Submit the strategy's draft legs as an immutable order.

The net premium is frozen at submission time and the account balance is
adjusted by it. A submission that would drive the balance negative is
rejected and nothing changes.`,
		Example: `  optionsdesk submit --strategy Vertical
  optionsdesk submit -s "Iron Condor"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			name, _ := cmd.Flags().GetString("strategy")
			legs := app.Drafts.Legs(name)

			order, err := app.Ledger.Submit(name, legs)
			if err != nil {
				switch {
				case apperrors.Is(err, apperrors.ErrNoLegs):
					output.Error("Nothing to submit: the %s draft has no legs", name)
				case apperrors.Is(err, apperrors.ErrInsufficientBalance):
					output.Error("Insufficient balance: %s costs %s but only %s is available",
						name, FormatCurrency(app.Drafts.TotalCost(name)), FormatCurrency(app.Ledger.Balance()))
				default:
					output.Error("Submission failed: %v", err)
				}
				return err
			}

			app.recordActivity(order.ID, order.StrategyName, store.ActionSubmit, order.TotalCost)

			if output.IsJSON() {
				return output.JSON(order)
			}
			output.Success("Submitted %s as %s", name, order.ID)
			output.Printf("  Net premium: %s\n", output.Credit(order.TotalCost))
			output.Printf("  Balance:     %s\n", output.Credit(app.Ledger.Balance()))
			return nil
		},
	}

	cmd.Flags().StringP("strategy", "s", "Vertical", "strategy template name")
	return cmd
}

func newOrdersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List submitted orders",
		Example: `  optionsdesk orders
  optionsdesk orders --status Working
  optionsdesk orders --status "Partially filled"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			status, _ := cmd.Flags().GetString("status")
			filter := ledger.StatusFilter(status)

			orders := app.Ledger.FilterOrders(filter)
			if output.IsJSON() {
				return output.JSON(orders)
			}

			counts := app.Ledger.Counts()
			output.Bold("Orders")
			for _, f := range ledger.Filters() {
				marker := " "
				if f == filter {
					marker = "*"
				}
				output.Printf(" %s %-17s %d\n", marker, f, counts[f])
			}
			output.Println()

			if len(orders) == 0 {
				output.Dim("No orders found")
				return nil
			}

			showPL := ledger.ShowProfitLoss(orders)
			for _, o := range orders {
				output.Bold("%s  %s  %s", o.ID, o.StrategyName, o.CreatedAt.Format("02-Jan 15:04"))
				for _, leg := range o.Legs {
					output.Printf("    %-26s %s\n", leg.DisplayLine(), leg.Status)
				}
				output.Printf("    Cost: %s", output.Credit(o.TotalCost))
				if showPL && o.FullyConcluded() && o.ProfitLoss != nil {
					output.Printf("  P/L: %s", output.Credit(*o.ProfitLoss))
				}
				if o.HasCancelableLeg() {
					output.Printf("  [cancelable]")
				}
				output.Println()
			}

			totalCost, totalPL := ledger.Totals(orders)
			output.Println()
			output.Printf("Total cost: %s", output.Credit(totalCost))
			if showPL {
				output.Printf("  Total P/L: %s", output.Credit(totalPL))
			}
			output.Println()
			return nil
		},
	}

	cmd.Flags().String("status", string(ledger.FilterAll), "filter by leg status (All, Working, Partially filled, Filled, Canceled, Rejected, Expired)")
	return cmd
}

func newCancelCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel the open legs of an order",
		Long: `Cancel an order's Working and Partially filled legs.

The order's frozen total cost is reversed against the balance. Orders with
no open leg are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			orderID := args[0]

			order, ok := app.Ledger.Order(orderID)
			if !app.Ledger.Cancel(orderID) {
				if !ok {
					output.Warning("Order %s not found, nothing to do", orderID)
				} else {
					output.Warning("Order %s has no open leg, nothing to do", orderID)
				}
				return nil
			}

			app.recordActivity(orderID, order.StrategyName, store.ActionCancel, -order.TotalCost)

			output.Success("Canceled %s", orderID)
			output.Printf("  Balance: %s\n", output.Credit(app.Ledger.Balance()))
			return nil
		},
	}
}

func newBalanceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			balance := app.Ledger.Balance()
			if output.IsJSON() {
				return output.JSON(map[string]float64{"balance": balance})
			}
			output.Bold("Balance")
			output.Printf("  %s\n", output.Credit(balance))
			return nil
		},
	}
}

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the activity journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Journal == nil {
				output.Warning("Journal unavailable")
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			orderID, _ := cmd.Flags().GetString("order")
			limit, _ := cmd.Flags().GetInt("limit")
			entries, err := app.Journal.Entries(ctx, store.ActivityFilter{
				OrderID: orderID,
				Limit:   limit,
			})
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(entries)
			}

			if len(entries) == 0 {
				output.Dim("No activity recorded")
				return nil
			}
			output.Bold("Activity")
			for _, e := range entries {
				output.Printf("  %s  %-6s %-22s %-12s %s\n",
					e.Timestamp.Format("02-Jan 15:04:05"), e.Action, e.OrderID, e.Strategy, FormatCurrency(e.TotalCost))
			}
			return nil
		},
	}

	cmd.Flags().String("order", "", "filter by order id")
	cmd.Flags().Int("limit", 50, "maximum entries")
	return cmd
}

// recordActivity appends a ledger mutation to the journal when one is open.
func (a *App) recordActivity(orderID, strategyName string, action store.ActivityAction, cost float64) {
	if a.Journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := a.Journal.Record(ctx, store.ActivityEntry{
		Timestamp:    time.Now(),
		OrderID:      orderID,
		Strategy:     strategyName,
		Action:       action,
		TotalCost:    cost,
		BalanceAfter: a.Ledger.Balance(),
	})
	if err != nil {
		orderLogger := logging.WithOrderID(a.Logger, orderID)
		orderLogger.Warn().Err(err).Msg("Failed to record activity")
	}
}
