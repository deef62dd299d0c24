package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"options-desk/internal/models"
	"options-desk/internal/strategy"
)

// addStrategyCommands adds draft-editing commands.
func addStrategyCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newStrategiesCmd(app))
	rootCmd.AddCommand(newDraftCmd(app))
}

func newStrategiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available strategy templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			catalog := app.Drafts.Strategies()
			if output.IsJSON() {
				return output.JSON(catalog)
			}
			output.Bold("Strategies")
			for _, cfg := range catalog {
				output.Printf("  %-12s %d legs\n", cfg.Name, len(cfg.DefaultLegs))
			}
			return nil
		},
	}
}

func newDraftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Inspect and edit a strategy draft",
		Long: `Inspect and edit the in-progress leg collection of a strategy.

Each strategy keeps its own draft; switching between strategies never
discards edits already made.`,
	}
	cmd.PersistentFlags().StringP("strategy", "s", "Vertical", "strategy template name")

	cmd.AddCommand(newDraftShowCmd(app))
	cmd.AddCommand(newDraftAddCmd(app))
	cmd.AddCommand(newDraftRemoveCmd(app))
	cmd.AddCommand(newDraftSetCmd(app))
	cmd.AddCommand(newDraftResetCmd(app))

	return cmd
}

func draftName(cmd *cobra.Command) string {
	name, _ := cmd.Flags().GetString("strategy")
	return name
}

func newDraftShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the draft legs and net premium preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			name := draftName(cmd)
			legs := app.Drafts.Legs(name)
			total := app.Drafts.TotalCost(name)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"strategy":  name,
					"legs":      legs,
					"totalCost": total,
				})
			}

			output.Bold("%s draft", name)
			printLegTable(output, legs)
			output.Printf("  Total: %s\n", output.Credit(total))
			return nil
		},
	}
}

func newDraftAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Append a new position derived from the last leg",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			name := draftName(cmd)
			leg := app.Drafts.AddPosition(name)
			if output.IsJSON() {
				return output.JSON(leg)
			}
			output.Success("Added %s (%s)", leg.DisplayLine(), leg.ID)
			return nil
		},
	}
}

func newDraftRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <leg-id>",
		Short: "Remove a leg from the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			app.Drafts.RemoveLeg(draftName(cmd), args[0])
			output.Success("Removed %s", args[0])
			return nil
		},
	}
}

func newDraftSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <leg-id>",
		Short: "Edit fields of a draft leg",
		Example: `  optionsdesk draft set leg-ab12cd34-1 --price 6.5
  optionsdesk draft set leg-ab12cd34-1 --side Short --size 2
  optionsdesk draft set leg-ab12cd34-1 --strike 691 --type Put`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			name := draftName(cmd)

			var upd strategy.LegUpdate
			if cmd.Flags().Changed("strike") {
				v, _ := cmd.Flags().GetString("strike")
				upd.Strike = parseNumber(v)
			}
			if cmd.Flags().Changed("price") {
				v, _ := cmd.Flags().GetString("price")
				upd.Price = parseNumber(v)
			}
			if cmd.Flags().Changed("size") {
				v, _ := cmd.Flags().GetString("size")
				upd.Size = parseSize(v)
			}
			if cmd.Flags().Changed("side") {
				v, _ := cmd.Flags().GetString("side")
				side := models.Side(v)
				upd.Side = &side
			}
			if cmd.Flags().Changed("type") {
				v, _ := cmd.Flags().GetString("type")
				typ := models.OptionType(v)
				upd.Type = &typ
			}
			if cmd.Flags().Changed("exp") {
				v, _ := cmd.Flags().GetString("exp")
				upd.Expiration = &v
			}

			app.Drafts.UpdateLeg(name, args[0], upd)
			output.Success("Updated %s", args[0])
			output.Printf("  Total: %s\n", output.Credit(app.Drafts.TotalCost(name)))
			return nil
		},
	}

	cmd.Flags().String("strike", "", "strike price")
	cmd.Flags().String("price", "", "per-contract premium")
	cmd.Flags().String("size", "", "contract count (minimum 1)")
	cmd.Flags().String("side", "", "Long or Short")
	cmd.Flags().String("type", "", "Call or Put")
	cmd.Flags().String("exp", "", "expiration label")

	return cmd
}

func newDraftResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the draft and reseed it from the template",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			name := draftName(cmd)
			app.Drafts.Reset(name)
			output.Success("Reset %s draft", name)
			return nil
		},
	}
}

// parseNumber coerces user input to a safe number: anything unparseable
// becomes 0, never an error.
func parseNumber(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v = 0
	}
	return &v
}

// parseSize coerces user input to a contract count, falling back to 1.
func parseSize(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		v = 1
	}
	return &v
}

func printLegTable(output *Output, legs []models.Leg) {
	output.Printf("  %-22s %-8s %-5s %-8s %-6s %-5s %-8s\n", "ID", "STRIKE", "TYPE", "EXP", "S/L", "SIZE", "PRICE")
	for _, leg := range legs {
		output.Printf("  %-22s %-8g %-5s %-8s %-6s %-5d %-8g\n",
			leg.ID, leg.Strike, leg.Type, leg.Expiration, leg.Side, leg.Size, leg.Price)
	}
	if len(legs) == 0 {
		output.Dim("  (no legs)")
	}
}
