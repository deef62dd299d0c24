package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"options-desk/internal/config"
	"options-desk/internal/ledger"
	"options-desk/internal/store"
	"options-desk/internal/strategy"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies. It is composed once at startup;
// there are no hidden singletons behind it.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Drafts  *strategy.DraftStore
	Ledger  *ledger.Ledger
	Bridge  *store.Bridge
	Journal *store.Journal
}

// NewApp wires the core components together.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	app := &App{
		Config: cfg,
		Logger: logger,
		Drafts: strategy.NewDraftStore(strategy.DefaultCatalog()),
		Ledger: ledger.New(cfg.Account.StartingBalance, logger),
	}

	app.Bridge = store.NewBridge(store.NewFileStore(cfg.Storage.OrdersPath), app.Ledger, logger)
	if err := app.Bridge.Start(cfg.Storage.Watch); err != nil {
		logger.Warn().Err(err).Msg("Storage watcher unavailable, continuing without it")
	}

	journal, err := store.NewJournal(cfg.Storage.JournalPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open activity journal, journaling disabled")
	} else {
		app.Journal = journal
	}

	return app
}

// Close releases the application's resources.
func (a *App) Close() {
	if a.Bridge != nil {
		a.Bridge.Close()
	}
	if a.Journal != nil {
		a.Journal.Close()
	}
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := NewApp(cfg, logger)

	rootCmd := &cobra.Command{
		Use:   "optionsdesk",
		Short: "Options Desk - multi-leg options order entry",
		Long: `Options Desk is a terminal front end for composing multi-leg option
strategies, previewing their net premium, submitting them as orders and
tracking each order's lifecycle.

Use 'optionsdesk help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/options-desk)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	addStrategyCommands(rootCmd, app)
	addOrderCommands(rootCmd, app)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Options Desk v%s\n", Version)
			}
		},
	}
}
