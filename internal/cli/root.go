// Package cli provides the command-line interface for daytrip.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/daytrip-go/internal/config"
	"github.com/raphaelgruber/daytrip-go/internal/db"
	"github.com/raphaelgruber/daytrip-go/internal/memory"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config, db client and memory store.
	// One session scope per command invocation: acquired in
	// PersistentPreRunE, released in PersistentPostRun.
	cfg        config.Config
	dbClient   *db.Client
	store      *memory.Store
	logCleanup func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "daytrip",
	Short: "Interactive one-day trip planner",
	Long: `Daytrip plans a single day in a city: an hour-by-hour itinerary
generated from your interests, plus the weather forecast and local events.

Trips and interests are remembered per user in a graph store, so the
planner can show you your history and preferences on later runs.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip DB connection for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		cfg = applyVerbosity(cfg, verbose)

		var logger *slog.Logger
		logger, logCleanup = config.SetupLogger(cfg)
		slog.SetDefault(logger)

		ctx := context.Background()
		dbClient, err = db.NewClient(ctx, db.Config{
			URL:       cfg.SurrealDBURL,
			Namespace: cfg.SurrealDBNamespace,
			Database:  cfg.SurrealDBDatabase,
			Username:  cfg.SurrealDBUser,
			Password:  cfg.SurrealDBPass,
			AuthLevel: cfg.SurrealDBAuthLevel,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}

		if err := dbClient.InitSchema(ctx); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}

		store = memory.NewStore(dbClient, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbClient != nil {
			if err := dbClient.Close(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
			}
		}
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// applyVerbosity lowers the log level to debug when --verbose is set,
// regardless of what the environment configured.
func applyVerbosity(cfg config.Config, verbose bool) config.Config {
	if verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	return cfg
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(memoriesCmd)
	rootCmd.AddCommand(preferencesCmd)
}
