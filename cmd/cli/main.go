package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phuture/fudashi/cmd/cli/commands"
	"github.com/phuture/fudashi/internal/config"
	"github.com/phuture/fudashi/pkg/postgres"
	"github.com/phuture/fudashi/pkg/utils/logging"
)

var (
	env        string
	verbose    bool
	configPath string

	app      *commands.AppContext
	database *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fudashi",
		Short: "Fudashi - Generate agent shift schedules",
		Long:  `A CLI tool for managing agent rosters, availability grids and shift schedule generation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if database != nil {
				database.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output on the console")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: fudashi_config.yaml)")
	rootCmd.MarkPersistentFlagRequired("env")

	app = &commands.AppContext{}

	rootCmd.AddCommand(commands.DefineProjectCmd(app))
	rootCmd.AddCommand(commands.AddAgentCmd(app))
	rootCmd.AddCommand(commands.SetAgentParamsCmd(app))
	rootCmd.AddCommand(commands.RemoveAgentCmd(app))
	rootCmd.AddCommand(commands.ListAgentsCmd(app))
	rootCmd.AddCommand(commands.SetAvailabilityCmd(app))
	rootCmd.AddCommand(commands.SetOperatingHoursCmd(app))
	rootCmd.AddCommand(commands.GenerateScheduleCmd(app))
	rootCmd.AddCommand(commands.ViewScheduleCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, config and database shared by all commands
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Debug("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger.Debug("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = database
	app.Logger.Info("Database initialized successfully")

	return nil
}
