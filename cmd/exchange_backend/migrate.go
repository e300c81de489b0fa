package main

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/currency_exchange_app/pkg/database"
	"github.com/spf13/cobra"
)

var migrationsPathFlag string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [STEPS]",
	Short: "Roll back migrations (default 1 step)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("steps must be an integer: %w", err)
			}
			steps = n
		}

		mg, err := database.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, logger)
		if err != nil {
			return err
		}
		defer mg.Close()
		return mg.Down(steps)
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		mg, err := database.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, logger)
		if err != nil {
			return err
		}
		defer mg.Close()

		version, dirty, err := mg.Version()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %t\n", version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsPathFlag, "path", "", "migrations source URL (overrides MIGRATIONS_PATH)")
	migrateCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		if migrationsPathFlag != "" {
			cfg.MigrationsPath = migrationsPathFlag
		}
		return nil
	}

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
}
