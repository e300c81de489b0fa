package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/spf13/cobra"
)

// @title Currency Exchange API
// @version 1.0
// @description Exchange rate ledger, conversions, historical rates and favorite currency pairs.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key

var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "exchange_backend",
	Short:         "Currency exchange rate ledger and conversion service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("config")
		loaded, err := config.LoadConfig(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", lvl, err)
			}
		}

		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "env file to load (default: ./.env)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(hashAdminKeyCmd)
}
