package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [BASE...]",
	Short: "Fetch the latest rates once and upsert them into the ledger",
	Long: `Fetches the latest snapshot for each base currency and upserts it.
Without arguments the configured INGESTION_BASE_CURRENCIES are refreshed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bases := cfg.IngestionBaseCurrencies
		if len(args) > 0 {
			bases = make([]string, len(args))
			for i, a := range args {
				bases[i] = domain.NormalizeCurrencyCode(a)
			}
		}

		app, err := newApplication(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer app.Close(logger)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		var errs []error
		for _, base := range bases {
			ctx, cancel := withIngestionTimeout(cmd.Context(), cfg.IngestionTimeout)
			result, err := app.services.Ingestion.RefreshRates(ctx, base)
			cancel()
			if err != nil {
				logger.Error("Ingestion failed", slog.String("base_currency", base), slog.String("error", err.Error()))
				errs = append(errs, err)
				continue
			}
			if err := enc.Encode(dto.ToIngestionResponse(result)); err != nil {
				return err
			}
		}
		return errors.Join(errs...)
	},
}

// withIngestionTimeout bounds ctx by timeout; zero or negative means no bound.
func withIngestionTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}
