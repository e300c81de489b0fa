// Package scheduler triggers rate ingestion on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
)

// IngestionScheduler refreshes every configured base currency once per interval.
// Runs for the bases are sequential; a failing base does not stop the others.
type IngestionScheduler struct {
	ingestion portssvc.IngestionSvc
	bases     []string
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

func NewIngestionScheduler(ingestion portssvc.IngestionSvc, bases []string, interval, timeout time.Duration, logger *slog.Logger) *IngestionScheduler {
	return &IngestionScheduler{
		ingestion: ingestion,
		bases:     bases,
		interval:  interval,
		timeout:   timeout,
		logger:    logger.With(slog.String("component", "ingestion_scheduler")),
	}
}

// Run refreshes immediately and then on every tick until ctx is done.
// A non-positive interval disables the scheduler.
func (s *IngestionScheduler) Run(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Ingestion scheduler disabled")
		<-ctx.Done()
		return nil
	}

	s.logger.Info("Ingestion scheduler started",
		slog.Duration("interval", s.interval),
		slog.Any("base_currencies", s.bases))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Ingestion scheduler stopped")
			return nil
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce refreshes each base currency, each under its own timeout.
func (s *IngestionScheduler) RunOnce(ctx context.Context) {
	for _, base := range s.bases {
		if ctx.Err() != nil {
			return
		}
		s.refresh(ctx, base)
	}
}

func (s *IngestionScheduler) refresh(ctx context.Context, base string) {
	runCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.ingestion.RefreshRates(runCtx, base)
	if err != nil {
		s.logger.Error("Scheduled ingestion failed",
			slog.String("base_currency", base),
			slog.String("error", err.Error()))
		return
	}
	s.logger.Info("Scheduled ingestion finished",
		slog.String("base_currency", result.BaseCurrency),
		slog.Int("rates_upserted", result.RatesUpserted))
}
