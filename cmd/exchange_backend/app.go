package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/adapters/events/kafka"
	"github.com/SscSPs/currency_exchange_app/internal/adapters/historical"
	"github.com/SscSPs/currency_exchange_app/internal/adapters/rateprovider/exchangerateapi"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/external"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/SscSPs/currency_exchange_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_exchange_app/pkg/database"
)

// application bundles everything a command needs and how to release it.
type application struct {
	services *portssvc.ServiceContainer
	close    func() error
}

// newApplication connects to PostgreSQL and wires repositories, adapters and services.
// extraNotifiers (e.g. the WebSocket hub) are told about every committed ingestion run.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, extraNotifiers ...external.RatesRefreshedNotifier) (*application, error) {
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")

	var publisher kafka.Publisher
	if cfg.KafkaEnabled() {
		publisher, err = kafka.NewRatesProducer(cfg.KafkaBrokers, cfg.KafkaRatesTopic, logger)
		if err != nil {
			database.ClosePgxPool(dbPool)
			return nil, fmt.Errorf("failed to create kafka producer: %w", err)
		}
		logger.Info("Publishing rate events to Kafka", slog.String("topic", cfg.KafkaRatesTopic))
	} else {
		publisher = kafka.NewNoOpPublisher(logger)
	}

	notifiers := append([]external.RatesRefreshedNotifier{publisher}, extraNotifiers...)
	deps := services.ExternalDeps{
		RateProvider:     exchangerateapi.New(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPIKey),
		HistoricalSource: historical.NewSyntheticSource(),
		Notifiers:        notifiers,
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	return &application{
		services: services.NewServiceContainer(cfg, repos, deps),
		close: func() error {
			pubErr := publisher.Close()
			database.ClosePgxPool(dbPool)
			return pubErr
		},
	}, nil
}

func (a *application) Close(logger *slog.Logger) {
	if err := a.close(); err != nil {
		logger.Error("Error while shutting down", slog.String("error", err.Error()))
	}
}
