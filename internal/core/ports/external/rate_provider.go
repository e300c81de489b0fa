package external

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// RateProvider fetches a bulk snapshot of rates relative to one base currency.
type RateProvider interface {
	// FetchLatestRates returns the provider's latest snapshot for baseCode.
	// Transport and configuration failures are returned as errors; a provider-reported
	// failure is returned as a snapshot whose Result is not "success".
	FetchLatestRates(ctx context.Context, baseCode string) (*domain.RateSnapshot, error)
	Name() string
}

// RatesRefreshedNotifier is told about every committed ingestion run.
type RatesRefreshedNotifier interface {
	NotifyRatesRefreshed(ctx context.Context, event domain.RatesRefreshedEvent) error
}

// HistoricalRateSource produces one rate per calendar day starting at start.
type HistoricalRateSource interface {
	DailyRates(ctx context.Context, fromCurrencyCode, toCurrencyCode string, start time.Time, points int) ([]domain.HistoricalRatePoint, error)
}
