package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the rate for the exact (from, to) direction.
	FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates lists rates matching the filter, each with both currencies attached.
	ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// UpsertExchangeRate inserts the pair or overwrites its rate and timestamp.
	UpsertExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
