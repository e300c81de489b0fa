package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the rate for the exact (from, to) direction.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates lists rates, optionally filtered by from and/or to code.
	ListExchangeRates(ctx context.Context, fromCode, toCode *string) ([]domain.ExchangeRate, error)

	// ConvertCurrency converts amount over the direct (from, to) rate.
	ConvertCurrency(ctx context.Context, fromCode, toCode string, amount decimal.Decimal) (*domain.Conversion, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// UpsertExchangeRate creates the pair or replaces its rate.
	UpsertExchangeRate(ctx context.Context, fromCode, toCode string, rate decimal.Decimal) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// HistoricalRateSvc produces a daily rate series for a pair.
type HistoricalRateSvc interface {
	// GetHistoricalRates returns days+1 ascending points ending today; days is clamped to [1, 365].
	GetHistoricalRates(ctx context.Context, fromCode, toCode string, days int) ([]domain.HistoricalRatePoint, error)
}
