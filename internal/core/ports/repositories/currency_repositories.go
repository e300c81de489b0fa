package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// SearchCurrencies returns currencies whose code or name contains query (case-insensitive),
	// in insertion order. An empty query returns every currency.
	SearchCurrencies(ctx context.Context, query string) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// GetOrCreateCurrency returns the currency with the given code, inserting it with
	// defaults when absent. created reports whether this call inserted the row.
	GetOrCreateCurrency(ctx context.Context, currencyCode string, defaults domain.CurrencyDefaults, now time.Time) (currency *domain.Currency, created bool, err error)

	// SaveCurrency inserts a new currency, failing with a conflict if the code exists.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency replaces the display metadata of an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency removes a currency and, through the schema, its rates and favorites.
	DeleteCurrency(ctx context.Context, currencyCode string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
