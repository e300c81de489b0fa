package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// SearchCurrencies lists currencies whose code or name contains query.
	SearchCurrencies(ctx context.Context, query string) ([]domain.Currency, error)

	// MustExist resolves a code that callers require to be registered already,
	// failing with apperrors.ErrUnknownCurrency otherwise. It never creates.
	MustExist(ctx context.Context, currencyCode string) (*domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// GetOrCreateCurrency returns the registered currency or creates it with defaults.
	GetOrCreateCurrency(ctx context.Context, currencyCode string, defaults domain.CurrencyDefaults) (*domain.Currency, bool, error)

	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// UpdateCurrency changes display metadata of a currency.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest) (*domain.Currency, error)

	// DeleteCurrency removes a currency, cascading to its rates and favorites.
	DeleteCurrency(ctx context.Context, currencyCode string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
