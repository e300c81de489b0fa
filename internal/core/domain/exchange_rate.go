package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatePrecision is the number of fractional digits stored for rates and converted amounts.
const RatePrecision = 6

// ExchangeRate is the latest known rate for one ordered (from, to) pair.
// (A,B) and (B,A) are independent records.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	LastUpdated      time.Time       `json:"lastUpdated"`

	// Populated by queries that join the currency registry.
	FromCurrency *Currency `json:"fromCurrency,omitempty"`
	ToCurrency   *Currency `json:"toCurrency,omitempty"`
}

// ExchangeRateFilter narrows ListExchangeRates; nil fields are not applied.
type ExchangeRateFilter struct {
	FromCurrencyCode *string
	ToCurrencyCode   *string
}

// Conversion is the outcome of converting an amount over a direct pair.
type Conversion struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	Amount           decimal.Decimal
	ConvertedAmount  decimal.Decimal
	Rate             decimal.Decimal
	LastUpdated      time.Time
}

// HistoricalRatePoint is one day of a rate time series.
type HistoricalRatePoint struct {
	Date time.Time
	Rate decimal.Decimal
}
