package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate mirrors a row of the exchange_rates table.
// Rate is NUMERIC(20,6) and is scanned straight into a decimal.
type ExchangeRate struct {
	ExchangeRateID   string          `db:"exchange_rate_id"`
	FromCurrencyCode string          `db:"from_currency_code"`
	ToCurrencyCode   string          `db:"to_currency_code"`
	Rate             decimal.Decimal `db:"rate"`
	LastUpdated      time.Time       `db:"last_updated"`
}
