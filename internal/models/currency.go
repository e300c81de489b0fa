package models

import "time"

// Currency mirrors a row of the currencies table.
type Currency struct {
	CurrencyCode  string    `db:"currency_code"`
	Name          string    `db:"name"`
	Symbol        *string   `db:"symbol"`
	FlagEmoji     *string   `db:"flag_emoji"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
