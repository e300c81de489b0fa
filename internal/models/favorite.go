package models

import "time"

// FavoriteCurrencyPair mirrors a row of the favorite_currency_pairs table.
type FavoriteCurrencyPair struct {
	FavoriteID       string    `db:"favorite_id"`
	UserID           string    `db:"user_id"`
	FromCurrencyCode string    `db:"from_currency_code"`
	ToCurrencyCode   string    `db:"to_currency_code"`
	CreatedAt        time.Time `db:"created_at"`
}
