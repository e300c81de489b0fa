package domain

import "time"

// FavoriteCurrencyPair is a user's bookmark of a directional currency pair.
type FavoriteCurrencyPair struct {
	FavoriteID       string    `json:"favoriteID"`
	UserID           string    `json:"userID"` // JWT subject, no local user table
	FromCurrencyCode string    `json:"fromCurrencyCode"`
	ToCurrencyCode   string    `json:"toCurrencyCode"`
	CreatedAt        time.Time `json:"createdAt"`

	FromCurrency *Currency `json:"fromCurrency,omitempty"`
	ToCurrency   *Currency `json:"toCurrency,omitempty"`
}
