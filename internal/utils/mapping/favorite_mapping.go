package mapping

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/models"
)

// ToModelFavorite converts a domain FavoriteCurrencyPair to its model
func ToModelFavorite(d domain.FavoriteCurrencyPair) models.FavoriteCurrencyPair {
	return models.FavoriteCurrencyPair{
		FavoriteID:       d.FavoriteID,
		UserID:           d.UserID,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainFavoriteWithCurrencies converts a favorite row and its joined currencies.
func ToDomainFavoriteWithCurrencies(m models.FavoriteCurrencyPair, from, to models.Currency) domain.FavoriteCurrencyPair {
	fromCurr := ToDomainCurrency(from)
	toCurr := ToDomainCurrency(to)
	return domain.FavoriteCurrencyPair{
		FavoriteID:       m.FavoriteID,
		UserID:           m.UserID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		CreatedAt:        m.CreatedAt,
		FromCurrency:     &fromCurr,
		ToCurrency:       &toCurr,
	}
}
