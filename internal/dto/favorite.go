package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CreateFavoriteRequest is the body of POST /favorites.
type CreateFavoriteRequest struct {
	FromCurrencyCode string `json:"from_currency_code" binding:"required,currencycode"`
	ToCurrencyCode   string `json:"to_currency_code" binding:"required,currencycode"`
}

// CheckFavoriteQuery holds the query of GET /favorites/check_favorite.
type CheckFavoriteQuery struct {
	FromCurrency string `form:"from_currency"`
	ToCurrency   string `form:"to_currency"`
}

// CheckFavoriteResponse is the body of GET /favorites/check_favorite.
type CheckFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// FavoriteResponse defines the data returned for a favorite pair.
type FavoriteResponse struct {
	FavoriteID   string           `json:"id"`
	FromCurrency CurrencyResponse `json:"from_currency"`
	ToCurrency   CurrencyResponse `json:"to_currency"`
	CreatedAt    time.Time        `json:"created_at"`
}

// ToFavoriteResponse converts a domain favorite to its response DTO.
func ToFavoriteResponse(f *domain.FavoriteCurrencyPair) FavoriteResponse {
	resp := FavoriteResponse{
		FavoriteID:   f.FavoriteID,
		FromCurrency: CurrencyResponse{Code: f.FromCurrencyCode},
		ToCurrency:   CurrencyResponse{Code: f.ToCurrencyCode},
		CreatedAt:    f.CreatedAt,
	}
	if f.FromCurrency != nil {
		resp.FromCurrency = ToCurrencyResponse(f.FromCurrency)
	}
	if f.ToCurrency != nil {
		resp.ToCurrency = ToCurrencyResponse(f.ToCurrency)
	}
	return resp
}

// ToListFavoriteResponse converts favorites to response DTOs.
func ToListFavoriteResponse(favs []domain.FavoriteCurrencyPair) []FavoriteResponse {
	res := make([]FavoriteResponse, len(favs))
	for i := range favs {
		res[i] = ToFavoriteResponse(&favs[i])
	}
	return res
}
