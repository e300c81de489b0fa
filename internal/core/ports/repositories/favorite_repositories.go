package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// FavoriteReader defines read operations for favorite currency pairs
type FavoriteReader interface {
	FindFavoriteByID(ctx context.Context, favoriteID string) (*domain.FavoriteCurrencyPair, error)
	ListFavoritesByUser(ctx context.Context, userID string) ([]domain.FavoriteCurrencyPair, error)
	FavoriteExists(ctx context.Context, userID, fromCurrencyCode, toCurrencyCode string) (bool, error)
}

// FavoriteWriter defines write operations for favorite currency pairs
type FavoriteWriter interface {
	// SaveFavorite inserts a favorite; a second insert of the same (user, from, to) fails with a conflict.
	SaveFavorite(ctx context.Context, favorite domain.FavoriteCurrencyPair) error
	DeleteFavorite(ctx context.Context, favoriteID string) error
}

// FavoriteRepositoryFacade combines all favorite-related repository interfaces
type FavoriteRepositoryFacade interface {
	FavoriteReader
	FavoriteWriter
}
