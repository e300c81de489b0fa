package services

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// FavoriteReaderSvc defines read operations on a user's favorite pairs
type FavoriteReaderSvc interface {
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteCurrencyPair, error)
	GetFavorite(ctx context.Context, userID, favoriteID string) (*domain.FavoriteCurrencyPair, error)
	IsFavorite(ctx context.Context, userID, fromCode, toCode string) (bool, error)
}

// FavoriteWriterSvc defines write operations on a user's favorite pairs
type FavoriteWriterSvc interface {
	AddFavorite(ctx context.Context, userID, fromCode, toCode string) (*domain.FavoriteCurrencyPair, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID string) error
}

// FavoriteSvcFacade combines all favorite-related service interfaces
type FavoriteSvcFacade interface {
	FavoriteReaderSvc
	FavoriteWriterSvc
}
