package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type favoriteService struct {
	BaseService
	favoriteRepo portsrepo.FavoriteRepositoryFacade
	currencySvc  portssvc.CurrencyReaderSvc
}

func NewFavoriteService(favoriteRepo portsrepo.FavoriteRepositoryFacade, currencySvc portssvc.CurrencyReaderSvc, options ...ServiceOption) portssvc.FavoriteSvcFacade {
	return &favoriteService{
		BaseService:  newBaseService(options...),
		favoriteRepo: favoriteRepo,
		currencySvc:  currencySvc,
	}
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteCurrencyPair, error) {
	favs, err := s.favoriteRepo.ListFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites in service: %w", err)
	}
	if favs == nil {
		return []domain.FavoriteCurrencyPair{}, nil
	}
	return favs, nil
}

// findOwned returns the favorite only if userID owns it.
func (s *favoriteService) findOwned(ctx context.Context, userID, favoriteID string) (*domain.FavoriteCurrencyPair, error) {
	if _, err := uuid.Parse(favoriteID); err != nil {
		return nil, apperrors.NewNotFoundError("favorite " + favoriteID + " not found")
	}
	fav, err := s.favoriteRepo.FindFavoriteByID(ctx, favoriteID)
	if err != nil {
		return nil, err
	}
	if fav.UserID != userID {
		return nil, apperrors.NewForbiddenError("favorite belongs to another user")
	}
	return fav, nil
}

func (s *favoriteService) GetFavorite(ctx context.Context, userID, favoriteID string) (*domain.FavoriteCurrencyPair, error) {
	return s.findOwned(ctx, userID, favoriteID)
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, fromCode, toCode string) (bool, error) {
	from, to, err := normalizePair(fromCode, toCode)
	if err != nil {
		return false, err
	}
	return s.favoriteRepo.FavoriteExists(ctx, userID, from, to)
}

// AddFavorite bookmarks a pair of already registered currencies.
func (s *favoriteService) AddFavorite(ctx context.Context, userID, fromCode, toCode string) (*domain.FavoriteCurrencyPair, error) {
	from, to, err := normalizePair(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	fromCurr, err := s.currencySvc.MustExist(ctx, from)
	if err != nil {
		return nil, err
	}
	toCurr, err := s.currencySvc.MustExist(ctx, to)
	if err != nil {
		return nil, err
	}

	fav := domain.FavoriteCurrencyPair{
		FavoriteID:       uuid.NewString(),
		UserID:           userID,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		CreatedAt:        s.Now(),
	}
	if err := s.favoriteRepo.SaveFavorite(ctx, fav); err != nil {
		return nil, err
	}
	fav.FromCurrency = fromCurr
	fav.ToCurrency = toCurr

	s.LogInfo(ctx, "Favorite pair added",
		slog.String("favorite_id", fav.FavoriteID),
		slog.String("from_currency", from),
		slog.String("to_currency", to))
	return &fav, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, favoriteID string) error {
	if _, err := s.findOwned(ctx, userID, favoriteID); err != nil {
		return err
	}
	return s.favoriteRepo.DeleteFavorite(ctx, favoriteID)
}
