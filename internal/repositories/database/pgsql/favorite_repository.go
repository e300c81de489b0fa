package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const favoriteJoinSelect = `
	SELECT
		f.favorite_id, f.user_id, f.from_currency_code, f.to_currency_code, f.created_at,
		fc.currency_code, fc.name, fc.symbol, fc.flag_emoji, fc.created_at, fc.last_updated_at,
		tc.currency_code, tc.name, tc.symbol, tc.flag_emoji, tc.created_at, tc.last_updated_at
	FROM favorite_currency_pairs f
	JOIN currencies fc ON fc.currency_code = f.from_currency_code
	JOIN currencies tc ON tc.currency_code = f.to_currency_code`

type PgxFavoriteRepository struct {
	BaseRepository
}

func newPgxFavoriteRepository(db DBTX) *PgxFavoriteRepository {
	return &PgxFavoriteRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.FavoriteRepositoryFacade = (*PgxFavoriteRepository)(nil)

func scanJoinedFavorite(row pgx.Row) (domain.FavoriteCurrencyPair, error) {
	var fav models.FavoriteCurrencyPair
	var from, to models.Currency
	err := row.Scan(
		&fav.FavoriteID, &fav.UserID, &fav.FromCurrencyCode, &fav.ToCurrencyCode, &fav.CreatedAt,
		&from.CurrencyCode, &from.Name, &from.Symbol, &from.FlagEmoji, &from.CreatedAt, &from.LastUpdatedAt,
		&to.CurrencyCode, &to.Name, &to.Symbol, &to.FlagEmoji, &to.CreatedAt, &to.LastUpdatedAt,
	)
	if err != nil {
		return domain.FavoriteCurrencyPair{}, err
	}
	return mapping.ToDomainFavoriteWithCurrencies(fav, from, to), nil
}

// FindFavoriteByID retrieves a favorite with both currencies attached.
func (r *PgxFavoriteRepository) FindFavoriteByID(ctx context.Context, favoriteID string) (*domain.FavoriteCurrencyPair, error) {
	fav, err := scanJoinedFavorite(r.DB.QueryRow(ctx, favoriteJoinSelect+` WHERE f.favorite_id = $1;`, favoriteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("favorite " + favoriteID + " not found")
		}
		return nil, fmt.Errorf("failed to find favorite %s: %w", favoriteID, err)
	}
	return &fav, nil
}

// ListFavoritesByUser returns the user's favorites, newest first.
func (r *PgxFavoriteRepository) ListFavoritesByUser(ctx context.Context, userID string) ([]domain.FavoriteCurrencyPair, error) {
	rows, err := r.DB.Query(ctx, favoriteJoinSelect+` WHERE f.user_id = $1 ORDER BY f.created_at DESC, f.favorite_id;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user %s: %w", userID, err)
	}
	defer rows.Close()

	favs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FavoriteCurrencyPair, error) {
		return scanJoinedFavorite(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan favorites: %w", err)
	}
	return favs, nil
}

func (r *PgxFavoriteRepository) FavoriteExists(ctx context.Context, userID, fromCurrencyCode, toCurrencyCode string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM favorite_currency_pairs
			WHERE user_id = $1 AND from_currency_code = $2 AND to_currency_code = $3
		);
	`
	var exists bool
	if err := r.DB.QueryRow(ctx, query, userID, fromCurrencyCode, toCurrencyCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// SaveFavorite inserts a favorite pair.
func (r *PgxFavoriteRepository) SaveFavorite(ctx context.Context, favorite domain.FavoriteCurrencyPair) error {
	m := mapping.ToModelFavorite(favorite)

	query := `
		INSERT INTO favorite_currency_pairs (favorite_id, user_id, from_currency_code, to_currency_code, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.DB.Exec(ctx, query, m.FavoriteID, m.UserID, m.FromCurrencyCode, m.ToCurrencyCode, m.CreatedAt)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.NewConflictError("currency pair " + m.FromCurrencyCode + "/" + m.ToCurrencyCode + " is already a favorite")
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s or %s", apperrors.ErrUnknownCurrency, m.FromCurrencyCode, m.ToCurrencyCode)
		}
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

func (r *PgxFavoriteRepository) DeleteFavorite(ctx context.Context, favoriteID string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM favorite_currency_pairs WHERE favorite_id = $1;`, favoriteID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite %s: %w", favoriteID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("favorite " + favoriteID + " not found")
	}
	return nil
}
