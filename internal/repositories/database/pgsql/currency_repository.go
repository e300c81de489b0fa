package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const currencyColumns = `currency_code, name, symbol, flag_emoji, created_at, last_updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(db DBTX) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyCode,
		&c.Name,
		&c.Symbol,
		&c.FlagEmoji,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	return c, err
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`

	modelCurr, err := scanCurrency(r.DB.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyCode + " not found")
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// SearchCurrencies retrieves currencies whose code or name contains query, oldest first.
func (r *PgxCurrencyRepository) SearchCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	sql := `SELECT ` + currencyColumns + ` FROM currencies`
	args := []any{}
	if query != "" {
		sql += ` WHERE currency_code ILIKE $1 OR name ILIKE $1`
		args = append(args, "%"+escapeLike(query)+"%")
	}
	sql += ` ORDER BY created_at, currency_code;`

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// GetOrCreateCurrency inserts the currency unless the code already exists and returns the stored row.
func (r *PgxCurrencyRepository) GetOrCreateCurrency(ctx context.Context, currencyCode string, defaults domain.CurrencyDefaults, now time.Time) (*domain.Currency, bool, error) {
	modelCurr := mapping.ToModelCurrency(domain.Currency{
		CurrencyCode:  currencyCode,
		Name:          defaults.Name,
		Symbol:        defaults.Symbol,
		FlagEmoji:     defaults.FlagEmoji,
		CreatedAt:     now,
		LastUpdatedAt: now,
	})

	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (currency_code) DO NOTHING;
	`
	tag, err := r.DB.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.FlagEmoji,
		modelCurr.CreatedAt,
		modelCurr.LastUpdatedAt,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create currency %s: %w", currencyCode, err)
	}

	curr, err := r.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, false, err
	}
	return curr, tag.RowsAffected() == 1, nil
}

// SaveCurrency inserts a new currency.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.DB.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.FlagEmoji,
		modelCurr.CreatedAt,
		modelCurr.LastUpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewConflictError("currency " + modelCurr.CurrencyCode + " already exists")
		}
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// UpdateCurrency overwrites the display metadata of a currency.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currencies
		SET name = $2, symbol = $3, flag_emoji = $4, last_updated_at = $5
		WHERE currency_code = $1;
	`
	tag, err := r.DB.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.FlagEmoji,
		modelCurr.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", modelCurr.CurrencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + modelCurr.CurrencyCode + " not found")
	}
	return nil
}

// DeleteCurrency removes a currency; rates and favorites referencing it cascade.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyCode string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM currencies WHERE currency_code = $1;`, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("currency " + currencyCode + " not found")
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
