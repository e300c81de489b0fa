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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const exchangeRateColumns = `exchange_rate_id, from_currency_code, to_currency_code, rate, last_updated`

// exchangeRateJoinSelect returns a rate with both currencies in one row.
const exchangeRateJoinSelect = `
	SELECT
		er.exchange_rate_id, er.from_currency_code, er.to_currency_code, er.rate, er.last_updated,
		fc.currency_code, fc.name, fc.symbol, fc.flag_emoji, fc.created_at, fc.last_updated_at,
		tc.currency_code, tc.name, tc.symbol, tc.flag_emoji, tc.created_at, tc.last_updated_at
	FROM exchange_rates er
	JOIN currencies fc ON fc.currency_code = er.from_currency_code
	JOIN currencies tc ON tc.currency_code = er.to_currency_code`

// PgxExchangeRateRepository implements the ExchangeRateRepositoryFacade interface using pgx.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db DBTX) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanJoinedExchangeRate(row pgx.Row) (domain.ExchangeRate, error) {
	var rate models.ExchangeRate
	var from, to models.Currency
	err := row.Scan(
		&rate.ExchangeRateID, &rate.FromCurrencyCode, &rate.ToCurrencyCode, &rate.Rate, &rate.LastUpdated,
		&from.CurrencyCode, &from.Name, &from.Symbol, &from.FlagEmoji, &from.CreatedAt, &from.LastUpdatedAt,
		&to.CurrencyCode, &to.Name, &to.Symbol, &to.FlagEmoji, &to.CreatedAt, &to.LastUpdatedAt,
	)
	if err != nil {
		return domain.ExchangeRate{}, err
	}
	return mapping.ToDomainExchangeRateWithCurrencies(rate, from, to), nil
}

// FindExchangeRate retrieves the stored rate for exactly from -> to. The inverse pair is never consulted.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	query := exchangeRateJoinSelect + `
	WHERE er.from_currency_code = $1 AND er.to_currency_code = $2;`

	rate, err := scanJoinedExchangeRate(r.DB.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + fromCurrencyCode + " to " + toCurrencyCode)
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}
	return &rate, nil
}

// ListExchangeRates retrieves exchange rates with optional filtering.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, filter domain.ExchangeRateFilter) ([]domain.ExchangeRate, error) {
	query := exchangeRateJoinSelect + ` WHERE 1=1`
	args := []any{}
	argNum := 1

	if filter.FromCurrencyCode != nil {
		query += fmt.Sprintf(" AND er.from_currency_code = $%d", argNum)
		args = append(args, *filter.FromCurrencyCode)
		argNum++
	}
	if filter.ToCurrencyCode != nil {
		query += fmt.Sprintf(" AND er.to_currency_code = $%d", argNum)
		args = append(args, *filter.ToCurrencyCode)
	}
	query += " ORDER BY er.from_currency_code, er.to_currency_code;"

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeRate, error) {
		return scanJoinedExchangeRate(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan exchange rates", err)
	}
	return rates, nil
}

// UpsertExchangeRate inserts the pair or overwrites rate and last_updated of the existing row.
// The row id is kept on update.
func (r *PgxExchangeRateRepository) UpsertExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	modelRate := mapping.ToModelExchangeRate(rate)
	if modelRate.ExchangeRateID == "" {
		modelRate.ExchangeRateID = uuid.NewString()
	}

	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (from_currency_code, to_currency_code) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated = EXCLUDED.last_updated
		RETURNING ` + exchangeRateColumns + `;
	`

	var saved models.ExchangeRate
	err := r.DB.QueryRow(ctx, query,
		modelRate.ExchangeRateID,
		modelRate.FromCurrencyCode,
		modelRate.ToCurrencyCode,
		modelRate.Rate,
		modelRate.LastUpdated,
	).Scan(&saved.ExchangeRateID, &saved.FromCurrencyCode, &saved.ToCurrencyCode, &saved.Rate, &saved.LastUpdated)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("%w: %s or %s", apperrors.ErrUnknownCurrency, modelRate.FromCurrencyCode, modelRate.ToCurrencyCode)
		}
		return nil, apperrors.NewAppError(500, "failed to save exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(saved)
	return &domainRate, nil
}
