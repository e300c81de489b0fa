package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// maxAmountIntegerDigits matches a NUMERIC(20,6) column.
const maxAmountIntegerDigits = 14

var maxAmount = decimal.New(1, maxAmountIntegerDigits)

type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, options ...ServiceOption) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		BaseService: newBaseService(options...),
		rateRepo:    rateRepo,
	}
}

func normalizePair(fromCode, toCode string) (string, string, error) {
	from, err := normalizeCode("from_currency", fromCode)
	if err != nil {
		return "", "", err
	}
	to, err := normalizeCode("to_currency", toCode)
	if err != nil {
		return "", "", err
	}
	return from, to, nil
}

// GetExchangeRate retrieves the rate for the exact pair; the inverse pair is never used.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	from, to, err := normalizePair(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	rate, err := s.rateRepo.FindExchangeRate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return rate, nil
}

func (s *exchangeRateService) ListExchangeRates(ctx context.Context, fromCode, toCode *string) ([]domain.ExchangeRate, error) {
	var filter domain.ExchangeRateFilter
	if fromCode != nil {
		from, err := normalizeCode("from_currency", *fromCode)
		if err != nil {
			return nil, err
		}
		filter.FromCurrencyCode = &from
	}
	if toCode != nil {
		to, err := normalizeCode("to_currency", *toCode)
		if err != nil {
			return nil, err
		}
		filter.ToCurrencyCode = &to
	}

	rates, err := s.rateRepo.ListExchangeRates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// ConvertCurrency multiplies amount by the direct rate and rounds half away from zero
// to RatePrecision digits. It never writes.
func (s *exchangeRateService) ConvertCurrency(ctx context.Context, fromCode, toCode string, amount decimal.Decimal) (*domain.Conversion, error) {
	from, to, err := normalizePair(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.Conversion{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Amount:           amount,
		ConvertedAmount:  amount.Mul(rate.Rate).Round(domain.RatePrecision),
		Rate:             rate.Rate,
		LastUpdated:      rate.LastUpdated,
	}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.NewValidationError("amount must be zero or positive")
	}
	if !amount.Equal(amount.Truncate(domain.RatePrecision)) {
		return apperrors.NewValidationError(fmt.Sprintf("amount must have at most %d decimal places", domain.RatePrecision))
	}
	if amount.Truncate(0).GreaterThanOrEqual(maxAmount) {
		return apperrors.NewValidationError(fmt.Sprintf("amount must have at most %d digits before the decimal point", maxAmountIntegerDigits))
	}
	return nil
}

// UpsertExchangeRate stores rate rounded to RatePrecision digits for the pair.
func (s *exchangeRateService) UpsertExchangeRate(ctx context.Context, fromCode, toCode string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	from, to, err := normalizePair(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	if from == to {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}
	rounded := rate.Round(domain.RatePrecision)
	if !rounded.IsPositive() {
		return nil, apperrors.NewValidationError("exchange rate must be positive")
	}

	saved, err := s.rateRepo.UpsertExchangeRate(ctx, domain.ExchangeRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             rounded,
		LastUpdated:      s.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert exchange rate",
			slog.String("from_currency", from),
			slog.String("to_currency", to))
		return nil, err
	}
	return saved, nil
}
