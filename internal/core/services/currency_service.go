package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, options ...ServiceOption) portssvc.CurrencySvcFacade {
	return &currencyService{
		BaseService:  newBaseService(options...),
		currencyRepo: currencyRepo,
	}
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code, err := normalizeCode("currency code", currencyCode)
	if err != nil {
		return nil, err
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) SearchCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.SearchCurrencies(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to search currencies", slog.String("query", query))
		return nil, fmt.Errorf("failed to search currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// MustExist never creates; a missing code is reported as ErrUnknownCurrency.
func (s *currencyService) MustExist(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code, err := normalizeCode("currency code", currencyCode)
	if err != nil {
		return nil, err
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
		}
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) GetOrCreateCurrency(ctx context.Context, currencyCode string, defaults domain.CurrencyDefaults) (*domain.Currency, bool, error) {
	code, err := normalizeCode("currency code", currencyCode)
	if err != nil {
		return nil, false, err
	}
	fallback := domain.FallbackCurrencyDefaults(code)
	if defaults.Name == "" {
		defaults.Name = fallback.Name
	}
	if defaults.Symbol == "" {
		defaults.Symbol = fallback.Symbol
	}

	currency, created, err := s.currencyRepo.GetOrCreateCurrency(ctx, code, defaults, s.Now())
	if err != nil {
		return nil, false, err
	}
	if created {
		s.LogDebug(ctx, "Currency created", slog.String("currency_code", code))
	}
	return currency, created, nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	code, err := normalizeCode("code", req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	currency := domain.Currency{
		CurrencyCode:  code,
		Name:          req.Name,
		Symbol:        req.Symbol,
		FlagEmoji:     req.FlagEmoji,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}
	s.LogInfo(ctx, "Currency created", slog.String("currency_code", code))
	return &currency, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	currency, err := s.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.FlagEmoji != nil {
		currency.FlagEmoji = *req.FlagEmoji
	}
	currency.LastUpdatedAt = s.Now()

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, currencyCode string) error {
	code, err := normalizeCode("currency code", currencyCode)
	if err != nil {
		return err
	}
	if err := s.currencyRepo.DeleteCurrency(ctx, code); err != nil {
		return fmt.Errorf("failed to delete currency in service: %w", err)
	}
	s.LogInfo(ctx, "Currency deleted", slog.String("currency_code", code))
	return nil
}
