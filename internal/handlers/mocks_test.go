package handlers_test

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) SearchCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) MustExist(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) GetOrCreateCurrency(ctx context.Context, code string, defaults domain.CurrencyDefaults) (*domain.Currency, bool, error) {
	args := m.Called(ctx, code, defaults)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Currency), args.Bool(1), args.Error(2)
}
func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, code string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, code, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, from, to *string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}
func (m *MockExchangeRateService) ConvertCurrency(ctx context.Context, from, to string, amount decimal.Decimal) (*domain.Conversion, error) {
	args := m.Called(ctx, from, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}
func (m *MockExchangeRateService) UpsertExchangeRate(ctx context.Context, from, to string, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock HistoricalRateService ---
type MockHistoricalRateService struct {
	mock.Mock
}

func (m *MockHistoricalRateService) GetHistoricalRates(ctx context.Context, from, to string, days int) ([]domain.HistoricalRatePoint, error) {
	args := m.Called(ctx, from, to, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoricalRatePoint), args.Error(1)
}

var _ portssvc.HistoricalRateSvc = (*MockHistoricalRateService)(nil)

// --- Mock FavoriteService ---
type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteCurrencyPair, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FavoriteCurrencyPair), args.Error(1)
}
func (m *MockFavoriteService) GetFavorite(ctx context.Context, userID, favoriteID string) (*domain.FavoriteCurrencyPair, error) {
	args := m.Called(ctx, userID, favoriteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteCurrencyPair), args.Error(1)
}
func (m *MockFavoriteService) IsFavorite(ctx context.Context, userID, from, to string) (bool, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Bool(0), args.Error(1)
}
func (m *MockFavoriteService) AddFavorite(ctx context.Context, userID, from, to string) (*domain.FavoriteCurrencyPair, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FavoriteCurrencyPair), args.Error(1)
}
func (m *MockFavoriteService) RemoveFavorite(ctx context.Context, userID, favoriteID string) error {
	return m.Called(ctx, userID, favoriteID).Error(0)
}

var _ portssvc.FavoriteSvcFacade = (*MockFavoriteService)(nil)

// --- Mock IngestionService ---
type MockIngestionService struct {
	mock.Mock
}

func (m *MockIngestionService) RefreshRates(ctx context.Context, baseCode string) (*domain.IngestionResult, error) {
	args := m.Called(ctx, baseCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IngestionResult), args.Error(1)
}

var _ portssvc.IngestionSvc = (*MockIngestionService)(nil)
