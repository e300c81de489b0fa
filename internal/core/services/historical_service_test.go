package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/adapters/historical"
	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHistoricalRates_DefaultWindow(t *testing.T) {
	svc := services.NewHistoricalRateService(historical.NewSyntheticSource(), services.WithClock(fixedClock))

	points, err := svc.GetHistoricalRates(context.Background(), "usd", "eur", services.DefaultHistoricalDays)

	require.NoError(t, err)
	require.Len(t, points, 8)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), points[0].Date)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), points[7].Date)
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Date.After(points[i-1].Date), "dates must be ascending")
	}
	assert.True(t, points[0].Rate.Equal(decimal.NewFromInt(1)))
	assert.True(t, points[7].Rate.Equal(decimal.RequireFromString("1.07")))
}

func TestGetHistoricalRates_ClampsDays(t *testing.T) {
	svc := services.NewHistoricalRateService(historical.NewSyntheticSource(), services.WithClock(fixedClock))

	tests := []struct {
		days       int
		wantPoints int
	}{
		{days: 0, wantPoints: 2},
		{days: -5, wantPoints: 2},
		{days: 1, wantPoints: 2},
		{days: 365, wantPoints: 366},
		{days: 1000, wantPoints: 366},
	}
	for _, tc := range tests {
		points, err := svc.GetHistoricalRates(context.Background(), "USD", "EUR", tc.days)
		require.NoError(t, err)
		assert.Len(t, points, tc.wantPoints, "days=%d", tc.days)
	}
}

func TestGetHistoricalRates_InvalidCode(t *testing.T) {
	svc := services.NewHistoricalRateService(historical.NewSyntheticSource())

	_, err := svc.GetHistoricalRates(context.Background(), "USD", "EURO", 7)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestClampHistoricalDays(t *testing.T) {
	assert.Equal(t, 1, services.ClampHistoricalDays(0))
	assert.Equal(t, 30, services.ClampHistoricalDays(30))
	assert.Equal(t, 365, services.ClampHistoricalDays(366))
}
