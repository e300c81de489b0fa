package services

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/external"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
)

const (
	DefaultHistoricalDays = 7
	MinHistoricalDays     = 1
	MaxHistoricalDays     = 365
)

type historicalRateService struct {
	BaseService
	source external.HistoricalRateSource
}

func NewHistoricalRateService(source external.HistoricalRateSource, options ...ServiceOption) portssvc.HistoricalRateSvc {
	return &historicalRateService{
		BaseService: newBaseService(options...),
		source:      source,
	}
}

// ClampHistoricalDays bounds days to [MinHistoricalDays, MaxHistoricalDays].
func ClampHistoricalDays(days int) int {
	if days < MinHistoricalDays {
		return MinHistoricalDays
	}
	if days > MaxHistoricalDays {
		return MaxHistoricalDays
	}
	return days
}

func (s *historicalRateService) GetHistoricalRates(ctx context.Context, fromCode, toCode string, days int) ([]domain.HistoricalRatePoint, error) {
	from, to, err := normalizePair(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	days = ClampHistoricalDays(days)

	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -days)

	return s.source.DailyRates(ctx, from, to, start, days+1)
}
