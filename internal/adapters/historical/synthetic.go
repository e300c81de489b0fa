package historical

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/external"
	"github.com/shopspring/decimal"
)

var (
	baseRate  = decimal.NewFromInt(1)
	dailyStep = decimal.New(1, -2)
)

// SyntheticSource generates a placeholder series: 1.00 on the first day, plus 0.01 per day.
// It ignores the pair and never fails.
type SyntheticSource struct{}

func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{}
}

var _ external.HistoricalRateSource = (*SyntheticSource)(nil)

func (SyntheticSource) DailyRates(_ context.Context, _, _ string, start time.Time, points int) ([]domain.HistoricalRatePoint, error) {
	series := make([]domain.HistoricalRatePoint, 0, points)
	for i := 0; i < points; i++ {
		series = append(series, domain.HistoricalRatePoint{
			Date: start.AddDate(0, 0, i),
			Rate: baseRate.Add(dailyStep.Mul(decimal.NewFromInt(int64(i)))).Round(domain.RatePrecision),
		})
	}
	return series, nil
}
