package historical

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticSource_DailyRates(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	series, err := NewSyntheticSource().DailyRates(context.Background(), "USD", "EUR", start, 8)

	require.NoError(t, err)
	require.Len(t, series, 8)
	for i, p := range series {
		assert.Equal(t, start.AddDate(0, 0, i), p.Date)
	}
	assert.True(t, series[0].Rate.Equal(decimal.RequireFromString("1.000000")))
	assert.True(t, series[1].Rate.Equal(decimal.RequireFromString("1.01")))
	assert.True(t, series[7].Rate.Equal(decimal.RequireFromString("1.07")))
}
