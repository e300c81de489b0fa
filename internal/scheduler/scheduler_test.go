package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingIngestion struct {
	mu    sync.Mutex
	calls map[string]int
	fail  string
}

func (c *countingIngestion) RefreshRates(ctx context.Context, base string) (*domain.IngestionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[base]++
	if base == c.fail {
		return nil, errors.New("provider down")
	}
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("expected a deadline")
	}
	return &domain.IngestionResult{BaseCurrency: base}, nil
}

func (c *countingIngestion) count(base string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[base]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnce_ContinuesAfterFailure(t *testing.T) {
	ing := &countingIngestion{fail: "USD"}
	s := NewIngestionScheduler(ing, []string{"USD", "EUR"}, time.Minute, time.Second, discardLogger())

	s.RunOnce(context.Background())

	assert.Equal(t, 1, ing.count("USD"))
	assert.Equal(t, 1, ing.count("EUR"))
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	ing := &countingIngestion{}
	s := NewIngestionScheduler(ing, []string{"USD"}, 10*time.Millisecond, time.Second, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return ing.count("USD") >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestRun_DisabledInterval(t *testing.T) {
	ing := &countingIngestion{}
	s := NewIngestionScheduler(ing, []string{"USD"}, 0, time.Second, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	assert.NoError(t, s.Run(ctx))
	assert.Equal(t, 0, ing.count("USD"))
}
