package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRatesProducer_NotifyRatesRefreshed(t *testing.T) {
	event := domain.RatesRefreshedEvent{
		BaseCurrency:  "USD",
		RatesUpserted: 2,
		Rates:         map[string]string{"EUR": "0.92", "JPY": "149.5"},
		RefreshedAt:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	sp := mocks.NewSyncProducer(t, NewProducerConfig())
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got domain.RatesRefreshedEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.BaseCurrency != "USD" || got.Rates["EUR"] != "0.92" {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := NewRatesProducerWith(sp, "rates.refreshed", discardLogger())
	require.NoError(t, p.NotifyRatesRefreshed(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestRatesProducer_SendFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, NewProducerConfig())
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewRatesProducerWith(sp, "rates.refreshed", discardLogger())
	err := p.NotifyRatesRefreshed(context.Background(), domain.RatesRefreshedEvent{BaseCurrency: "USD"})

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestNoOpPublisher(t *testing.T) {
	p := NewNoOpPublisher(discardLogger())

	assert.NoError(t, p.NotifyRatesRefreshed(context.Background(), domain.RatesRefreshedEvent{BaseCurrency: "USD"}))
	assert.NoError(t, p.Close())
}
