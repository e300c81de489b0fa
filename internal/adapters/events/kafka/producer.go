// Package kafka publishes ledger events to Kafka.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/external"
)

// Publisher publishes RatesRefreshed events and owns the underlying connection.
type Publisher interface {
	external.RatesRefreshedNotifier
	Close() error
}

type RatesProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

// NewProducerConfig returns the sarama settings used for rate events.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Timeout = 5 * time.Second
	return config
}

func NewRatesProducer(brokers []string, topic string, log *slog.Logger) (*RatesProducer, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("Kafka producer created", slog.String("topic", topic), slog.Any("brokers", brokers))
	return NewRatesProducerWith(producer, topic, log), nil
}

// NewRatesProducerWith wraps an existing SyncProducer.
func NewRatesProducerWith(producer sarama.SyncProducer, topic string, log *slog.Logger) *RatesProducer {
	return &RatesProducer{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

// NotifyRatesRefreshed sends the event keyed by base currency, so a base's events stay ordered.
func (p *RatesProducer) NotifyRatesRefreshed(ctx context.Context, event domain.RatesRefreshedEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.BaseCurrency),
		Value: sarama.ByteEncoder(eventData),
	}

	type result struct {
		partition int32
		offset    int64
		err       error
	}
	resultCh := make(chan result, 1)

	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		resultCh <- result{partition, offset, err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			p.log.Error("Kafka send failed",
				slog.String("base_currency", event.BaseCurrency),
				slog.String("error", res.err.Error()))
			return res.err
		}
		p.log.Debug("Kafka send succeeded",
			slog.String("base_currency", event.BaseCurrency),
			slog.Int("partition", int(res.partition)),
			slog.Int64("offset", res.offset))
		return nil
	case <-ctx.Done():
		p.log.Warn("Kafka send cancelled", slog.String("base_currency", event.BaseCurrency))
		return ctx.Err()
	}
}

func (p *RatesProducer) Close() error {
	if p.producer == nil {
		return nil
	}
	p.log.Info("Closing kafka producer")
	return p.producer.Close()
}

// NoOpPublisher is used when no brokers are configured.
type NoOpPublisher struct {
	log *slog.Logger
}

func NewNoOpPublisher(log *slog.Logger) *NoOpPublisher {
	return &NoOpPublisher{log: log}
}

func (p *NoOpPublisher) NotifyRatesRefreshed(_ context.Context, event domain.RatesRefreshedEvent) error {
	p.log.Debug("Kafka disabled, event not sent", slog.String("base_currency", event.BaseCurrency))
	return nil
}

func (p *NoOpPublisher) Close() error {
	return nil
}

var (
	_ Publisher = (*RatesProducer)(nil)
	_ Publisher = (*NoOpPublisher)(nil)
)
