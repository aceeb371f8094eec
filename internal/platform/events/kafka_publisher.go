package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes exchange events to a single topic, keyed by exchange id.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher creates a publisher for topic on brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           50 * time.Millisecond,
		},
	}
}

var _ portssvc.ExchangeEventPublisher = (*KafkaPublisher)(nil)

func (k *KafkaPublisher) PublishExchange(ctx context.Context, result domain.ExchangeResult) error {
	v, err := json.Marshal(NewExchangeEvent(result))
	if err != nil {
		return fmt.Errorf("failed to marshal exchange event %s: %w", result.ID, err)
	}

	msg := kafka.Message{
		Key:   []byte(result.ID),
		Value: v,
		Time:  time.Now(),
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish exchange event %s: %w", result.ID, err)
	}
	return nil
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct{}

var _ portssvc.ExchangeEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishExchange(context.Context, domain.ExchangeResult) error { return nil }

func (NoopPublisher) Close() error { return nil }

// NewPublisher returns a KafkaPublisher when brokers are set and a NoopPublisher otherwise.
func NewPublisher(brokers []string, topic string) portssvc.ExchangeEventPublisher {
	if len(brokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic)
}
