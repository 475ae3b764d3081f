package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher writes order events keyed by order id, so events of one
// order stay on one partition.
type OrderEventPublisher struct {
	writer messageWriter
}

var _ contract.IEventPublisher = (*OrderEventPublisher)(nil)

func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func newWithWriter(w messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: w}
}

func (p *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event entity.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. Used when no brokers are configured.
type NoopPublisher struct{}

var _ contract.IEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishOrderEvent(context.Context, entity.OrderEvent) error { return nil }
