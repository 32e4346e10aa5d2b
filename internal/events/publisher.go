// Package events publishes roster change notifications.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"mergington-activities/config"
	"mergington-activities/internal/entities"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher delivers committed participant events.
type Publisher interface {
	Publish(ctx context.Context, ev entities.ParticipantEvent) error
	Close() error
}

// New returns a Kafka publisher when brokers are configured and a no-op one otherwise.
func New(cfg config.KafkaConfig, log *zap.SugaredLogger) Publisher {
	if len(cfg.Brokers) == 0 {
		log.Infow("kafka brokers not configured, membership events disabled")
		return NopPublisher{}
	}
	log.Infow("membership events enabled", "brokers", cfg.Brokers, "topic", cfg.Topic)
	return NewKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	})
}

// NopPublisher drops every event.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, entities.ParticipantEvent) error { return nil }

// Close implements Publisher.
func (NopPublisher) Close() error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON keyed by activity name, so one activity's
// changes land on one partition in order.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaPublisher wraps a kafka writer.
func NewKafkaPublisher(w messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// Publish implements Publisher.
func (p *KafkaPublisher) Publish(ctx context.Context, ev entities.ParticipantEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(ev.Activity),
		Value: payload,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
