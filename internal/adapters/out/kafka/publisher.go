// Package kafka publishes domain events to a Kafka topic as JSON messages
// keyed by load id, so the events of one load land on one partition.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"tms/internal/core/domain/events"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	DefaultTopic = "tms.load-events"

	eventTypeHeader = "event_type"
)

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type Publisher struct {
	writer Writer
	topic  string
	logger *slog.Logger
}

// NewPublisher writes to topic on the given brokers. An empty topic falls
// back to DefaultTopic.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return NewPublisherWithWriter(w, topic, logger)
}

func NewPublisherWithWriter(w Writer, topic string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		writer: w,
		topic:  topic,
		logger: logger.With("component", "kafka_publisher", "topic", topic),
	}
}

// Publish writes all events in one batch. Nothing is written when any of
// them fails to encode.
func (p *Publisher) Publish(ctx context.Context, evts ...events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(evts))
	for _, evt := range evts {
		msg, err := encode(evt)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d message(s) to %s: %w", len(msgs), p.topic, err)
	}

	p.logger.DebugContext(ctx, "events published", "count", len(msgs), "first_type", string(evts[0].EventType()))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func encode(evt events.Event) (kafkago.Message, error) {
	value, err := json.Marshal(evt)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("encode %s event: %w", evt.EventType(), err)
	}
	return kafkago.Message{
		Key:   []byte(evt.Key()),
		Value: value,
		Headers: []kafkago.Header{
			{Key: eventTypeHeader, Value: []byte(evt.EventType())},
		},
	}, nil
}
