// Package kafka publishes analytics events to the configured Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/bank-status-service/internal/config"
	"github.com/couchcryptid/bank-status-service/internal/domain"
)

// Writer produces analytics events to the analytics topic.
// It implements domain.Analytics.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured analytics topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAnalyticsTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// RecordEvent serializes and publishes one analytics event.
func (w *Writer) RecordEvent(ctx context.Context, ev domain.Event) error {
	msg, err := serializeToMessage(ev)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an event into a Kafka message keyed by event
// name, so consumers partition by event type.
func serializeToMessage(ev domain.Event) (kafkago.Message, error) {
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize analytics event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(ev.Name),
		Value: data,
		Time:  ev.Time,
		Headers: []kafkago.Header{
			{Key: "event_name", Value: []byte(ev.Name)},
			{Key: "recorded_at", Value: []byte(ev.Time.Format(time.RFC3339))},
		},
	}, nil
}
