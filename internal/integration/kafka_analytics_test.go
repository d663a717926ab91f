//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/bank-status-service/internal/adapter/kafka"
	"github.com/couchcryptid/bank-status-service/internal/config"
	"github.com/couchcryptid/bank-status-service/internal/domain"
)

const testAnalyticsTopic = "test-analytics"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka launches a single-broker Kafka container and returns its
// bootstrap address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("test-cluster"),
	)
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err, "resolve kafka brokers")
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic via the cluster controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err, "dial broker")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "resolve controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "dial controller")
	defer controllerConn.Close()

	require.NoError(t, controllerConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}), "create topic")
}

// readEvent reads a single analytics message from the consumer and
// deserializes it.
func readEvent(ctx context.Context, t *testing.T, consumer *kafkago.Reader) (domain.Event, kafkago.Message) {
	t.Helper()
	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	msg, err := consumer.ReadMessage(readCtx)
	require.NoError(t, err, "read from analytics topic")

	var ev domain.Event
	require.NoError(t, json.Unmarshal(msg.Value, &ev), "unmarshal analytics event")
	return ev, msg
}

// TestAnalyticsWriterRoundTrip verifies that kafka.Writer publishes events
// that a consumer can read back with the expected key, headers, and payload.
func TestAnalyticsWriterRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testAnalyticsTopic)

	cfg := &config.Config{
		KafkaBrokers:        []string{broker},
		KafkaAnalyticsTopic: testAnalyticsTopic,
	}

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	recordedAt := time.Date(2015, time.November, 26, 14, 30, 0, 0, time.UTC)
	require.NoError(t, writer.RecordEvent(ctx, domain.Event{
		Name: domain.EventBankStatusCheck,
		Attributes: map[string]string{
			"country_code": "US",
			"error":        "unsupported_country",
		},
		Time: recordedAt,
	}))

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testAnalyticsTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	ev, msg := readEvent(ctx, t, consumer)

	assert.Equal(t, domain.EventBankStatusCheck, ev.Name)
	assert.Equal(t, "US", ev.Attributes["country_code"])
	assert.Equal(t, "unsupported_country", ev.Attributes["error"])
	assert.True(t, ev.Time.Equal(recordedAt))

	assert.Equal(t, []byte(domain.EventBankStatusCheck), msg.Key)
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, domain.EventBankStatusCheck, headers["event_name"])
	assert.Equal(t, recordedAt.Format(time.RFC3339), headers["recorded_at"])
}

// TestAnalyticsWriterMultipleEvents publishes the full event taxonomy and
// verifies ordering and keys on a single partition.
func TestAnalyticsWriterMultipleEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testAnalyticsTopic)

	cfg := &config.Config{
		KafkaBrokers:        []string{broker},
		KafkaAnalyticsTopic: testAnalyticsTopic,
	}

	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	names := []string{
		domain.EventCountryLookupSuccess,
		domain.EventCountryLookupFailed,
		domain.EventBankStatusCheck,
	}
	for _, name := range names {
		require.NoError(t, writer.RecordEvent(ctx, domain.Event{
			Name:       name,
			Attributes: map[string]string{"country_code": "US"},
		}))
	}

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testAnalyticsTopic,
		GroupID:     fmt.Sprintf("test-consumer-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	for _, want := range names {
		ev, msg := readEvent(ctx, t, consumer)
		assert.Equal(t, want, ev.Name)
		assert.Equal(t, []byte(want), msg.Key)
		assert.False(t, ev.Time.IsZero(), "event time should be stamped on publish")
	}
}
