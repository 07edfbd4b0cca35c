package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"patrol/config"
	"patrol/internal/domain/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.ScanRecordedEvent {
	return &service.ScanRecordedEvent{
		RequestID:    "req-1",
		ScanID:       "scan-1",
		GuardID:      7,
		CheckpointID: "cp-1",
		Result:       "passed",
		ScannedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishScanRecorded(t *testing.T) {
	var got PubSubPushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishScanRecorded(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "scan-1", got.Message.MessageID)
	assert.Equal(t, "cp-1", got.Message.Attributes["checkpoint_id"])

	raw, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var decoded service.ScanRecordedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, int64(7), decoded.GuardID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishScanRecorded(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

type fakeWriter struct {
	messages []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByGuard(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &kafkaPublisher{writer: writer, logger: discardLogger()}

	require.NoError(t, publisher.PublishScanRecorded(context.Background(), testEvent()))
	require.Len(t, writer.messages, 1)
	assert.Equal(t, "7", string(writer.messages[0].Key))

	headers := map[string]string{}
	for _, h := range writer.messages[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "scan-1", headers["scan_id"])
	assert.Equal(t, "req-1", headers["request_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestNewPublisher_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PubSubConfig
	}{
		{"local without endpoint", config.PubSubConfig{Provider: "local"}},
		{"google without project", config.PubSubConfig{Provider: "google", TopicID: "t"}},
		{"google without topic", config.PubSubConfig{Provider: "google", ProjectID: "p"}},
		{"kafka without brokers", config.PubSubConfig{Provider: "kafka", TopicID: "t"}},
		{"kafka without topic", config.PubSubConfig{Provider: "kafka", Brokers: []string{"localhost:9092"}}},
		{"unknown provider", config.PubSubConfig{Provider: "carrier-pigeon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(context.Background(), &tt.cfg, discardLogger())
			assert.Error(t, err)
		})
	}
}

func TestNewPublisher_Kafka(t *testing.T) {
	publisher, err := newPublisher(context.Background(), &config.PubSubConfig{
		Provider: "kafka",
		Brokers:  []string{"localhost:9092"},
		TopicID:  "scan-recorded",
	}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &kafkaPublisher{}, publisher)
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())
	assert.NoError(t, publisher.PublishScanRecorded(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}
