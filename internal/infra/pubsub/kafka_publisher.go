package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"patrol/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a Kafka topic. Messages are keyed by guard id so a
// guard's scans stay ordered within a partition.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher creates a publisher writing to topic on the given brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) service.EventPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		logger: logger,
	}
}

func (p *kafkaPublisher) PublishScanRecorded(ctx context.Context, event *service.ScanRecordedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := make([]kafka.Header, 0, 4)
	for k, v := range eventAttributes(event) {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(strconv.FormatInt(event.GuardID, 10)),
		Value:   data,
		Headers: headers,
	}); err != nil {
		return errors.Wrap(err, "failed to write scan event to kafka")
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published", slog.String("scan_id", event.ScanID))

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
