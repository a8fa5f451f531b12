package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaPublisher mirrors the audit trail onto a Kafka topic for downstream
// consumers (reporting, SIEM). Produce errors are logged, never surfaced:
// Kafka being down must not affect the primary trail.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, nil
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: topic, logger: logger}, nil
}

// Publish produces one event asynchronously, keyed by project id so a
// project's trail stays ordered within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "marshal audit event", "error", err)
		}
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.ProjectID),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil && p.logger != nil {
			p.logger.Error("kafka produce failed",
				"error", err,
				"action", event.Action,
				"project_id", event.ProjectID,
			)
		}
	})
}

// Flush drains pending produces, used on shutdown.
func (p *KafkaPublisher) Flush(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.client.Flush(ctx)
}

// Close flushes and releases the client.
func (p *KafkaPublisher) Close() {
	if p == nil {
		return
	}
	p.client.Close()
}
