package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the inbox, persists them, and fans them
// out to the optional Kafka publisher. Sink failures are logged and skipped;
// the trail is best-effort by design decision recorded at the store layer.
type Worker struct {
	store  Store
	kafka  *KafkaPublisher
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// WithKafka attaches a downstream Kafka publisher.
func (w *Worker) WithKafka(kafka *KafkaPublisher) *Worker {
	w.kafka = kafka
	return w
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				if w.logger != nil {
					w.logger.ErrorContext(ctx, "audit append failed",
						"error", err,
						"action", event.Action,
						"project_id", event.ProjectID,
					)
				}
				continue
			}
			if w.kafka != nil {
				w.kafka.Publish(ctx, event)
			}
		}
	}
}
