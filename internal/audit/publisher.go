package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Publisher hands events to the worker inbox without blocking the caller.
// When the inbox is full the event is dropped and logged; a slow trail must
// never stall an entity mutation.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	return &Publisher{inbox: inbox, logger: logger}
}

// Record stamps and enqueues an event.
func (p *Publisher) Record(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case p.inbox <- event:
	default:
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit inbox full, event dropped",
				"action", event.Action,
				"project_id", event.ProjectID,
			)
		}
	}
}
