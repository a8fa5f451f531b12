// Package audit provides the append-only mutation trail. Every entity store
// mutation and assessment run emits an event; persistence and fan-out happen
// on a background worker so request paths never block on the trail.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is one audit trail entry.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	ProjectID  string    `json:"projectId"`
	EntityKind string    `json:"entityKind,omitempty"`
	EntityID   string    `json:"entityId,omitempty"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	RequestID  string    `json:"requestId,omitempty"`
}

// Store is the persistence sink for the trail.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByProject(ctx context.Context, projectID string) ([]Event, error)
}
