package audit

import (
	"context"
	"sync"
)

// InMemoryStore keeps the trail in process memory for dev mode and tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ProjectID] = append(s.events[event.ProjectID], event)
	return nil
}

func (s *InMemoryStore) ListByProject(_ context.Context, projectID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[projectID]...), nil
}
