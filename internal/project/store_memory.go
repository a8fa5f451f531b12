package project

import (
	"context"
	"sync"

	"tracegrid/pkg/platform/sentinel"
)

// In-memory stores keep dev mode and tests lightweight. They intentionally
// favor clarity over performance.

type InMemoryRequirementStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]Requirement
}

func NewInMemoryRequirementStore() *InMemoryRequirementStore {
	return &InMemoryRequirementStore{rows: make(map[string]map[string]Requirement)}
}

func (s *InMemoryRequirementStore) Save(_ context.Context, projectID string, r Requirement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[projectID] == nil {
		s.rows[projectID] = make(map[string]Requirement)
	}
	s.rows[projectID][r.ID] = r
	return nil
}

func (s *InMemoryRequirementStore) Get(_ context.Context, projectID, id string) (Requirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.rows[projectID][id]; ok {
		return r, nil
	}
	return Requirement{}, sentinel.ErrNotFound
}

func (s *InMemoryRequirementStore) List(_ context.Context, projectID string) ([]Requirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Requirement, 0, len(s.rows[projectID]))
	for _, r := range s.rows[projectID] {
		out = append(out, r)
	}
	return out, nil
}

func (s *InMemoryRequirementStore) Delete(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[projectID][id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows[projectID], id)
	return nil
}

type InMemoryTestCaseStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]TestCase
}

func NewInMemoryTestCaseStore() *InMemoryTestCaseStore {
	return &InMemoryTestCaseStore{rows: make(map[string]map[string]TestCase)}
}

func (s *InMemoryTestCaseStore) Save(_ context.Context, projectID string, t TestCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[projectID] == nil {
		s.rows[projectID] = make(map[string]TestCase)
	}
	s.rows[projectID][t.ID] = t
	return nil
}

func (s *InMemoryTestCaseStore) Get(_ context.Context, projectID, id string) (TestCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.rows[projectID][id]; ok {
		return t, nil
	}
	return TestCase{}, sentinel.ErrNotFound
}

func (s *InMemoryTestCaseStore) List(_ context.Context, projectID string) ([]TestCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TestCase, 0, len(s.rows[projectID]))
	for _, t := range s.rows[projectID] {
		out = append(out, t)
	}
	return out, nil
}

func (s *InMemoryTestCaseStore) Delete(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[projectID][id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows[projectID], id)
	return nil
}

type InMemoryRiskStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]Risk
}

func NewInMemoryRiskStore() *InMemoryRiskStore {
	return &InMemoryRiskStore{rows: make(map[string]map[string]Risk)}
}

func (s *InMemoryRiskStore) Save(_ context.Context, projectID string, r Risk) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[projectID] == nil {
		s.rows[projectID] = make(map[string]Risk)
	}
	s.rows[projectID][r.ID] = r
	return nil
}

func (s *InMemoryRiskStore) Get(_ context.Context, projectID, id string) (Risk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.rows[projectID][id]; ok {
		return r, nil
	}
	return Risk{}, sentinel.ErrNotFound
}

func (s *InMemoryRiskStore) List(_ context.Context, projectID string) ([]Risk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Risk, 0, len(s.rows[projectID]))
	for _, r := range s.rows[projectID] {
		out = append(out, r)
	}
	return out, nil
}

func (s *InMemoryRiskStore) Delete(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[projectID][id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows[projectID], id)
	return nil
}

type InMemoryConfigurationItemStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]ConfigurationItem
}

func NewInMemoryConfigurationItemStore() *InMemoryConfigurationItemStore {
	return &InMemoryConfigurationItemStore{rows: make(map[string]map[string]ConfigurationItem)}
}

func (s *InMemoryConfigurationItemStore) Save(_ context.Context, projectID string, c ConfigurationItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[projectID] == nil {
		s.rows[projectID] = make(map[string]ConfigurationItem)
	}
	s.rows[projectID][c.ID] = c
	return nil
}

func (s *InMemoryConfigurationItemStore) Get(_ context.Context, projectID, id string) (ConfigurationItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.rows[projectID][id]; ok {
		return c, nil
	}
	return ConfigurationItem{}, sentinel.ErrNotFound
}

func (s *InMemoryConfigurationItemStore) List(_ context.Context, projectID string) ([]ConfigurationItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ConfigurationItem, 0, len(s.rows[projectID]))
	for _, c := range s.rows[projectID] {
		out = append(out, c)
	}
	return out, nil
}

func (s *InMemoryConfigurationItemStore) Delete(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[projectID][id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows[projectID], id)
	return nil
}

type InMemoryLinkStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]TraceLink
}

func NewInMemoryLinkStore() *InMemoryLinkStore {
	return &InMemoryLinkStore{rows: make(map[string]map[string]TraceLink)}
}

func (s *InMemoryLinkStore) Put(_ context.Context, projectID string, link TraceLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[projectID] == nil {
		s.rows[projectID] = make(map[string]TraceLink)
	}
	s.rows[projectID][link.RequirementID] = link
	return nil
}

func (s *InMemoryLinkStore) Get(_ context.Context, projectID, requirementID string) (TraceLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if l, ok := s.rows[projectID][requirementID]; ok {
		return l, nil
	}
	return TraceLink{}, sentinel.ErrNotFound
}

func (s *InMemoryLinkStore) List(_ context.Context, projectID string) ([]TraceLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]TraceLink, 0, len(s.rows[projectID]))
	for _, l := range s.rows[projectID] {
		out = append(out, l)
	}
	return out, nil
}

func (s *InMemoryLinkStore) Delete(_ context.Context, projectID, requirementID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[projectID][requirementID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows[projectID], requirementID)
	return nil
}

type InMemoryDocumentStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]Document
}

func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{rows: make(map[string]map[string]Document)}
}

func (s *InMemoryDocumentStore) Save(_ context.Context, projectID string, d Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[projectID] == nil {
		s.rows[projectID] = make(map[string]Document)
	}
	s.rows[projectID][d.ID] = d
	return nil
}

func (s *InMemoryDocumentStore) Get(_ context.Context, projectID, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if d, ok := s.rows[projectID][id]; ok {
		return d, nil
	}
	return Document{}, sentinel.ErrNotFound
}

func (s *InMemoryDocumentStore) List(_ context.Context, projectID string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Document, 0, len(s.rows[projectID]))
	for _, d := range s.rows[projectID] {
		out = append(out, d)
	}
	return out, nil
}

func (s *InMemoryDocumentStore) Delete(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[projectID][id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows[projectID], id)
	return nil
}

type InMemoryProcessAssetStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]ProcessAsset
}

func NewInMemoryProcessAssetStore() *InMemoryProcessAssetStore {
	return &InMemoryProcessAssetStore{rows: make(map[string]map[string]ProcessAsset)}
}

func (s *InMemoryProcessAssetStore) Save(_ context.Context, projectID string, a ProcessAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rows[projectID] == nil {
		s.rows[projectID] = make(map[string]ProcessAsset)
	}
	s.rows[projectID][a.ID] = a
	return nil
}

func (s *InMemoryProcessAssetStore) Get(_ context.Context, projectID, id string) (ProcessAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.rows[projectID][id]; ok {
		return a, nil
	}
	return ProcessAsset{}, sentinel.ErrNotFound
}

func (s *InMemoryProcessAssetStore) List(_ context.Context, projectID string) ([]ProcessAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ProcessAsset, 0, len(s.rows[projectID]))
	for _, a := range s.rows[projectID] {
		out = append(out, a)
	}
	return out, nil
}

func (s *InMemoryProcessAssetStore) Delete(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[projectID][id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.rows[projectID], id)
	return nil
}

// NewInMemoryStores wires a full in-memory store set.
func NewInMemoryStores() Stores {
	return Stores{
		Requirements: NewInMemoryRequirementStore(),
		TestCases:    NewInMemoryTestCaseStore(),
		Risks:        NewInMemoryRiskStore(),
		Items:        NewInMemoryConfigurationItemStore(),
		Links:        NewInMemoryLinkStore(),
		Documents:    NewInMemoryDocumentStore(),
		Assets:       NewInMemoryProcessAssetStore(),
	}
}
