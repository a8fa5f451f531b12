package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"tracegrid/internal/audit"
	"tracegrid/internal/platform/metrics"
	"tracegrid/internal/platform/middleware"
	dErrors "tracegrid/pkg/domain-errors"
	"tracegrid/pkg/platform/sentinel"
	pstrings "tracegrid/pkg/platform/strings"
)

// Auditor records entity mutations. audit.Publisher satisfies it; tests pass
// a local fake.
type Auditor interface {
	Record(ctx context.Context, event audit.Event)
}

// Service is the write path of the entity store. It owns validation,
// referential integrity between collections, and the CI dependency cycle
// check. Reads pass through with sentinel-to-domain error translation.
type Service struct {
	stores  Stores
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor Auditor
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditor(a Auditor) Option {
	return func(s *Service) { s.auditor = a }
}

func New(stores Stores, opts ...Option) (*Service, error) {
	if stores.Requirements == nil || stores.TestCases == nil || stores.Risks == nil ||
		stores.Items == nil || stores.Links == nil || stores.Documents == nil || stores.Assets == nil {
		return nil, fmt.Errorf("all project stores are required")
	}

	svc := &Service{
		stores: stores,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// --- requirements ---

func (s *Service) CreateRequirement(ctx context.Context, projectID string, r Requirement) (Requirement, error) {
	if err := r.Validate(); err != nil {
		return Requirement{}, err
	}
	if err := s.ensureAbsent(ctx, projectID, r.ID, entityRequirement); err != nil {
		return Requirement{}, err
	}

	now := s.now()
	r.CreatedAt, r.UpdatedAt = now, now
	if r.CreatedBy == "" {
		r.CreatedBy = ActorUser
	}
	if r.UpdatedBy == "" {
		r.UpdatedBy = r.CreatedBy
	}

	if err := s.stores.Requirements.Save(ctx, projectID, r); err != nil {
		return Requirement{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save requirement")
	}
	s.recordMutation(ctx, projectID, entityRequirement, r.ID, "created", string(r.CreatedBy))
	return r, nil
}

func (s *Service) UpdateRequirement(ctx context.Context, projectID string, r Requirement) (Requirement, error) {
	if err := r.Validate(); err != nil {
		return Requirement{}, err
	}
	existing, err := s.stores.Requirements.Get(ctx, projectID, r.ID)
	if err != nil {
		return Requirement{}, translateNotFound(err, "requirement not found")
	}

	r.CreatedAt = existing.CreatedAt
	r.CreatedBy = existing.CreatedBy
	r.UpdatedAt = s.now()
	if r.UpdatedBy == "" {
		r.UpdatedBy = ActorUser
	}

	if err := s.stores.Requirements.Save(ctx, projectID, r); err != nil {
		return Requirement{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save requirement")
	}
	s.recordMutation(ctx, projectID, entityRequirement, r.ID, "updated", string(r.UpdatedBy))
	return r, nil
}

func (s *Service) GetRequirement(ctx context.Context, projectID, id string) (Requirement, error) {
	r, err := s.stores.Requirements.Get(ctx, projectID, id)
	if err != nil {
		return Requirement{}, translateNotFound(err, "requirement not found")
	}
	return r, nil
}

func (s *Service) ListRequirements(ctx context.Context, projectID string) ([]Requirement, error) {
	reqs, err := s.stores.Requirements.List(ctx, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list requirements")
	}
	return reqs, nil
}

// DeleteRequirement removes the requirement and its link table row. Links are
// the only cascade; referenced tests, risks, and CIs stay untouched.
func (s *Service) DeleteRequirement(ctx context.Context, projectID, id string) error {
	if err := s.stores.Requirements.Delete(ctx, projectID, id); err != nil {
		return translateNotFound(err, "requirement not found")
	}
	if err := s.stores.Links.Delete(ctx, projectID, id); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete requirement links")
	}
	s.recordMutation(ctx, projectID, entityRequirement, id, "deleted", "")
	return nil
}

// --- test cases ---

func (s *Service) CreateTestCase(ctx context.Context, projectID string, t TestCase) (TestCase, error) {
	if err := t.Validate(); err != nil {
		return TestCase{}, err
	}
	if err := s.ensureAbsent(ctx, projectID, t.ID, entityTestCase); err != nil {
		return TestCase{}, err
	}
	if err := s.stores.TestCases.Save(ctx, projectID, t); err != nil {
		return TestCase{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save test case")
	}
	s.recordMutation(ctx, projectID, entityTestCase, t.ID, "created", "")
	return t, nil
}

func (s *Service) UpdateTestCase(ctx context.Context, projectID string, t TestCase) (TestCase, error) {
	if err := t.Validate(); err != nil {
		return TestCase{}, err
	}
	if _, err := s.stores.TestCases.Get(ctx, projectID, t.ID); err != nil {
		return TestCase{}, translateNotFound(err, "test case not found")
	}
	if err := s.stores.TestCases.Save(ctx, projectID, t); err != nil {
		return TestCase{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save test case")
	}
	s.recordMutation(ctx, projectID, entityTestCase, t.ID, "updated", "")
	return t, nil
}

func (s *Service) GetTestCase(ctx context.Context, projectID, id string) (TestCase, error) {
	t, err := s.stores.TestCases.Get(ctx, projectID, id)
	if err != nil {
		return TestCase{}, translateNotFound(err, "test case not found")
	}
	return t, nil
}

func (s *Service) ListTestCases(ctx context.Context, projectID string) ([]TestCase, error) {
	tests, err := s.stores.TestCases.List(ctx, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list test cases")
	}
	return tests, nil
}

func (s *Service) DeleteTestCase(ctx context.Context, projectID, id string) error {
	if err := s.stores.TestCases.Delete(ctx, projectID, id); err != nil {
		return translateNotFound(err, "test case not found")
	}
	if err := s.pruneLinkRefs(ctx, projectID, func(l *TraceLink) bool {
		var changed bool
		l.TestIDs, changed = removeID(l.TestIDs, id)
		return changed
	}); err != nil {
		return err
	}
	s.recordMutation(ctx, projectID, entityTestCase, id, "deleted", "")
	return nil
}

// --- risks ---

func (s *Service) CreateRisk(ctx context.Context, projectID string, r Risk) (Risk, error) {
	if err := r.Validate(); err != nil {
		return Risk{}, err
	}
	if err := s.ensureAbsent(ctx, projectID, r.ID, entityRisk); err != nil {
		return Risk{}, err
	}
	if err := s.stores.Risks.Save(ctx, projectID, r); err != nil {
		return Risk{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save risk")
	}
	s.recordMutation(ctx, projectID, entityRisk, r.ID, "created", "")
	return r, nil
}

func (s *Service) UpdateRisk(ctx context.Context, projectID string, r Risk) (Risk, error) {
	if err := r.Validate(); err != nil {
		return Risk{}, err
	}
	if _, err := s.stores.Risks.Get(ctx, projectID, r.ID); err != nil {
		return Risk{}, translateNotFound(err, "risk not found")
	}
	if err := s.stores.Risks.Save(ctx, projectID, r); err != nil {
		return Risk{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save risk")
	}
	s.recordMutation(ctx, projectID, entityRisk, r.ID, "updated", "")
	return r, nil
}

func (s *Service) GetRisk(ctx context.Context, projectID, id string) (Risk, error) {
	r, err := s.stores.Risks.Get(ctx, projectID, id)
	if err != nil {
		return Risk{}, translateNotFound(err, "risk not found")
	}
	return r, nil
}

func (s *Service) ListRisks(ctx context.Context, projectID string) ([]Risk, error) {
	risks, err := s.stores.Risks.List(ctx, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list risks")
	}
	return risks, nil
}

func (s *Service) DeleteRisk(ctx context.Context, projectID, id string) error {
	if err := s.stores.Risks.Delete(ctx, projectID, id); err != nil {
		return translateNotFound(err, "risk not found")
	}
	if err := s.pruneLinkRefs(ctx, projectID, func(l *TraceLink) bool {
		var changed bool
		l.RiskIDs, changed = removeID(l.RiskIDs, id)
		return changed
	}); err != nil {
		return err
	}
	s.recordMutation(ctx, projectID, entityRisk, id, "deleted", "")
	return nil
}

// --- configuration items ---

func (s *Service) CreateConfigurationItem(ctx context.Context, projectID string, c ConfigurationItem) (ConfigurationItem, error) {
	if err := c.Validate(); err != nil {
		return ConfigurationItem{}, err
	}
	if err := s.ensureAbsent(ctx, projectID, c.ID, entityConfigurationItem); err != nil {
		return ConfigurationItem{}, err
	}
	if err := s.checkDependencies(ctx, projectID, c); err != nil {
		return ConfigurationItem{}, err
	}
	if err := s.stores.Items.Save(ctx, projectID, c); err != nil {
		return ConfigurationItem{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save configuration item")
	}
	s.recordMutation(ctx, projectID, entityConfigurationItem, c.ID, "created", "")
	return c, nil
}

func (s *Service) UpdateConfigurationItem(ctx context.Context, projectID string, c ConfigurationItem) (ConfigurationItem, error) {
	if err := c.Validate(); err != nil {
		return ConfigurationItem{}, err
	}
	if _, err := s.stores.Items.Get(ctx, projectID, c.ID); err != nil {
		return ConfigurationItem{}, translateNotFound(err, "configuration item not found")
	}
	if err := s.checkDependencies(ctx, projectID, c); err != nil {
		return ConfigurationItem{}, err
	}
	if err := s.stores.Items.Save(ctx, projectID, c); err != nil {
		return ConfigurationItem{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save configuration item")
	}
	s.recordMutation(ctx, projectID, entityConfigurationItem, c.ID, "updated", "")
	return c, nil
}

func (s *Service) GetConfigurationItem(ctx context.Context, projectID, id string) (ConfigurationItem, error) {
	c, err := s.stores.Items.Get(ctx, projectID, id)
	if err != nil {
		return ConfigurationItem{}, translateNotFound(err, "configuration item not found")
	}
	return c, nil
}

func (s *Service) ListConfigurationItems(ctx context.Context, projectID string) ([]ConfigurationItem, error) {
	items, err := s.stores.Items.List(ctx, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list configuration items")
	}
	return items, nil
}

// DeleteConfigurationItem refuses to remove an item other items depend on;
// deleting it would break the dependency invariant the save path enforces.
func (s *Service) DeleteConfigurationItem(ctx context.Context, projectID, id string) error {
	items, err := s.stores.Items.List(ctx, projectID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list configuration items")
	}
	for _, item := range items {
		if item.ID != id && slices.Contains(item.DependsOn, id) {
			return dErrors.New(dErrors.CodeConflict,
				fmt.Sprintf("configuration item %s depends on %s", item.ID, id))
		}
	}

	if err := s.stores.Items.Delete(ctx, projectID, id); err != nil {
		return translateNotFound(err, "configuration item not found")
	}
	if err := s.pruneLinkRefs(ctx, projectID, func(l *TraceLink) bool {
		var changed bool
		l.CIIDs, changed = removeID(l.CIIDs, id)
		return changed
	}); err != nil {
		return err
	}
	s.recordMutation(ctx, projectID, entityConfigurationItem, id, "deleted", "")
	return nil
}

// checkDependencies enforces that every DependsOn id exists and that the item
// does not close a dependency cycle. A new cycle must pass through the item
// being saved, so a single DFS from it suffices.
func (s *Service) checkDependencies(ctx context.Context, projectID string, c ConfigurationItem) error {
	items, err := s.stores.Items.List(ctx, projectID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list configuration items")
	}

	graph := make(map[string][]string, len(items)+1)
	for _, item := range items {
		graph[item.ID] = item.DependsOn
	}
	graph[c.ID] = c.DependsOn

	var missing []string
	for _, dep := range c.DependsOn {
		if _, ok := graph[dep]; !ok {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("unknown dependency ids: %s", strings.Join(missing, ", ")))
	}

	visited := make(map[string]bool)
	var walk func(id string) bool
	walk = func(id string) bool {
		if visited[id] {
			return false
		}
		visited[id] = true
		for _, dep := range graph[id] {
			if dep == c.ID || walk(dep) {
				return true
			}
		}
		return false
	}
	for _, dep := range c.DependsOn {
		if dep == c.ID || walk(dep) {
			return dErrors.New(dErrors.CodeBadRequest,
				fmt.Sprintf("dependency cycle through configuration item %s", c.ID))
		}
	}
	return nil
}

// --- documents ---

func (s *Service) SaveDocument(ctx context.Context, projectID string, d Document) (Document, error) {
	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	if err := s.stores.Documents.Save(ctx, projectID, d); err != nil {
		return Document{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save document")
	}
	s.recordMutation(ctx, projectID, entityDocument, d.ID, "saved", "")
	return d, nil
}

func (s *Service) GetDocument(ctx context.Context, projectID, id string) (Document, error) {
	d, err := s.stores.Documents.Get(ctx, projectID, id)
	if err != nil {
		return Document{}, translateNotFound(err, "document not found")
	}
	return d, nil
}

func (s *Service) ListDocuments(ctx context.Context, projectID string) ([]Document, error) {
	docs, err := s.stores.Documents.List(ctx, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list documents")
	}
	return docs, nil
}

func (s *Service) DeleteDocument(ctx context.Context, projectID, id string) error {
	if err := s.stores.Documents.Delete(ctx, projectID, id); err != nil {
		return translateNotFound(err, "document not found")
	}
	s.recordMutation(ctx, projectID, entityDocument, id, "deleted", "")
	return nil
}

// --- process assets ---

func (s *Service) SaveProcessAsset(ctx context.Context, projectID string, a ProcessAsset) (ProcessAsset, error) {
	if err := a.Validate(); err != nil {
		return ProcessAsset{}, err
	}
	if err := s.stores.Assets.Save(ctx, projectID, a); err != nil {
		return ProcessAsset{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save process asset")
	}
	s.recordMutation(ctx, projectID, entityProcessAsset, a.ID, "saved", "")
	return a, nil
}

func (s *Service) GetProcessAsset(ctx context.Context, projectID, id string) (ProcessAsset, error) {
	a, err := s.stores.Assets.Get(ctx, projectID, id)
	if err != nil {
		return ProcessAsset{}, translateNotFound(err, "process asset not found")
	}
	return a, nil
}

func (s *Service) ListProcessAssets(ctx context.Context, projectID string) ([]ProcessAsset, error) {
	assets, err := s.stores.Assets.List(ctx, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list process assets")
	}
	return assets, nil
}

func (s *Service) DeleteProcessAsset(ctx context.Context, projectID, id string) error {
	if err := s.stores.Assets.Delete(ctx, projectID, id); err != nil {
		return translateNotFound(err, "process asset not found")
	}
	s.recordMutation(ctx, projectID, entityProcessAsset, id, "deleted", "")
	return nil
}

// ApplyProcessAsset records one use of a template: bumps the usage counter and
// remembers the id of the entity generated from it.
func (s *Service) ApplyProcessAsset(ctx context.Context, projectID, assetID, generatedID string) (ProcessAsset, error) {
	a, err := s.stores.Assets.Get(ctx, projectID, assetID)
	if err != nil {
		return ProcessAsset{}, translateNotFound(err, "process asset not found")
	}

	a.UsageCount++
	if generatedID != "" && !slices.Contains(a.GeneratedItems, generatedID) {
		a.GeneratedItems = append(a.GeneratedItems, generatedID)
	}
	if err := s.stores.Assets.Save(ctx, projectID, a); err != nil {
		return ProcessAsset{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save process asset")
	}
	s.recordMutation(ctx, projectID, entityProcessAsset, assetID, "applied", "")
	return a, nil
}

// --- trace links ---

// SetLinks replaces a requirement's link row. Every referenced id must exist
// in its collection; the silent under-counting the old dashboard tolerated is
// rejected here at the boundary.
func (s *Service) SetLinks(ctx context.Context, projectID string, link TraceLink) (TraceLink, error) {
	if strings.TrimSpace(link.RequirementID) == "" {
		return TraceLink{}, dErrors.New(dErrors.CodeBadRequest, "requirement id is required")
	}
	if _, err := s.stores.Requirements.Get(ctx, projectID, link.RequirementID); err != nil {
		return TraceLink{}, translateNotFound(err, "requirement not found")
	}

	// Normalize the id sets so a repeated or padded id cannot inflate coverage.
	link.TestIDs = pstrings.DedupeAndTrim(link.TestIDs)
	link.CIIDs = pstrings.DedupeAndTrim(link.CIIDs)
	link.RiskIDs = pstrings.DedupeAndTrim(link.RiskIDs)

	var missing []string
	for _, id := range link.TestIDs {
		if _, err := s.stores.TestCases.Get(ctx, projectID, id); errors.Is(err, sentinel.ErrNotFound) {
			missing = append(missing, "test:"+id)
		} else if err != nil {
			return TraceLink{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve test link")
		}
	}
	for _, id := range link.CIIDs {
		if _, err := s.stores.Items.Get(ctx, projectID, id); errors.Is(err, sentinel.ErrNotFound) {
			missing = append(missing, "ci:"+id)
		} else if err != nil {
			return TraceLink{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve ci link")
		}
	}
	for _, id := range link.RiskIDs {
		if _, err := s.stores.Risks.Get(ctx, projectID, id); errors.Is(err, sentinel.ErrNotFound) {
			missing = append(missing, "risk:"+id)
		} else if err != nil {
			return TraceLink{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve risk link")
		}
	}
	if len(missing) > 0 {
		return TraceLink{}, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("links reference unknown ids: %s", strings.Join(missing, ", ")))
	}

	if err := s.stores.Links.Put(ctx, projectID, link); err != nil {
		return TraceLink{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save links")
	}
	s.recordMutation(ctx, projectID, entityLink, link.RequirementID, "updated", "")
	return link, nil
}

// GetLinks returns the link row for a requirement; an absent row is a valid
// empty row, not an error.
func (s *Service) GetLinks(ctx context.Context, projectID, requirementID string) (TraceLink, error) {
	link, err := s.stores.Links.Get(ctx, projectID, requirementID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return TraceLink{RequirementID: requirementID}, nil
	}
	if err != nil {
		return TraceLink{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to get links")
	}
	return link, nil
}

func (s *Service) ListLinks(ctx context.Context, projectID string) ([]TraceLink, error) {
	links, err := s.stores.Links.List(ctx, projectID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list links")
	}
	return links, nil
}

// --- snapshot ---

// Snapshot assembles a read-only view of every collection, loading them in
// parallel. Mutations are sequential user actions, so the view is consistent
// enough for one scoring pass.
func (s *Service) Snapshot(ctx context.Context, projectID string) (*Snapshot, error) {
	snap := &Snapshot{ProjectID: projectID}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Requirements, err = s.stores.Requirements.List(ctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.TestCases, err = s.stores.TestCases.List(ctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Risks, err = s.stores.Risks.List(ctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Items, err = s.stores.Items.List(ctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Links, err = s.stores.Links.List(ctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Documents, err = s.stores.Documents.List(ctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Assets, err = s.stores.Assets.List(ctx, projectID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load project snapshot")
	}
	return snap, nil
}

// --- helpers ---

const (
	entityRequirement       = "requirement"
	entityTestCase          = "test_case"
	entityRisk              = "risk"
	entityConfigurationItem = "configuration_item"
	entityDocument          = "document"
	entityProcessAsset      = "process_asset"
	entityLink              = "trace_link"
)

func (s *Service) ensureAbsent(ctx context.Context, projectID, id, kind string) error {
	var err error
	switch kind {
	case entityRequirement:
		_, err = s.stores.Requirements.Get(ctx, projectID, id)
	case entityTestCase:
		_, err = s.stores.TestCases.Get(ctx, projectID, id)
	case entityRisk:
		_, err = s.stores.Risks.Get(ctx, projectID, id)
	case entityConfigurationItem:
		_, err = s.stores.Items.Get(ctx, projectID, id)
	}
	if err == nil {
		return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("%s %s already exists", kind, id))
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check id uniqueness")
	}
	return nil
}

// pruneLinkRefs rewrites every link row the mutator reports as changed.
func (s *Service) pruneLinkRefs(ctx context.Context, projectID string, mutate func(*TraceLink) bool) error {
	links, err := s.stores.Links.List(ctx, projectID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list links")
	}
	for i := range links {
		if mutate(&links[i]) {
			if err := s.stores.Links.Put(ctx, projectID, links[i]); err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to prune links")
			}
		}
	}
	return nil
}

func (s *Service) recordMutation(ctx context.Context, projectID, kind, id, action, actor string) {
	s.metrics.IncrementMutation(kind, action)
	if s.auditor != nil {
		s.auditor.Record(ctx, audit.Event{
			ProjectID:  projectID,
			EntityKind: kind,
			EntityID:   id,
			Action:     kind + "_" + action,
			Actor:      actor,
			RequestID:  middleware.GetRequestID(ctx),
		})
	}
	if s.logger != nil {
		s.logger.DebugContext(ctx, "entity mutation",
			"project_id", projectID,
			"kind", kind,
			"entity_id", id,
			"action", action,
		)
	}
}

func removeID(ids []string, id string) ([]string, bool) {
	idx := slices.Index(ids, id)
	if idx < 0 {
		return ids, false
	}
	return slices.Delete(slices.Clone(ids), idx, idx+1), true
}

func translateNotFound(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "store failure")
}
