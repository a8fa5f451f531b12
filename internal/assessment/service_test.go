package assessment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracegrid/internal/audit"
	"tracegrid/internal/compliance"
	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
	"tracegrid/pkg/platform/sentinel"
)

type stubLoader struct {
	snap *project.Snapshot
	err  error
}

func (l *stubLoader) Snapshot(context.Context, string) (*project.Snapshot, error) {
	return l.snap, l.err
}

type fakeCache struct {
	data    map[string][]byte
	hits    int
	misses  int
	sets    int
	failing bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if c.failing {
		return nil, false, errors.New("cache down")
	}
	payload, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return payload, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	if c.failing {
		return errors.New("cache down")
	}
	c.sets++
	c.data[key] = payload
	return nil
}

type captureAuditor struct {
	events []audit.Event
}

func (a *captureAuditor) Record(_ context.Context, e audit.Event) {
	a.events = append(a.events, e)
}

func sampleSnapshot() *project.Snapshot {
	return &project.Snapshot{
		ProjectID: "p1",
		Requirements: []project.Requirement{
			{ID: "R1", Description: "store data", Status: project.RequirementVerified, Priority: project.PriorityHigh, CreatedBy: project.ActorUser},
		},
		TestCases: []project.TestCase{
			{ID: "T1", Description: "verifies R1", Status: project.TestPassed, Gherkin: "Given\nThen"},
		},
		Risks: []project.Risk{
			{ID: "K1", Description: "loss", Probability: project.RiskLow, Impact: project.RiskLow, Status: project.RiskMitigated},
		},
		Items: []project.ConfigurationItem{
			{ID: "C1", Name: "core", Type: project.CISoftwareComponent, Status: project.CIBaseline},
		},
		Links: []project.TraceLink{
			{RequirementID: "R1", TestIDs: []string{"T1"}, CIIDs: []string{"C1"}, RiskIDs: []string{"K1"}},
		},
	}
}

func TestNewRequiresLoader(t *testing.T) {
	_, err := New(nil, config.DefaultThresholds())
	assert.Error(t, err)
}

func TestRunProducesReport(t *testing.T) {
	auditor := &captureAuditor{}
	svc, err := New(&stubLoader{snap: sampleSnapshot()}, config.DefaultThresholds(),
		WithAuditor(auditor))
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), "p1", compliance.StandardSOC2)
	require.NoError(t, err)

	assert.Equal(t, "p1", report.ProjectID)
	assert.NotEmpty(t, report.SnapshotHash)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 100, report.Coverage.Tests.CoveragePercent)
	require.NotNil(t, report.Compliance)
	assert.True(t, report.Compliance.IsCompliant)
	assert.Equal(t, 1, len(report.RiskMatrix.Flatten()))

	require.Len(t, auditor.events, 1)
	assert.Equal(t, "assessment_run", auditor.events[0].Action)
	assert.Equal(t, "p1", auditor.events[0].ProjectID)
}

func TestRunWithoutStandardSkipsCompliance(t *testing.T) {
	svc, err := New(&stubLoader{snap: sampleSnapshot()}, config.DefaultThresholds())
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), "p1", "")
	require.NoError(t, err)
	assert.Nil(t, report.Compliance)
}

func TestRunUnknownStandard(t *testing.T) {
	svc, err := New(&stubLoader{snap: sampleSnapshot()}, config.DefaultThresholds())
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), "p1", "pci-dss")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestRunMemoizesBySnapshotHash(t *testing.T) {
	loader := &stubLoader{snap: sampleSnapshot()}
	cache := newFakeCache()
	auditor := &captureAuditor{}
	svc, err := New(loader, config.DefaultThresholds(),
		WithCache(cache, time.Minute),
		WithAuditor(auditor))
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.Run(ctx, "p1", compliance.StandardSOC2)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.misses)
	assert.Equal(t, 1, cache.sets)

	// Unchanged store: same hash, served from cache.
	second, err := svc.Run(ctx, "p1", compliance.StandardSOC2)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.sets, "cache hit must not rewrite")
	assert.Equal(t, first.SnapshotHash, second.SnapshotHash)
	assert.Equal(t, first.Health, second.Health)

	// A cached run is still a run: it must leave a trail entry.
	require.Len(t, auditor.events, 2)
	assert.Equal(t, "assessment_run", auditor.events[1].Action)
	assert.Equal(t, "p1", auditor.events[1].ProjectID)

	// Any mutation changes the hash and forces a recompute.
	loader.snap = sampleSnapshot()
	loader.snap.Requirements[0].Description = "store data durably"
	third, err := svc.Run(ctx, "p1", compliance.StandardSOC2)
	require.NoError(t, err)
	assert.NotEqual(t, first.SnapshotHash, third.SnapshotHash)
	assert.Equal(t, 2, cache.misses)
	assert.Equal(t, 2, cache.sets)
	assert.Len(t, auditor.events, 3)
}

func TestRunDegradesWhenCacheFails(t *testing.T) {
	cache := newFakeCache()
	cache.failing = true
	svc, err := New(&stubLoader{snap: sampleSnapshot()}, config.DefaultThresholds(),
		WithCache(cache, time.Minute))
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), "p1", "")
	require.NoError(t, err, "cache failures must never fail the run")
	assert.NotNil(t, report)
}

func TestRunPropagatesLoaderError(t *testing.T) {
	svc, err := New(&stubLoader{err: errors.New("store down")}, config.DefaultThresholds())
	require.NoError(t, err)

	_, err = svc.Run(context.Background(), "p1", "")
	assert.Error(t, err)
}
