// Package assessment orchestrates a full scoring run: snapshot load, engine
// invocation, report caching keyed by snapshot hash, and the surrounding
// telemetry.
package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"tracegrid/internal/audit"
	"tracegrid/internal/compliance"
	"tracegrid/internal/coverage"
	"tracegrid/internal/health"
	"tracegrid/internal/platform/config"
	"tracegrid/internal/platform/metrics"
	"tracegrid/internal/platform/middleware"
	"tracegrid/internal/project"
	"tracegrid/internal/quality"
	"tracegrid/internal/riskmatrix"
)

// SnapshotLoader assembles the read-only project view the engines consume.
// *project.Service satisfies it.
type SnapshotLoader interface {
	Snapshot(ctx context.Context, projectID string) (*project.Snapshot, error)
}

// Cache memoizes serialized reports. Implementations must treat a miss as
// (nil, false, nil), not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// Auditor records assessment runs on the audit trail.
type Auditor interface {
	Record(ctx context.Context, event audit.Event)
}

// Report is the full assessment output for one project. Compliance is nil
// when the run was not scoped to a standard.
type Report struct {
	ProjectID    string                 `json:"projectId"`
	StandardID   string                 `json:"standardId,omitempty"`
	SnapshotHash string                 `json:"snapshotHash"`
	GeneratedAt  time.Time              `json:"generatedAt"`
	Health       health.Report          `json:"health"`
	Coverage     coverage.Summary       `json:"coverage"`
	Documents    coverage.DocStats      `json:"documents"`
	RiskMatrix   riskmatrix.Matrix      `json:"riskMatrix"`
	Compliance   *compliance.Assessment `json:"compliance,omitempty"`
	Quality      quality.Result         `json:"quality"`
}

// Service runs assessments. Cache, metrics, auditor and logger are all
// optional; a zero-option Service just computes.
type Service struct {
	loader     SnapshotLoader
	thresholds config.Thresholds
	cache      Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics
	auditor    Auditor
	tracer     trace.Tracer
	now        func() time.Time
}

type Option func(*Service)

func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditor(a Auditor) Option {
	return func(s *Service) { s.auditor = a }
}

func New(loader SnapshotLoader, th config.Thresholds, opts ...Option) (*Service, error) {
	if loader == nil {
		return nil, fmt.Errorf("snapshot loader is required")
	}

	svc := &Service{
		loader:     loader,
		thresholds: th,
		tracer:     otel.Tracer("tracegrid/assessment"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Run produces the assessment report for a project, optionally scoped to a
// compliance standard. Reports are memoized by a hash of the snapshot, so an
// unchanged store serves from cache; any cache failure degrades to recompute.
func (s *Service) Run(ctx context.Context, projectID, standardID string) (*Report, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.run", trace.WithAttributes(
		attribute.String("project.id", projectID),
		attribute.String("standard.id", standardID),
	))
	defer span.End()

	snap, err := s.timedSnapshot(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	hash, err := snapshotHash(snap)
	if err != nil {
		return nil, fmt.Errorf("hash snapshot: %w", err)
	}
	span.SetAttributes(attribute.String("snapshot.hash", hash))

	if cached := s.fromCache(ctx, projectID, standardID, hash); cached != nil {
		s.finish(ctx, cached)
		return cached, nil
	}

	report, err := s.compute(ctx, snap, standardID, hash)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, projectID, standardID, hash, report)
	s.finish(ctx, report)
	return report, nil
}

// finish emits the per-run outcome counter and audit event. Cached and
// computed reports go through the same path so a cache hit still leaves a
// trail entry.
func (s *Service) finish(ctx context.Context, report *Report) {
	s.metrics.IncrementAssessment(standardLabel(report.StandardID), verdict(report))
	s.record(ctx, report)
}

func (s *Service) timedSnapshot(ctx context.Context, projectID string) (*project.Snapshot, error) {
	start := time.Now()
	snap, err := s.loader.Snapshot(ctx, projectID)
	s.metrics.ObserveEngineLatency("snapshot", time.Since(start))
	return snap, err
}

func (s *Service) compute(ctx context.Context, snap *project.Snapshot, standardID, hash string) (*Report, error) {
	report := &Report{
		ProjectID:    snap.ProjectID,
		StandardID:   standardID,
		SnapshotHash: hash,
		GeneratedAt:  s.now().UTC(),
	}

	s.stage("coverage", func() {
		report.Coverage = coverage.Summarize(snap)
		report.Documents = coverage.DocCompleteness(snap.Documents, s.thresholds.FilledSectionMinChars)
	})
	s.stage("riskmatrix", func() {
		report.RiskMatrix = riskmatrix.Build(snap.Risks)
	})

	if standardID != "" {
		var err error
		s.stage("compliance", func() {
			var assessed compliance.Assessment
			assessed, err = compliance.Assess(snap, standardID, s.thresholds)
			report.Compliance = &assessed
		})
		if err != nil {
			return nil, fmt.Errorf("assess standard %q: %w", standardID, err)
		}
	}

	s.stage("quality", func() {
		report.Quality = quality.Evaluate(snap, s.thresholds, s.now())
	})
	s.stage("health", func() {
		report.Health = health.Score(snap, s.thresholds)
	})

	return report, nil
}

func (s *Service) stage(name string, fn func()) {
	start := time.Now()
	fn()
	s.metrics.ObserveEngineLatency(name, time.Since(start))
}

func (s *Service) fromCache(ctx context.Context, projectID, standardID, hash string) *Report {
	if s.cache == nil {
		return nil
	}
	payload, ok, err := s.cache.Get(ctx, cacheKey(projectID, standardID, hash))
	if err != nil {
		s.warn(ctx, "report cache read failed, recomputing", err)
		return nil
	}
	if !ok {
		s.metrics.IncrementCacheMiss()
		return nil
	}

	var report Report
	if err := json.Unmarshal(payload, &report); err != nil {
		s.warn(ctx, "cached report unreadable, recomputing", err)
		return nil
	}
	s.metrics.IncrementCacheHit()
	return &report
}

func (s *Service) toCache(ctx context.Context, projectID, standardID, hash string, report *Report) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		s.warn(ctx, "report cache encode failed", err)
		return
	}
	if err := s.cache.Set(ctx, cacheKey(projectID, standardID, hash), payload, s.cacheTTL); err != nil {
		s.warn(ctx, "report cache write failed", err)
	}
}

func (s *Service) record(ctx context.Context, report *Report) {
	if s.auditor == nil {
		return
	}
	s.auditor.Record(ctx, audit.Event{
		ProjectID:  report.ProjectID,
		EntityKind: "assessment",
		EntityID:   report.StandardID,
		Action:     "assessment_run",
		Detail:     fmt.Sprintf("snapshot %s, health %d", report.SnapshotHash, report.Health.Score),
		RequestID:  middleware.GetRequestID(ctx),
	})
}

func (s *Service) warn(ctx context.Context, msg string, err error) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg, "error", err)
	}
}

// snapshotHash is an FNV-64a over the canonical JSON of the snapshot. Struct
// field order is fixed, so equal snapshots produce equal hashes.
func snapshotHash(snap *project.Snapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	h := fnv.New64a()
	h.Write(payload)
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

func cacheKey(projectID, standardID, hash string) string {
	if standardID == "" {
		standardID = "none"
	}
	return fmt.Sprintf("tracegrid:assessment:%s:%s:%s", projectID, standardID, hash)
}

func standardLabel(standardID string) string {
	if standardID == "" {
		return "none"
	}
	return standardID
}

func verdict(report *Report) string {
	if report.Compliance == nil {
		return "unscoped"
	}
	if report.Compliance.IsCompliant {
		return "compliant"
	}
	return "non-compliant"
}
