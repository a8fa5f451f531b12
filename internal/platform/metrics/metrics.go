package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Methods are
// nil-safe so tests can pass a zero value without registering collectors.
type Metrics struct {
	// HTTP request latency by route and status class.
	HTTPLatency *prometheus.HistogramVec

	// Entity mutations by kind and action.
	EntityMutations *prometheus.CounterVec

	// Assessment runs by standard and compliance verdict.
	AssessmentOutcome *prometheus.CounterVec

	// Engine latency by stage (snapshot, coverage, riskmatrix, compliance,
	// quality, health).
	EngineLatency *prometheus.HistogramVec

	// Report cache hits and misses.
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		HTTPLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tracegrid_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status class",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "status"}),

		EntityMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tracegrid_entity_mutations_total",
			Help: "Entity store mutations by entity kind and action",
		}, []string{"kind", "action"}),

		AssessmentOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tracegrid_assessment_outcomes_total",
			Help: "Assessment runs by standard and compliance verdict",
		}, []string{"standard", "verdict"}),

		EngineLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tracegrid_engine_duration_seconds",
			Help:    "Scoring engine latency by stage",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"stage"}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tracegrid_report_cache_hits_total",
			Help: "Assessment report cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tracegrid_report_cache_misses_total",
			Help: "Assessment report cache misses",
		}),
	}
}

// ObserveHTTPLatency records request duration for a route/status pair.
func (m *Metrics) ObserveHTTPLatency(route, status string, d time.Duration) {
	if m != nil && m.HTTPLatency != nil {
		m.HTTPLatency.WithLabelValues(route, status).Observe(d.Seconds())
	}
}

// IncrementMutation records an entity store mutation.
func (m *Metrics) IncrementMutation(kind, action string) {
	if m != nil && m.EntityMutations != nil {
		m.EntityMutations.WithLabelValues(kind, action).Inc()
	}
}

// IncrementAssessment records an assessment outcome.
func (m *Metrics) IncrementAssessment(standard, verdict string) {
	if m != nil && m.AssessmentOutcome != nil {
		m.AssessmentOutcome.WithLabelValues(standard, verdict).Inc()
	}
}

// ObserveEngineLatency records the duration of one engine stage.
func (m *Metrics) ObserveEngineLatency(stage string, d time.Duration) {
	if m != nil && m.EngineLatency != nil {
		m.EngineLatency.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// IncrementCacheHit records a report cache hit.
func (m *Metrics) IncrementCacheHit() {
	if m != nil && m.CacheHits != nil {
		m.CacheHits.Inc()
	}
}

// IncrementCacheMiss records a report cache miss.
func (m *Metrics) IncrementCacheMiss() {
	if m != nil && m.CacheMisses != nil {
		m.CacheMisses.Inc()
	}
}
