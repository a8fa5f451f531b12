// Package httptransport is the thin HTTP layer. Handlers decode, delegate to
// the domain services and render; business rules live below.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tracegrid/internal/assessment"
	"tracegrid/internal/audit"
	"tracegrid/internal/platform/config"
	"tracegrid/internal/platform/metrics"
	"tracegrid/internal/platform/middleware"
	"tracegrid/internal/project"
)

//go:generate mockgen -source=router.go -destination=mocks/mock_services.go -package=mocks

// ProjectService is the entity store surface the handlers use.
// *project.Service satisfies it.
type ProjectService interface {
	CreateRequirement(ctx context.Context, projectID string, r project.Requirement) (project.Requirement, error)
	UpdateRequirement(ctx context.Context, projectID string, r project.Requirement) (project.Requirement, error)
	GetRequirement(ctx context.Context, projectID, id string) (project.Requirement, error)
	ListRequirements(ctx context.Context, projectID string) ([]project.Requirement, error)
	DeleteRequirement(ctx context.Context, projectID, id string) error

	CreateTestCase(ctx context.Context, projectID string, t project.TestCase) (project.TestCase, error)
	UpdateTestCase(ctx context.Context, projectID string, t project.TestCase) (project.TestCase, error)
	GetTestCase(ctx context.Context, projectID, id string) (project.TestCase, error)
	ListTestCases(ctx context.Context, projectID string) ([]project.TestCase, error)
	DeleteTestCase(ctx context.Context, projectID, id string) error

	CreateRisk(ctx context.Context, projectID string, r project.Risk) (project.Risk, error)
	UpdateRisk(ctx context.Context, projectID string, r project.Risk) (project.Risk, error)
	GetRisk(ctx context.Context, projectID, id string) (project.Risk, error)
	ListRisks(ctx context.Context, projectID string) ([]project.Risk, error)
	DeleteRisk(ctx context.Context, projectID, id string) error

	CreateConfigurationItem(ctx context.Context, projectID string, c project.ConfigurationItem) (project.ConfigurationItem, error)
	UpdateConfigurationItem(ctx context.Context, projectID string, c project.ConfigurationItem) (project.ConfigurationItem, error)
	GetConfigurationItem(ctx context.Context, projectID, id string) (project.ConfigurationItem, error)
	ListConfigurationItems(ctx context.Context, projectID string) ([]project.ConfigurationItem, error)
	DeleteConfigurationItem(ctx context.Context, projectID, id string) error

	SaveDocument(ctx context.Context, projectID string, d project.Document) (project.Document, error)
	GetDocument(ctx context.Context, projectID, id string) (project.Document, error)
	ListDocuments(ctx context.Context, projectID string) ([]project.Document, error)
	DeleteDocument(ctx context.Context, projectID, id string) error

	SaveProcessAsset(ctx context.Context, projectID string, a project.ProcessAsset) (project.ProcessAsset, error)
	GetProcessAsset(ctx context.Context, projectID, id string) (project.ProcessAsset, error)
	ListProcessAssets(ctx context.Context, projectID string) ([]project.ProcessAsset, error)
	DeleteProcessAsset(ctx context.Context, projectID, id string) error
	ApplyProcessAsset(ctx context.Context, projectID, assetID, generatedID string) (project.ProcessAsset, error)

	SetLinks(ctx context.Context, projectID string, link project.TraceLink) (project.TraceLink, error)
	GetLinks(ctx context.Context, projectID, requirementID string) (project.TraceLink, error)
	ListLinks(ctx context.Context, projectID string) ([]project.TraceLink, error)

	Snapshot(ctx context.Context, projectID string) (*project.Snapshot, error)
}

// AssessmentService runs full scoring assessments.
type AssessmentService interface {
	Run(ctx context.Context, projectID, standardID string) (*assessment.Report, error)
}

// AuditReader exposes the audit trail read side.
type AuditReader interface {
	ListByProject(ctx context.Context, projectID string) ([]audit.Event, error)
}

// Handler holds the handler dependencies.
type Handler struct {
	projects    ProjectService
	assessments AssessmentService
	trail       AuditReader
	thresholds  config.Thresholds
	logger      *slog.Logger
	metrics     *metrics.Metrics
	validator   middleware.TokenValidator
	now         func() time.Time
}

// Option configures optional handler dependencies.
type Option func(*Handler)

func WithAuditReader(trail AuditReader) Option {
	return func(h *Handler) { h.trail = trail }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithTokenValidator turns on bearer auth for the project routes.
func WithTokenValidator(v middleware.TokenValidator) Option {
	return func(h *Handler) { h.validator = v }
}

func NewHandler(
	projects ProjectService,
	assessments AssessmentService,
	thresholds config.Thresholds,
	logger *slog.Logger,
	opts ...Option,
) *Handler {
	h := &Handler{
		projects:    projects,
		assessments: assessments,
		thresholds:  thresholds,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewRouter wires all endpoints behind the shared middleware chain.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(h.metrics))

	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/standards", h.handleListStandards)

	r.Route("/projects/{projectID}", func(pr chi.Router) {
		if h.validator != nil {
			pr.Use(middleware.RequireAuth(h.validator, h.logger))
		}

		pr.Route("/requirements", func(er chi.Router) {
			er.Post("/", h.handleCreateRequirement)
			er.Get("/", h.handleListRequirements)
			er.Get("/{id}", h.handleGetRequirement)
			er.Put("/{id}", h.handleUpdateRequirement)
			er.Delete("/{id}", h.handleDeleteRequirement)
		})
		pr.Route("/tests", func(er chi.Router) {
			er.Post("/", h.handleCreateTestCase)
			er.Get("/", h.handleListTestCases)
			er.Get("/{id}", h.handleGetTestCase)
			er.Put("/{id}", h.handleUpdateTestCase)
			er.Delete("/{id}", h.handleDeleteTestCase)
		})
		pr.Route("/risks", func(er chi.Router) {
			er.Post("/", h.handleCreateRisk)
			er.Get("/", h.handleListRisks)
			er.Get("/{id}", h.handleGetRisk)
			er.Put("/{id}", h.handleUpdateRisk)
			er.Delete("/{id}", h.handleDeleteRisk)
		})
		pr.Route("/items", func(er chi.Router) {
			er.Post("/", h.handleCreateConfigurationItem)
			er.Get("/", h.handleListConfigurationItems)
			er.Get("/{id}", h.handleGetConfigurationItem)
			er.Put("/{id}", h.handleUpdateConfigurationItem)
			er.Delete("/{id}", h.handleDeleteConfigurationItem)
		})
		pr.Route("/documents", func(er chi.Router) {
			er.Post("/", h.handleSaveDocument)
			er.Get("/", h.handleListDocuments)
			er.Get("/{id}", h.handleGetDocument)
			er.Put("/{id}", h.handleUpdateDocument)
			er.Delete("/{id}", h.handleDeleteDocument)
		})
		pr.Route("/assets", func(er chi.Router) {
			er.Post("/", h.handleSaveProcessAsset)
			er.Get("/", h.handleListProcessAssets)
			er.Get("/{id}", h.handleGetProcessAsset)
			er.Put("/{id}", h.handleUpdateProcessAsset)
			er.Delete("/{id}", h.handleDeleteProcessAsset)
			er.Post("/{id}/apply", h.handleApplyProcessAsset)
		})

		pr.Put("/links/{requirementID}", h.handleSetLinks)
		pr.Get("/links/{requirementID}", h.handleGetLinks)
		pr.Get("/links", h.handleListLinks)

		pr.Get("/coverage", h.handleCoverage)
		pr.Get("/risk-matrix", h.handleRiskMatrix)
		pr.Get("/compliance/{standardID}", h.handleCompliance)
		pr.Get("/quality", h.handleQuality)
		pr.Get("/health", h.handleHealth)
		pr.Get("/assessment", h.handleAssessment)
		pr.Get("/audit", h.handleAuditTrail)
	})

	return r
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
