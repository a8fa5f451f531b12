package httptransport

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tracegrid/internal/assessment"
	"tracegrid/internal/audit"
	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
	"tracegrid/internal/transport/http/mocks"
	dErrors "tracegrid/pkg/domain-errors"
	"tracegrid/pkg/testutil"
)

type testRig struct {
	router      http.Handler
	projects    *mocks.MockProjectService
	assessments *mocks.MockAssessmentService
	trail       *mocks.MockAuditReader
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	projects := mocks.NewMockProjectService(ctrl)
	assessments := mocks.NewMockAssessmentService(ctrl)
	trail := mocks.NewMockAuditReader(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(projects, assessments, config.DefaultThresholds(), logger,
		WithAuditReader(trail))
	return &testRig{
		router:      NewRouter(h),
		projects:    projects,
		assessments: assessments,
		trail:       trail,
	}
}

func (rig *testRig) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.DoRequest(rig.router, testutil.NewJSONRequest(t, method, path, body))
}

func TestCreateRequirement(t *testing.T) {
	rig := newTestRig(t)
	in := project.Requirement{ID: "REQ-1", Description: "store things", Priority: project.PriorityHigh, Status: project.RequirementProposed}
	out := in
	out.CreatedAt = time.Now()

	rig.projects.EXPECT().
		CreateRequirement(gomock.Any(), "p1", in).
		Return(out, nil)

	w := rig.do(t, http.MethodPost, "/projects/p1/requirements/", in)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	got := testutil.UnmarshalResponse[project.Requirement](t, w)
	assert.Equal(t, "REQ-1", got.ID)
}

func TestCreateRequirementInvalidBody(t *testing.T) {
	rig := newTestRig(t)

	req := httptest.NewRequest(http.MethodPost, "/projects/p1/requirements/", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rig.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := testutil.UnmarshalErrorResponse(t, w)
	assert.Equal(t, string(dErrors.CodeBadRequest), envelope["error"])
}

func TestGetRequirementNotFound(t *testing.T) {
	rig := newTestRig(t)
	rig.projects.EXPECT().
		GetRequirement(gomock.Any(), "p1", "REQ-MISSING").
		Return(project.Requirement{}, dErrors.New(dErrors.CodeNotFound, "requirement not found"))

	w := rig.do(t, http.MethodGet, "/projects/p1/requirements/REQ-MISSING", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	envelope := testutil.UnmarshalErrorResponse(t, w)
	assert.Equal(t, string(dErrors.CodeNotFound), envelope["error"])
	assert.Equal(t, "requirement not found", envelope["error_description"])
}

func TestUpdateRiskUsesPathID(t *testing.T) {
	rig := newTestRig(t)
	rig.projects.EXPECT().
		UpdateRisk(gomock.Any(), "p1", gomock.Cond(func(r project.Risk) bool {
			return r.ID == "RISK-7"
		})).
		Return(project.Risk{ID: "RISK-7", Status: project.RiskMitigated}, nil)

	// Body carries a different id; the path wins.
	w := rig.do(t, http.MethodPut, "/projects/p1/risks/RISK-7",
		project.Risk{ID: "RISK-9", Status: project.RiskMitigated})

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestDeleteTestCase(t *testing.T) {
	rig := newTestRig(t)
	rig.projects.EXPECT().
		DeleteTestCase(gomock.Any(), "p1", "TC-1").
		Return(nil)

	w := rig.do(t, http.MethodDelete, "/projects/p1/tests/TC-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteConfigurationItemConflict(t *testing.T) {
	rig := newTestRig(t)
	rig.projects.EXPECT().
		DeleteConfigurationItem(gomock.Any(), "p1", "CI-1").
		Return(dErrors.New(dErrors.CodeConflict, "configuration item is depended on"))

	w := rig.do(t, http.MethodDelete, "/projects/p1/items/CI-1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSetLinksUsesPathRequirementID(t *testing.T) {
	rig := newTestRig(t)
	rig.projects.EXPECT().
		SetLinks(gomock.Any(), "p1", gomock.Cond(func(l project.TraceLink) bool {
			return l.RequirementID == "REQ-1" && len(l.TestIDs) == 1
		})).
		Return(project.TraceLink{RequirementID: "REQ-1", TestIDs: []string{"TC-1"}}, nil)

	w := rig.do(t, http.MethodPut, "/projects/p1/links/REQ-1",
		project.TraceLink{TestIDs: []string{"TC-1"}})

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestApplyProcessAssetRequiresGeneratedID(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodPost, "/projects/p1/assets/PA-1/apply", applyAssetRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoverageEndpoint(t *testing.T) {
	rig := newTestRig(t)
	rig.projects.EXPECT().
		Snapshot(gomock.Any(), "p1").
		Return(&project.Snapshot{
			ProjectID:    "p1",
			Requirements: []project.Requirement{{ID: "R1"}, {ID: "R2"}},
			Links:        []project.TraceLink{{RequirementID: "R1", TestIDs: []string{"T1"}}},
		}, nil)

	w := rig.do(t, http.MethodGet, "/projects/p1/coverage", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := testutil.UnmarshalResponse[struct {
		TotalRequirements int `json:"totalRequirements"`
		Tests             struct {
			CoveragePercent int `json:"coveragePercent"`
		} `json:"tests"`
	}](t, w)
	assert.Equal(t, 2, body.TotalRequirements)
	assert.Equal(t, 50, body.Tests.CoveragePercent)
}

func TestComplianceUnknownStandard(t *testing.T) {
	rig := newTestRig(t)
	rig.projects.EXPECT().
		Snapshot(gomock.Any(), "p1").
		Return(&project.Snapshot{ProjectID: "p1"}, nil)

	w := rig.do(t, http.MethodGet, "/projects/p1/compliance/pci-dss", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssessmentPassesStandardQuery(t *testing.T) {
	rig := newTestRig(t)
	rig.assessments.EXPECT().
		Run(gomock.Any(), "p1", "iso-27001").
		Return(&assessment.Report{ProjectID: "p1", StandardID: "iso-27001", SnapshotHash: "abc"}, nil)

	w := rig.do(t, http.MethodGet, "/projects/p1/assessment?standard=iso-27001", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	report := testutil.UnmarshalResponse[assessment.Report](t, w)
	assert.Equal(t, "abc", report.SnapshotHash)
}

func TestAuditTrailEndpoint(t *testing.T) {
	rig := newTestRig(t)
	rig.trail.EXPECT().
		ListByProject(gomock.Any(), "p1").
		Return([]audit.Event{{ID: uuid.New(), ProjectID: "p1", Action: "requirement_created"}}, nil)

	w := rig.do(t, http.MethodGet, "/projects/p1/audit", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	events := testutil.UnmarshalResponse[[]audit.Event](t, w)
	require.Len(t, events, 1)
	assert.Equal(t, "requirement_created", events[0].Action)
}

func TestListStandards(t *testing.T) {
	rig := newTestRig(t)

	w := rig.do(t, http.MethodGet, "/standards", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	out := testutil.UnmarshalResponse[[]standardSummary](t, w)
	assert.Len(t, out, 5)
}

func TestHealthz(t *testing.T) {
	rig := newTestRig(t)
	w := rig.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
