package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
	"tracegrid/internal/quality"
	"tracegrid/pkg/platform/sentinel"
)

func fixedControl(id string, sev Severity, res ControlResult) Control {
	return Control{
		ID:          id,
		Name:        "control " + id,
		Severity:    sev,
		Remediation: "remediate " + id,
		Evaluate: func(*project.Snapshot, config.Thresholds) ControlResult {
			return res
		},
	}
}

func TestAssessAgainstScoring(t *testing.T) {
	std := Standard{
		ID:            "test-std",
		Name:          "Test Standard",
		PassThreshold: 70,
		Domains: []Domain{
			{ID: "d1", Name: "Domain One", Controls: []Control{
				fixedControl("c1", SeverityHigh, ControlResult{Score: 80, Status: StatusCompliant}),
				fixedControl("c2", SeverityMedium, ControlResult{Score: 40, Status: StatusPartial, Gaps: []string{"forty percent"}}),
			}},
			{ID: "d2", Name: "Domain Two", Controls: []Control{
				fixedControl("c3", SeverityLow, ControlResult{Score: 100, Status: StatusCompliant}),
			}},
		},
	}

	got := AssessAgainst(&project.Snapshot{}, std, config.DefaultThresholds())

	require.Len(t, got.DomainScores, 2)
	assert.InDelta(t, 60.0, got.DomainScores[0].Score, 1e-9)
	assert.InDelta(t, 100.0, got.DomainScores[1].Score, 1e-9)

	// Overall is the arithmetic mean of the domain scores.
	assert.InDelta(t, 80.0, got.OverallScore, 1e-9)
	for _, d := range got.DomainScores {
		assert.GreaterOrEqual(t, d.Score, 0.0)
		assert.LessOrEqual(t, d.Score, 100.0)
	}

	assert.True(t, got.IsCompliant)
	require.Len(t, got.Gaps, 1)
	assert.Equal(t, "c2", got.Gaps[0].ControlID)
	assert.Equal(t, "forty percent", got.Gaps[0].Description)
	assert.NotEmpty(t, got.Gaps[0].ID)
	assert.Empty(t, got.CriticalGaps)
}

func TestAssessAgainstNotApplicableExcludedFromMeans(t *testing.T) {
	std := Standard{
		ID:            "na-std",
		PassThreshold: 70,
		Domains: []Domain{
			{ID: "d1", Controls: []Control{
				fixedControl("c1", SeverityMedium, ControlResult{Score: 90, Status: StatusCompliant}),
				fixedControl("c2", SeverityMedium, ControlResult{Status: StatusNotApplicable}),
			}},
		},
	}

	got := AssessAgainst(&project.Snapshot{}, std, config.DefaultThresholds())

	require.Len(t, got.DomainScores, 1)
	assert.InDelta(t, 90.0, got.DomainScores[0].Score, 1e-9,
		"a not-applicable control must not drag the domain mean toward zero")
	assert.InDelta(t, 90.0, got.OverallScore, 1e-9)
	assert.True(t, got.IsCompliant)
}

func TestAssessAgainstCriticalFailureBlocksCompliance(t *testing.T) {
	std := Standard{
		ID:            "crit-std",
		PassThreshold: 50,
		Domains: []Domain{
			{ID: "d1", Controls: []Control{
				fixedControl("c1", SeverityHigh, ControlResult{Score: 100, Status: StatusCompliant}),
				fixedControl("c2", SeverityCritical, ControlResult{Score: 0, Status: StatusNonCompliant, Gaps: []string{"broken"}}),
			}},
		},
	}

	got := AssessAgainst(&project.Snapshot{}, std, config.DefaultThresholds())

	// Overall score clears the threshold but the critical failure vetoes.
	assert.GreaterOrEqual(t, got.OverallScore, 50.0)
	assert.False(t, got.IsCompliant)
	require.Len(t, got.CriticalGaps, 1)
	assert.Equal(t, "c2", got.CriticalGaps[0].ControlID)
}

func TestAssessAgainstRecommendationOrder(t *testing.T) {
	std := Standard{
		ID:            "rank-std",
		PassThreshold: 100,
		Domains: []Domain{
			{ID: "d1", Controls: []Control{
				fixedControl("low", SeverityLow, ControlResult{Score: 10, Status: StatusPartial}),
				fixedControl("crit", SeverityCritical, ControlResult{Score: 50, Status: StatusPartial}),
				fixedControl("high-worse", SeverityHigh, ControlResult{Score: 5, Status: StatusNonCompliant}),
				fixedControl("high-better", SeverityHigh, ControlResult{Score: 60, Status: StatusPartial}),
			}},
		},
	}

	got := AssessAgainst(&project.Snapshot{}, std, config.DefaultThresholds())

	require.Len(t, got.Recommendations, 4)
	assert.Contains(t, got.Recommendations[0], "crit")
	assert.Contains(t, got.Recommendations[1], "high-worse")
	assert.Contains(t, got.Recommendations[2], "high-better")
	assert.Contains(t, got.Recommendations[3], "low")
}

func TestAssessUnknownStandard(t *testing.T) {
	_, err := Assess(&project.Snapshot{}, "pci-dss", config.DefaultThresholds())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestBuiltInStandards(t *testing.T) {
	all := List()
	require.Len(t, all, 5)

	for _, std := range all {
		t.Run(std.ID, func(t *testing.T) {
			assert.NotEmpty(t, std.Name)
			assert.Greater(t, std.PassThreshold, 0.0)
			require.NotEmpty(t, std.Domains)
			for _, dom := range std.Domains {
				require.NotEmpty(t, dom.Controls)
				for _, ctl := range dom.Controls {
					assert.NotNil(t, ctl.Evaluate, "control %s has no rule", ctl.ID)
					assert.NotEmpty(t, ctl.Remediation, "control %s has no remediation", ctl.ID)
				}
			}
		})
	}
}

func TestBuiltInAssessmentOverSnapshot(t *testing.T) {
	snap := &project.Snapshot{
		Requirements: []project.Requirement{
			{ID: "R1", CreatedBy: project.ActorUser, Priority: project.PriorityHigh, Status: project.RequirementVerified},
			{ID: "R2", CreatedBy: project.ActorUser, Priority: project.PriorityMedium, Status: project.RequirementActive},
		},
		TestCases: []project.TestCase{
			{ID: "T1", Status: project.TestPassed, Gherkin: "Given a thing\nWhen it runs\nThen it works"},
			{ID: "T2", Status: project.TestPassed},
		},
		Risks: []project.Risk{
			{ID: "K1", Probability: project.RiskHigh, Impact: project.RiskHigh, Status: project.RiskMitigated},
		},
		Items: []project.ConfigurationItem{
			{ID: "C1", Name: "core", Type: project.CISoftwareComponent, Status: project.CIBaseline},
		},
		Links: []project.TraceLink{
			{RequirementID: "R1", TestIDs: []string{"T1"}, CIIDs: []string{"C1"}, RiskIDs: []string{"K1"}},
			{RequirementID: "R2", TestIDs: []string{"T2"}, CIIDs: []string{"C1"}},
		},
	}

	got, err := Assess(snap, StandardISO27001, config.DefaultThresholds())
	require.NoError(t, err)

	assert.True(t, got.IsCompliant, "fully linked, mitigated, baselined project passes ISO 27001: %+v", got.Gaps)
	assert.Empty(t, got.CriticalGaps)
	assert.Equal(t, "ISO/IEC 27001", got.StandardName)
}

func TestPassRateRuleRoundsHalfUp(t *testing.T) {
	// Two of three passing is 66.67%, which rounds to 67. Truncation would
	// report 66 and disagree with the release gate over the same data.
	snap := &project.Snapshot{
		TestCases: []project.TestCase{
			{ID: "T1", Status: project.TestPassed},
			{ID: "T2", Status: project.TestPassed},
			{ID: "T3", Status: project.TestFailed},
		},
	}

	got := passRateRule(90)(snap, config.DefaultThresholds())
	assert.Equal(t, 67, got.Score)

	qr := quality.Evaluate(snap, config.DefaultThresholds(), time.Now())
	for _, gr := range qr.GateResults {
		if gr.GateID == quality.GateTestPassRate {
			assert.Equal(t, got.Score, gr.Score, "compliance and gate scoring must agree on the same ratio")
		}
	}
}
