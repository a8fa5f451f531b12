package quality

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
	"tracegrid/pkg/testutil"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// healthySnapshot clears every gate under the default thresholds.
func healthySnapshot() *project.Snapshot {
	return &project.Snapshot{
		Requirements: []project.Requirement{
			{ID: "R1", Description: "The system stores requirements", Status: project.RequirementVerified, Priority: project.PriorityHigh, UpdatedAt: testNow},
			{ID: "R2", Description: "The system links tests", Status: project.RequirementImplemented, Priority: project.PriorityMedium, UpdatedAt: testNow},
		},
		TestCases: []project.TestCase{
			{ID: "T1", Description: "verifies R1", Status: project.TestPassed, Gherkin: "Given stored\nThen retrievable"},
			{ID: "T2", Description: "verifies R2", Status: project.TestPassed, Gherkin: "Given linked\nThen traced"},
		},
		Risks: []project.Risk{
			{ID: "K1", Description: "data loss", Probability: project.RiskLow, Impact: project.RiskHigh, Status: project.RiskMitigated},
		},
		Items: []project.ConfigurationItem{
			{ID: "C1", Name: "core", Type: project.CISoftwareComponent, Status: project.CIBaseline},
		},
		Links: []project.TraceLink{
			{RequirementID: "R1", TestIDs: []string{"T1"}, CIIDs: []string{"C1"}},
			{RequirementID: "R2", TestIDs: []string{"T2"}},
		},
		Documents: []project.Document{
			{ID: "D1", Sections: []project.Section{
				{ID: "s1", Description: "A sufficiently long section body"},
				{ID: "s2", Description: "Another sufficiently long section body"},
			}},
		},
	}
}

func TestEvaluateHealthyProjectIsReady(t *testing.T) {
	got := Evaluate(healthySnapshot(), config.DefaultThresholds(), testNow)

	assert.True(t, got.IsReadyForRelease)
	require.Len(t, got.GateResults, 6)
	for _, gr := range got.GateResults {
		assert.True(t, gr.Passed, "gate %s scored %d, required %d", gr.GateID, gr.Score, gr.RequiredScore)
	}
	assert.Equal(t, 100, got.OverallScore)
	assert.Empty(t, got.Recommendations)
}

func TestEvaluateBlockingGateFailureBlocksRelease(t *testing.T) {
	snap := healthySnapshot()
	snap.TestCases[1].Status = project.TestFailed

	got := Evaluate(snap, config.DefaultThresholds(), testNow)

	assert.False(t, got.IsReadyForRelease, "a blocking gate below its required score must block release")

	var passRate *GateResult
	for i := range got.GateResults {
		if got.GateResults[i].GateID == GateTestPassRate {
			passRate = &got.GateResults[i]
		}
	}
	require.NotNil(t, passRate)
	assert.Equal(t, 50, passRate.Score)
	assert.False(t, passRate.Passed)
	assert.True(t, passRate.Blocking)
	assert.NotEmpty(t, got.Recommendations)
}

func TestEvaluateNonBlockingGateFailureDoesNotBlock(t *testing.T) {
	snap := healthySnapshot()
	// Drop maturity: both requirements back to Active. Non-blocking gate.
	snap.Requirements[0].Status = project.RequirementActive
	snap.Requirements[1].Status = project.RequirementActive

	got := Evaluate(snap, config.DefaultThresholds(), testNow)

	assert.True(t, got.IsReadyForRelease)
	for _, gr := range got.GateResults {
		if gr.GateID == GateMaturity {
			assert.False(t, gr.Passed)
			assert.False(t, gr.Blocking)
		}
	}
	assert.NotEmpty(t, got.Recommendations, "failed gates still produce advice")
}

func TestEvaluateEmptyProject(t *testing.T) {
	got := Evaluate(&project.Snapshot{}, config.DefaultThresholds(), testNow)

	// Traceability and pass rate are blocking and score zero with no data.
	assert.False(t, got.IsReadyForRelease)
	for _, gr := range got.GateResults {
		assert.GreaterOrEqual(t, gr.Score, 0)
		assert.LessOrEqual(t, gr.Score, 100)
	}
}

func TestEvaluateGateIssuesCarryAffectedItems(t *testing.T) {
	snap := healthySnapshot()
	snap.Links = snap.Links[:1] // R2 loses its test link

	got := Evaluate(snap, config.DefaultThresholds(), testNow)

	var found bool
	for _, issue := range got.AllIssues {
		if issue.Category == CategoryTraceability && contains(issue.AffectedItems, "R2") {
			found = true
			assert.NotEmpty(t, issue.ID)
			assert.NotEmpty(t, issue.SuggestedFix)
		}
	}
	assert.True(t, found, "uncovered requirement must be named in an issue")
}

func TestValidateCustomRules(t *testing.T) {
	t.Run("clean snapshot yields no issues", func(t *testing.T) {
		assert.Empty(t, ValidateCustomRules(healthySnapshot(), config.DefaultThresholds(), testNow))
	})

	t.Run("empty descriptions", func(t *testing.T) {
		snap := healthySnapshot()
		snap.Requirements[0].Description = "   "

		issues := ValidateCustomRules(snap, config.DefaultThresholds(), testNow)
		require.Len(t, issues, 1)
		assert.Equal(t, CategoryCompleteness, issues[0].Category)
		assert.Contains(t, issues[0].AffectedItems, "R1")
	})

	t.Run("open critical risk is a critical finding", func(t *testing.T) {
		snap := healthySnapshot()
		snap.Risks = append(snap.Risks, project.Risk{
			ID: "K2", Description: "outage", Probability: project.RiskHigh, Impact: project.RiskHigh, Status: project.RiskOpen,
		})

		issues := ValidateCustomRules(snap, config.DefaultThresholds(), testNow)
		require.Len(t, issues, 1)
		assert.Equal(t, SeverityCritical, issues[0].Severity)
		assert.Contains(t, issues[0].AffectedItems, "K2")
	})

	t.Run("stale proposed requirements", func(t *testing.T) {
		snap := healthySnapshot()
		snap.Requirements[0].Status = project.RequirementProposed
		snap.Requirements[0].UpdatedAt = testNow.Add(-45 * 24 * time.Hour)

		issues := ValidateCustomRules(snap, config.DefaultThresholds(), testNow)
		require.Len(t, issues, 1)
		assert.Equal(t, CategoryConsistency, issues[0].Category)
		assert.Contains(t, issues[0].AffectedItems, "R1")
	})

	t.Run("recently proposed is not stale", func(t *testing.T) {
		snap := healthySnapshot()
		snap.Requirements[0].Status = project.RequirementProposed
		snap.Requirements[0].UpdatedAt = testNow.Add(-24 * time.Hour)

		assert.Empty(t, ValidateCustomRules(snap, config.DefaultThresholds(), testNow))
	})

	t.Run("stale cutoff follows the configured threshold", func(t *testing.T) {
		snap := healthySnapshot()
		snap.Requirements[0].Status = project.RequirementProposed
		snap.Requirements[0].UpdatedAt = testNow.Add(-2 * 24 * time.Hour)

		th := config.DefaultThresholds()
		th.StaleProposedAfter = 24 * time.Hour

		issues := ValidateCustomRules(snap, th, testNow)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].AffectedItems, "R1")
	})

	t.Run("deprecated dependency", func(t *testing.T) {
		snap := healthySnapshot()
		snap.Items = append(snap.Items,
			project.ConfigurationItem{ID: "C2", Name: "legacy", Type: project.CITool, Status: project.CIDeprecated},
			project.ConfigurationItem{ID: "C3", Name: "dependent", Type: project.CISoftwareComponent, Status: project.CIBaseline, DependsOn: []string{"C2"}},
		)

		issues := ValidateCustomRules(snap, config.DefaultThresholds(), testNow)
		require.Len(t, issues, 1)
		assert.Equal(t, SeverityHigh, issues[0].Severity)
		assert.Equal(t, []string{"C3"}, issues[0].AffectedItems)
	})

	t.Run("linked test without gherkin", func(t *testing.T) {
		snap := healthySnapshot()
		snap.TestCases[0].Gherkin = ""

		issues := ValidateCustomRules(snap, config.DefaultThresholds(), testNow)
		require.Len(t, issues, 1)
		assert.Equal(t, CategoryTraceability, issues[0].Category)
		assert.Contains(t, issues[0].AffectedItems, "T1")
	})
}

func TestReleaseScenarioCriticalRiskReopened(t *testing.T) {
	snap := healthySnapshot()
	var before, after Result

	testutil.Given(t, "a project that currently clears every gate", func(t *testing.T) {
		before = Evaluate(snap, config.DefaultThresholds(), testNow)
		require.True(t, before.IsReadyForRelease)
	})

	testutil.When(t, "its mitigated critical risk is reopened", func(t *testing.T) {
		snap.Risks[0].Impact = project.RiskHigh
		snap.Risks[0].Probability = project.RiskHigh
		snap.Risks[0].Status = project.RiskOpen
		after = Evaluate(snap, config.DefaultThresholds(), testNow)
	})

	testutil.Then(t, "the risk mitigation gate blocks the release", func(t *testing.T) {
		assert.False(t, after.IsReadyForRelease)
		for _, gr := range after.GateResults {
			if gr.GateID == GateRiskMitigated {
				assert.False(t, gr.Passed)
				assert.True(t, gr.Blocking)
			}
		}
	})
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
