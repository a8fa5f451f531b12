package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
)

func TestScoreEmptyProject(t *testing.T) {
	got := Score(&project.Snapshot{}, config.DefaultThresholds())

	assert.Equal(t, 0, got.Score, "empty project scores zero without divide-by-zero")
	assert.Equal(t, BandCritical, got.Band)
	assert.Equal(t, 0.0, got.TestCoverage)
	assert.Equal(t, 0.0, got.CICoverage)
	assert.Equal(t, 0.0, got.DocCompleteness)
	assert.Equal(t, 0.0, got.TestPassRate)
}

func TestScoreCompositeMean(t *testing.T) {
	snap := &project.Snapshot{
		Requirements: []project.Requirement{
			{ID: "R1"}, {ID: "R2"}, {ID: "R3"}, {ID: "R4"},
		},
		TestCases: []project.TestCase{
			{ID: "T1", Status: project.TestPassed},
			{ID: "T2", Status: project.TestFailed},
		},
		Links: []project.TraceLink{
			{RequirementID: "R1", TestIDs: []string{"T1"}},
			{RequirementID: "R2", TestIDs: []string{"T2"}},
			{RequirementID: "R3", CIIDs: []string{"C1"}},
		},
		Documents: []project.Document{
			{ID: "D1", Sections: []project.Section{
				{ID: "s1", Description: "A sufficiently long description"},
				{ID: "s2", Description: "short"},
			}},
		},
	}

	got := Score(snap, config.DefaultThresholds())

	assert.InDelta(t, 0.5, got.TestCoverage, 1e-9)
	assert.InDelta(t, 0.25, got.CICoverage, 1e-9)
	assert.InDelta(t, 0.5, got.DocCompleteness, 1e-9)
	assert.InDelta(t, 0.5, got.TestPassRate, 1e-9)

	// round(mean(0.5, 0.25, 0.5, 0.5) * 100) = round(43.75) = 44
	assert.Equal(t, 44, got.Score)
	assert.Equal(t, BandCritical, got.Band)
}

func TestScoreBands(t *testing.T) {
	th := config.DefaultThresholds()

	perfect := &project.Snapshot{
		Requirements: []project.Requirement{{ID: "R1"}},
		TestCases:    []project.TestCase{{ID: "T1", Status: project.TestPassed}},
		Links:        []project.TraceLink{{RequirementID: "R1", TestIDs: []string{"T1"}, CIIDs: []string{"C1"}}},
		Documents: []project.Document{
			{ID: "D1", Sections: []project.Section{{ID: "s1", Description: "A sufficiently long description"}}},
		},
	}

	got := Score(perfect, th)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, BandHealthy, got.Band)

	assert.Equal(t, BandHealthy, bandFor(th.HealthyScore, th))
	assert.Equal(t, BandWarning, bandFor(th.HealthyScore-1, th))
	assert.Equal(t, BandWarning, bandFor(th.WarningScore, th))
	assert.Equal(t, BandCritical, bandFor(th.WarningScore-1, th))
}
