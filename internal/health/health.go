// Package health computes the composite project health score: the rounded
// mean of four normalized sub-scores. Pure functions, no I/O.
package health

import (
	"math"

	"tracegrid/internal/coverage"
	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
)

// Band colors the composite score against configured thresholds.
type Band string

const (
	BandHealthy  Band = "healthy"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// Report is the top-line health figure plus the sub-scores behind it. Each
// sub-score is in [0,1] and defaults to 0 when its denominator is 0, so an
// empty project scores 0 rather than propagating NaN.
type Report struct {
	Score           int     `json:"score"`
	Band            Band    `json:"band"`
	TestCoverage    float64 `json:"testCoverage"`
	CICoverage      float64 `json:"ciCoverage"`
	DocCompleteness float64 `json:"docCompleteness"`
	TestPassRate    float64 `json:"testPassRate"`
}

// Score computes the composite health report for a snapshot.
func Score(snap *project.Snapshot, th config.Thresholds) Report {
	sum := coverage.Summarize(snap)
	docs := coverage.DocCompleteness(snap.Documents, th.FilledSectionMinChars)

	rep := Report{
		TestCoverage:    sum.Tests.Ratio(sum.TotalRequirements),
		CICoverage:      sum.Items.Ratio(sum.TotalRequirements),
		DocCompleteness: docs.Ratio,
		TestPassRate:    coverage.TestPassRate(snap.TestCases),
	}

	mean := (rep.TestCoverage + rep.CICoverage + rep.DocCompleteness + rep.TestPassRate) / 4
	rep.Score = int(math.Round(mean * 100))
	rep.Band = bandFor(rep.Score, th)
	return rep
}

func bandFor(score int, th config.Thresholds) Band {
	switch {
	case score >= th.HealthyScore:
		return BandHealthy
	case score >= th.WarningScore:
		return BandWarning
	default:
		return BandCritical
	}
}
