// Package coverage computes traceability coverage ratios over a project
// snapshot: how many requirements are linked to verifying tests, how many to
// implementing configuration items, and how complete the document tree is.
// Pure functions, no I/O.
package coverage

import (
	"math"
	"strings"

	"tracegrid/internal/project"
)

// Dimension is one coverage figure: requirements with at least one link of a
// given kind, as a count and a rounded percentage of all requirements.
type Dimension struct {
	LinkedCount     int `json:"linkedCount"`
	CoveragePercent int `json:"coveragePercent"`
}

// Summary carries the coverage figures a dashboard needs in one pass.
type Summary struct {
	TotalRequirements int       `json:"totalRequirements"`
	Tests             Dimension `json:"tests"`
	Items             Dimension `json:"cis"`
}

// Summarize computes requirement->test and requirement->CI coverage. A
// requirement counts as covered in a dimension iff its link row holds at least
// one id of that kind. Zero requirements yields zero percentages, never NaN.
func Summarize(snap *project.Snapshot) Summary {
	total := len(snap.Requirements)
	summary := Summary{TotalRequirements: total}

	linksByReq := make(map[string]project.TraceLink, len(snap.Links))
	for _, l := range snap.Links {
		linksByReq[l.RequirementID] = l
	}

	for _, r := range snap.Requirements {
		link := linksByReq[r.ID]
		if len(link.TestIDs) > 0 {
			summary.Tests.LinkedCount++
		}
		if len(link.CIIDs) > 0 {
			summary.Items.LinkedCount++
		}
	}

	summary.Tests.CoveragePercent = percent(summary.Tests.LinkedCount, total)
	summary.Items.CoveragePercent = percent(summary.Items.LinkedCount, total)
	return summary
}

// DocStats reports document tree completeness.
type DocStats struct {
	Filled int     `json:"filled"`
	Total  int     `json:"total"`
	Ratio  float64 `json:"ratio"`
}

// DocCompleteness walks every section tree, counting a section as filled iff
// its trimmed description is longer than minChars. Empty trees yield a zero
// ratio.
func DocCompleteness(docs []project.Document, minChars int) DocStats {
	var stats DocStats
	for _, d := range docs {
		walkSections(d.Sections, minChars, &stats)
	}
	if stats.Total > 0 {
		stats.Ratio = float64(stats.Filled) / float64(stats.Total)
	}
	return stats
}

func walkSections(sections []project.Section, minChars int, stats *DocStats) {
	for _, s := range sections {
		stats.Total++
		if len(strings.TrimSpace(s.Description)) > minChars {
			stats.Filled++
		}
		walkSections(s.Children, minChars, stats)
	}
}

// TestPassRate returns the fraction of tests with status Passed, 0 for an
// empty test set.
func TestPassRate(tests []project.TestCase) float64 {
	if len(tests) == 0 {
		return 0
	}
	passed := 0
	for _, t := range tests {
		if t.Status == project.TestPassed {
			passed++
		}
	}
	return float64(passed) / float64(len(tests))
}

// Ratio is the [0,1] form of a dimension, used by the health aggregator.
func (d Dimension) Ratio(total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(d.LinkedCount) / float64(total)
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
