package compliance

import (
	"fmt"
	"math"

	"tracegrid/internal/coverage"
	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
)

// percent rounds half-up, matching the coverage engine so the same ratio
// scores identically everywhere.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// grade turns a 0..100 score into a verdict against a target. At or above the
// target is compliant, at or above half of it partial, below that
// non-compliant.
func grade(score, target int) ControlStatus {
	switch {
	case score >= target:
		return StatusCompliant
	case score >= target/2:
		return StatusPartial
	default:
		return StatusNonCompliant
	}
}

// scored assembles the common result shape for ratio-based rules.
func scored(score, target int, evidence, gap string) ControlResult {
	res := ControlResult{Score: score, Status: grade(score, target)}
	if res.Status == StatusCompliant {
		res.Evidence = []string{evidence}
	} else {
		res.Gaps = []string{gap}
	}
	return res
}

// testCoverageRule scores the fraction of requirements linked to at least one
// verifying test.
func testCoverageRule(target int) func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		if len(snap.Requirements) == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no requirements recorded"}}
		}
		sum := coverage.Summarize(snap)
		score := sum.Tests.CoveragePercent
		return scored(score, target,
			fmt.Sprintf("%d%% of requirements are verified by linked tests", score),
			fmt.Sprintf("only %d%% of requirements are verified by linked tests, target %d%%", score, target))
	}
}

// ciCoverageRule scores the fraction of requirements linked to at least one
// implementing configuration item.
func ciCoverageRule(target int) func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		if len(snap.Requirements) == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no requirements recorded"}}
		}
		sum := coverage.Summarize(snap)
		score := sum.Items.CoveragePercent
		return scored(score, target,
			fmt.Sprintf("%d%% of requirements trace to configuration items", score),
			fmt.Sprintf("only %d%% of requirements trace to configuration items, target %d%%", score, target))
	}
}

// passRateRule scores the test execution pass rate.
func passRateRule(target int) func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		if len(snap.TestCases) == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no test cases recorded"}}
		}
		score := int(math.Round(coverage.TestPassRate(snap.TestCases) * 100))
		return scored(score, target,
			fmt.Sprintf("test pass rate is %d%%", score),
			fmt.Sprintf("test pass rate is %d%%, target %d%%", score, target))
	}
}

// docCompletenessRule scores the filled ratio of the document section tree.
func docCompletenessRule(target int) func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, th config.Thresholds) ControlResult {
		stats := coverage.DocCompleteness(snap.Documents, th.FilledSectionMinChars)
		if stats.Total == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no document sections recorded"}}
		}
		score := int(math.Round(stats.Ratio * 100))
		return scored(score, target,
			fmt.Sprintf("%d of %d document sections are filled", stats.Filled, stats.Total),
			fmt.Sprintf("%d of %d document sections are filled, target %d%%", stats.Filled, stats.Total, target))
	}
}

// riskMitigationRule scores how many classified risks have been mitigated or
// closed.
func riskMitigationRule(target int) func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		classified, handled := 0, 0
		for _, r := range snap.Risks {
			if !r.Classified() {
				continue
			}
			classified++
			if r.Status == project.RiskMitigated || r.Status == project.RiskClosed {
				handled++
			}
		}
		if classified == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no classified risks recorded"}}
		}
		score := percent(handled, classified)
		return scored(score, target,
			fmt.Sprintf("%d of %d classified risks are mitigated or closed", handled, classified),
			fmt.Sprintf("%d of %d classified risks are mitigated or closed, target %d%%", handled, classified, target))
	}
}

// noOpenCriticalRiskRule fails hard when any open high probability, high
// impact risk exists.
func noOpenCriticalRiskRule() func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		var open []string
		for _, r := range snap.Risks {
			if r.Probability == project.RiskHigh && r.Impact == project.RiskHigh && r.Status == project.RiskOpen {
				open = append(open, r.ID)
			}
		}
		if len(open) == 0 {
			return ControlResult{Score: 100, Status: StatusCompliant,
				Evidence: []string{"no open high probability, high impact risks"}}
		}
		return ControlResult{Score: 0, Status: StatusNonCompliant,
			Gaps: []string{fmt.Sprintf("%d open high probability, high impact risks: %v", len(open), open)}}
	}
}

// baselineRule scores how many configuration items are under baseline control.
func baselineRule(target int) func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		if len(snap.Items) == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no configuration items recorded"}}
		}
		baselined := 0
		for _, ci := range snap.Items {
			if ci.Status == project.CIBaseline {
				baselined++
			}
		}
		score := percent(baselined, len(snap.Items))
		return scored(score, target,
			fmt.Sprintf("%d of %d configuration items are baselined", baselined, len(snap.Items)),
			fmt.Sprintf("%d of %d configuration items are baselined, target %d%%", baselined, len(snap.Items), target))
	}
}

// authorshipRule checks that every requirement records who created it, which
// backs audit trails and electronic record attribution.
func authorshipRule() func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		if len(snap.Requirements) == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no requirements recorded"}}
		}
		attributed := 0
		for _, r := range snap.Requirements {
			if r.CreatedBy != "" {
				attributed++
			}
		}
		score := percent(attributed, len(snap.Requirements))
		return scored(score, 100,
			"every requirement records its author",
			fmt.Sprintf("%d of %d requirements lack author attribution", len(snap.Requirements)-attributed, len(snap.Requirements)))
	}
}

// gherkinRule checks that tests linked to requirements carry executable
// scenario text, so verification evidence is reproducible.
func gherkinRule(target int) func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		linked := map[string]bool{}
		for _, l := range snap.Links {
			for _, id := range l.TestIDs {
				linked[id] = true
			}
		}
		if len(linked) == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no tests linked to requirements"}}
		}
		with := 0
		for _, t := range snap.TestCases {
			if linked[t.ID] && t.Gherkin != "" {
				with++
			}
		}
		score := percent(with, len(linked))
		return scored(score, target,
			fmt.Sprintf("%d of %d linked tests carry executable scenarios", with, len(linked)),
			fmt.Sprintf("%d of %d linked tests carry executable scenarios, target %d%%", with, len(linked), target))
	}
}

// riskLinkageRule checks that classified risks trace back to requirements.
func riskLinkageRule(target int) func(*project.Snapshot, config.Thresholds) ControlResult {
	return func(snap *project.Snapshot, _ config.Thresholds) ControlResult {
		classified := 0
		for _, r := range snap.Risks {
			if r.Classified() {
				classified++
			}
		}
		if classified == 0 {
			return ControlResult{Status: StatusNotApplicable, Evidence: []string{"no classified risks recorded"}}
		}
		linked := map[string]bool{}
		for _, l := range snap.Links {
			for _, id := range l.RiskIDs {
				linked[id] = true
			}
		}
		traced := 0
		for _, r := range snap.Risks {
			if r.Classified() && linked[r.ID] {
				traced++
			}
		}
		score := percent(traced, classified)
		return scored(score, target,
			fmt.Sprintf("%d of %d classified risks trace to requirements", traced, classified),
			fmt.Sprintf("%d of %d classified risks trace to requirements, target %d%%", traced, classified, target))
	}
}
