// Package quality runs the fixed release gates and the custom content rules
// over a project snapshot. Pure functions, no I/O; the caller supplies the
// clock for staleness checks.
package quality

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"tracegrid/internal/coverage"
	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
)

// Severity grades a validation issue.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Category buckets issues for dashboard filtering.
type Category string

const (
	CategoryCompleteness Category = "completeness"
	CategoryConsistency  Category = "consistency"
	CategoryTraceability Category = "traceability"
	CategoryQuality      Category = "quality"
	CategoryCompliance   Category = "compliance"
)

// ValidationIssue is one finding against the project content.
type ValidationIssue struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Severity      Severity `json:"severity"`
	Category      Category `json:"category"`
	AffectedItems []string `json:"affectedItems,omitempty"`
	SuggestedFix  string   `json:"suggestedFix,omitempty"`
}

// GateResult is the outcome of one gate.
type GateResult struct {
	GateID        string            `json:"gateId"`
	Name          string            `json:"name"`
	Score         int               `json:"score"`
	RequiredScore int               `json:"requiredScore"`
	Passed        bool              `json:"passed"`
	Blocking      bool              `json:"blocking"`
	Issues        []ValidationIssue `json:"issues,omitempty"`
}

// Result is the full quality assessment.
type Result struct {
	OverallScore      int               `json:"overallScore"`
	IsReadyForRelease bool              `json:"isReadyForRelease"`
	GateResults       []GateResult      `json:"gateResults"`
	AllIssues         []ValidationIssue `json:"allIssues,omitempty"`
	Recommendations   []string          `json:"recommendations,omitempty"`
}

// gateEval is a gate's raw outcome before thresholding.
type gateEval struct {
	score  int
	issues []ValidationIssue
}

type gate struct {
	id       string
	name     string
	required func(config.Thresholds) int
	blocking bool
	eval     func(*project.Snapshot, config.Thresholds) gateEval
	advice   string
}

// Gate ids, in evaluation order.
const (
	GateTraceability  = "traceability-completeness"
	GateTestPassRate  = "test-pass-rate"
	GateMaturity      = "requirement-maturity"
	GateRiskMitigated = "risk-mitigation"
	GateDocumentation = "documentation-completeness"
	GateBaseline      = "baseline-integrity"
)

var gates = []gate{
	{
		id:       GateTraceability,
		name:     "Traceability Completeness",
		required: func(th config.Thresholds) int { return th.GateTraceability },
		blocking: true,
		eval:     evalTraceability,
		advice:   "Link verifying tests to every uncovered requirement.",
	},
	{
		id:       GateTestPassRate,
		name:     "Test Pass Rate",
		required: func(th config.Thresholds) int { return th.GateTestPassRate },
		blocking: true,
		eval:     evalTestPassRate,
		advice:   "Fix failing tests or quarantine them with a recorded reason.",
	},
	{
		id:       GateMaturity,
		name:     "Requirement Maturity",
		required: func(th config.Thresholds) int { return th.GateMaturity },
		blocking: false,
		eval:     evalMaturity,
		advice:   "Drive proposed and active requirements to implemented or verified.",
	},
	{
		id:       GateRiskMitigated,
		name:     "Risk Mitigation",
		required: func(th config.Thresholds) int { return th.GateRiskMitigated },
		blocking: true,
		eval:     evalRiskMitigation,
		advice:   "Record mitigation or closure for open classified risks.",
	},
	{
		id:       GateDocumentation,
		name:     "Documentation Completeness",
		required: func(th config.Thresholds) int { return th.GateDocumentation },
		blocking: false,
		eval:     evalDocumentation,
		advice:   "Fill in empty document sections.",
	},
	{
		id:       GateBaseline,
		name:     "Baseline Integrity",
		required: func(th config.Thresholds) int { return th.GateBaseline },
		blocking: false,
		eval:     evalBaseline,
		advice:   "Move in-development configuration items to baseline before release.",
	},
}

// Evaluate runs every gate plus the custom content rules. IsReadyForRelease
// is false whenever any blocking gate scores below its required score. The
// overall score is the rounded mean of the gate scores.
func Evaluate(snap *project.Snapshot, th config.Thresholds, now time.Time) Result {
	var res Result
	res.IsReadyForRelease = true

	total := 0
	for _, g := range gates {
		ev := g.eval(snap, th)
		required := g.required(th)
		gr := GateResult{
			GateID:        g.id,
			Name:          g.name,
			Score:         ev.score,
			RequiredScore: required,
			Passed:        ev.score >= required,
			Blocking:      g.blocking,
			Issues:        ev.issues,
		}
		res.GateResults = append(res.GateResults, gr)
		res.AllIssues = append(res.AllIssues, ev.issues...)
		total += ev.score

		if !gr.Passed {
			res.Recommendations = append(res.Recommendations,
				fmt.Sprintf("%s scored %d, required %d. %s", g.name, ev.score, required, g.advice))
			if g.blocking {
				res.IsReadyForRelease = false
			}
		}
	}
	res.OverallScore = int(math.Round(float64(total) / float64(len(gates))))

	res.AllIssues = append(res.AllIssues, ValidateCustomRules(snap, th, now)...)
	return res
}

// percent rounds half-up, matching the coverage engine so the same ratio
// scores identically everywhere.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func evalTraceability(snap *project.Snapshot, _ config.Thresholds) gateEval {
	if len(snap.Requirements) == 0 {
		return gateEval{score: 0, issues: []ValidationIssue{newIssue(
			"No requirements recorded",
			"The project has no requirements to trace.",
			SeverityHigh, CategoryTraceability, nil,
			"Capture the project requirements before assessing traceability.",
		)}}
	}

	sum := coverage.Summarize(snap)
	var uncovered []string
	for _, r := range snap.Requirements {
		if len(snap.LinkFor(r.ID).TestIDs) == 0 {
			uncovered = append(uncovered, r.ID)
		}
	}

	ev := gateEval{score: sum.Tests.CoveragePercent}
	if len(uncovered) > 0 {
		ev.issues = append(ev.issues, newIssue(
			"Requirements without verifying tests",
			fmt.Sprintf("%d requirements have no linked test case.", len(uncovered)),
			SeverityHigh, CategoryTraceability, uncovered,
			"Link at least one verifying test to each requirement.",
		))
	}
	return ev
}

func evalTestPassRate(snap *project.Snapshot, _ config.Thresholds) gateEval {
	if len(snap.TestCases) == 0 {
		return gateEval{score: 0, issues: []ValidationIssue{newIssue(
			"No test cases recorded",
			"The project has no test cases, so the pass rate cannot be established.",
			SeverityHigh, CategoryQuality, nil,
			"Add and execute test cases for the project requirements.",
		)}}
	}

	var failing []string
	for _, t := range snap.TestCases {
		if t.Status == project.TestFailed {
			failing = append(failing, t.ID)
		}
	}

	ev := gateEval{score: int(math.Round(coverage.TestPassRate(snap.TestCases) * 100))}
	if len(failing) > 0 {
		ev.issues = append(ev.issues, newIssue(
			"Failing test cases",
			fmt.Sprintf("%d test cases are currently failing.", len(failing)),
			SeverityHigh, CategoryQuality, failing,
			"Investigate and fix the failing tests.",
		))
	}
	return ev
}

func evalMaturity(snap *project.Snapshot, _ config.Thresholds) gateEval {
	if len(snap.Requirements) == 0 {
		return gateEval{score: 0}
	}
	mature := 0
	var immature []string
	for _, r := range snap.Requirements {
		if r.Status == project.RequirementImplemented || r.Status == project.RequirementVerified {
			mature++
		} else {
			immature = append(immature, r.ID)
		}
	}

	ev := gateEval{score: percent(mature, len(snap.Requirements))}
	if len(immature) > 0 {
		ev.issues = append(ev.issues, newIssue(
			"Immature requirements",
			fmt.Sprintf("%d requirements are still proposed or active.", len(immature)),
			SeverityMedium, CategoryCompleteness, immature,
			"Progress requirements to implemented or verified status.",
		))
	}
	return ev
}

func evalRiskMitigation(snap *project.Snapshot, _ config.Thresholds) gateEval {
	classified, handled := 0, 0
	var open []string
	for _, r := range snap.Risks {
		if !r.Classified() {
			continue
		}
		classified++
		if r.Status == project.RiskMitigated || r.Status == project.RiskClosed {
			handled++
		} else {
			open = append(open, r.ID)
		}
	}
	// Nothing classified means nothing left to mitigate.
	if classified == 0 {
		return gateEval{score: 100}
	}

	ev := gateEval{score: percent(handled, classified)}
	if len(open) > 0 {
		ev.issues = append(ev.issues, newIssue(
			"Open classified risks",
			fmt.Sprintf("%d classified risks have no recorded mitigation.", len(open)),
			SeverityHigh, CategoryQuality, open,
			"Mitigate, close or formally accept each open risk.",
		))
	}
	return ev
}

func evalDocumentation(snap *project.Snapshot, th config.Thresholds) gateEval {
	stats := coverage.DocCompleteness(snap.Documents, th.FilledSectionMinChars)
	if stats.Total == 0 {
		return gateEval{score: 0, issues: []ValidationIssue{newIssue(
			"No documentation recorded",
			"The project has no document sections.",
			SeverityMedium, CategoryCompleteness, nil,
			"Create the project documentation structure and fill it in.",
		)}}
	}

	ev := gateEval{score: int(math.Round(stats.Ratio * 100))}
	if stats.Filled < stats.Total {
		ev.issues = append(ev.issues, newIssue(
			"Incomplete documentation",
			fmt.Sprintf("%d of %d document sections are empty or too short.", stats.Total-stats.Filled, stats.Total),
			SeverityLow, CategoryCompleteness, nil,
			"Fill in the empty sections.",
		))
	}
	return ev
}

func evalBaseline(snap *project.Snapshot, _ config.Thresholds) gateEval {
	// No configuration items means nothing to baseline.
	if len(snap.Items) == 0 {
		return gateEval{score: 100}
	}
	baselined := 0
	var pending []string
	for _, ci := range snap.Items {
		if ci.Status == project.CIBaseline {
			baselined++
		} else {
			pending = append(pending, ci.ID)
		}
	}

	ev := gateEval{score: percent(baselined, len(snap.Items))}
	if len(pending) > 0 {
		ev.issues = append(ev.issues, newIssue(
			"Configuration items not baselined",
			fmt.Sprintf("%d configuration items are not under baseline control.", len(pending)),
			SeverityMedium, CategoryConsistency, pending,
			"Baseline or deprecate the pending configuration items.",
		))
	}
	return ev
}

func newIssue(title, desc string, sev Severity, cat Category, items []string, fix string) ValidationIssue {
	return ValidationIssue{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   desc,
		Severity:      sev,
		Category:      cat,
		AffectedItems: items,
		SuggestedFix:  fix,
	}
}
