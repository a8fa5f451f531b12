package compliance

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
)

// ControlOutcome pairs a control's identity with its evaluated result.
type ControlOutcome struct {
	ControlID string        `json:"controlId"`
	DomainID  string        `json:"domainId"`
	Name      string        `json:"name"`
	Severity  Severity      `json:"severity"`
	Result    ControlResult `json:"result"`
}

// DomainScore is the mean of a domain's applicable control scores.
type DomainScore struct {
	DomainID string  `json:"domainId"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
}

// Gap is one unmet control requirement with remediation guidance.
type Gap struct {
	ID              string   `json:"id"`
	ControlID       string   `json:"controlId"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Severity        Severity `json:"severity"`
	Impact          string   `json:"impact"`
	EstimatedEffort string   `json:"estimatedEffort"`
	Remediation     string   `json:"remediation"`
}

// Assessment is the full result of evaluating one standard.
type Assessment struct {
	StandardID      string           `json:"standardId"`
	StandardName    string           `json:"standardName"`
	OverallScore    float64          `json:"overallScore"`
	DomainScores    []DomainScore    `json:"domainScores"`
	Controls        []ControlOutcome `json:"controls"`
	IsCompliant     bool             `json:"isCompliant"`
	Gaps            []Gap            `json:"gaps,omitempty"`
	CriticalGaps    []Gap            `json:"criticalGaps,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`
}

// Assess evaluates a snapshot against a named built-in standard.
func Assess(snap *project.Snapshot, standardID string, th config.Thresholds) (Assessment, error) {
	std, err := Lookup(standardID)
	if err != nil {
		return Assessment{}, err
	}
	return AssessAgainst(snap, std, th), nil
}

// AssessAgainst evaluates a snapshot against an explicit standard table.
//
// Domain score is the mean of its applicable control scores, overall score the
// mean of domain scores. Not-applicable controls are excluded from both means,
// and a domain with no applicable controls contributes nothing to the overall
// mean. IsCompliant requires the overall score to meet the standard's pass
// threshold with no critical control left non-compliant.
func AssessAgainst(snap *project.Snapshot, std Standard, th config.Thresholds) Assessment {
	out := Assessment{StandardID: std.ID, StandardName: std.Name}

	criticalFailure := false
	type deficit struct {
		severity Severity
		score    int
		text     string
	}
	var deficits []deficit

	for _, dom := range std.Domains {
		sum, applicable := 0, 0
		for _, ctl := range dom.Controls {
			res := ctl.Evaluate(snap, th)
			out.Controls = append(out.Controls, ControlOutcome{
				ControlID: ctl.ID,
				DomainID:  dom.ID,
				Name:      ctl.Name,
				Severity:  ctl.Severity,
				Result:    res,
			})

			if res.Status == StatusNotApplicable {
				continue
			}
			sum += res.Score
			applicable++

			if res.Status == StatusCompliant {
				continue
			}
			if res.Status == StatusNonCompliant && ctl.Severity == SeverityCritical {
				criticalFailure = true
			}
			gap := buildGap(ctl, res)
			out.Gaps = append(out.Gaps, gap)
			if ctl.Severity == SeverityCritical {
				out.CriticalGaps = append(out.CriticalGaps, gap)
			}
			deficits = append(deficits, deficit{
				severity: ctl.Severity,
				score:    res.Score,
				text:     fmt.Sprintf("%s: %s", ctl.Name, ctl.Remediation),
			})
		}

		if applicable == 0 {
			continue
		}
		out.DomainScores = append(out.DomainScores, DomainScore{
			DomainID: dom.ID,
			Name:     dom.Name,
			Score:    float64(sum) / float64(applicable),
		})
	}

	if len(out.DomainScores) > 0 {
		total := 0.0
		for _, d := range out.DomainScores {
			total += d.Score
		}
		out.OverallScore = total / float64(len(out.DomainScores))
	}

	out.IsCompliant = out.OverallScore >= std.PassThreshold && !criticalFailure

	// Rank by severity, then by how far the control fell short. The cap is a
	// display concern, so the list is returned whole.
	sort.SliceStable(deficits, func(i, j int) bool {
		if deficits[i].severity.rank() != deficits[j].severity.rank() {
			return deficits[i].severity.rank() < deficits[j].severity.rank()
		}
		return deficits[i].score < deficits[j].score
	})
	for _, d := range deficits {
		out.Recommendations = append(out.Recommendations, d.text)
	}

	return out
}

func buildGap(ctl Control, res ControlResult) Gap {
	desc := ctl.Description
	if len(res.Gaps) > 0 {
		desc = res.Gaps[0]
	}
	return Gap{
		ID:              uuid.NewString(),
		ControlID:       ctl.ID,
		Title:           ctl.Name,
		Description:     desc,
		Severity:        ctl.Severity,
		Impact:          impactText(ctl.Severity),
		EstimatedEffort: effortText(ctl.Severity),
		Remediation:     ctl.Remediation,
	}
}

func impactText(s Severity) string {
	switch s {
	case SeverityCritical:
		return "Blocks certification and exposes the project to material compliance findings."
	case SeverityHigh:
		return "Likely audit finding, remediation required before the next assessment."
	case SeverityMedium:
		return "Observation level finding, weakens the overall compliance posture."
	default:
		return "Minor finding, improvement opportunity."
	}
}

func effortText(s Severity) string {
	switch s {
	case SeverityCritical, SeverityHigh:
		return "1-2 weeks"
	case SeverityMedium:
		return "2-5 days"
	default:
		return "1 day"
	}
}
