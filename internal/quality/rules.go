package quality

import (
	"fmt"
	"strings"
	"time"

	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
)

// ValidateCustomRules runs the content rules that the fixed gates do not
// cover. Referential integrity is enforced at write time, so these rules
// target content quality rather than dangling references.
func ValidateCustomRules(snap *project.Snapshot, th config.Thresholds, now time.Time) []ValidationIssue {
	var issues []ValidationIssue

	if ids := emptyDescriptions(snap); len(ids) > 0 {
		issues = append(issues, newIssue(
			"Entities without descriptions",
			fmt.Sprintf("%d requirements or risks have an empty description.", len(ids)),
			SeverityMedium, CategoryCompleteness, ids,
			"Describe each entity so reviewers can assess it.",
		))
	}

	if ids := openCriticalRisks(snap); len(ids) > 0 {
		issues = append(issues, newIssue(
			"Unmitigated critical risks",
			fmt.Sprintf("%d high probability, high impact risks are still open.", len(ids)),
			SeverityCritical, CategoryQuality, ids,
			"Mitigate these risks before any release decision.",
		))
	}

	if ids := staleProposed(snap, th.StaleProposedAfter, now); len(ids) > 0 {
		issues = append(issues, newIssue(
			"Stale proposed requirements",
			fmt.Sprintf("%d requirements have sat in Proposed for over %d days.", len(ids), int(th.StaleProposedAfter.Hours()/24)),
			SeverityLow, CategoryConsistency, ids,
			"Activate or retire requirements that have stalled in Proposed.",
		))
	}

	if ids := deprecatedDependencies(snap); len(ids) > 0 {
		issues = append(issues, newIssue(
			"Dependencies on deprecated items",
			fmt.Sprintf("%d configuration items depend on a deprecated item.", len(ids)),
			SeverityHigh, CategoryConsistency, ids,
			"Migrate these items off their deprecated dependencies.",
		))
	}

	if ids := linkedTestsWithoutGherkin(snap); len(ids) > 0 {
		issues = append(issues, newIssue(
			"Linked tests without executable scenarios",
			fmt.Sprintf("%d tests verify requirements but carry no scenario text.", len(ids)),
			SeverityLow, CategoryTraceability, ids,
			"Add executable scenario text so verification is reproducible.",
		))
	}

	return issues
}

func emptyDescriptions(snap *project.Snapshot) []string {
	var ids []string
	for _, r := range snap.Requirements {
		if strings.TrimSpace(r.Description) == "" {
			ids = append(ids, r.ID)
		}
	}
	for _, r := range snap.Risks {
		if strings.TrimSpace(r.Description) == "" {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func openCriticalRisks(snap *project.Snapshot) []string {
	var ids []string
	for _, r := range snap.Risks {
		if r.Probability == project.RiskHigh && r.Impact == project.RiskHigh && r.Status == project.RiskOpen {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func staleProposed(snap *project.Snapshot, after time.Duration, now time.Time) []string {
	var ids []string
	for _, r := range snap.Requirements {
		if r.Status != project.RequirementProposed || r.UpdatedAt.IsZero() {
			continue
		}
		if now.Sub(r.UpdatedAt) > after {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func deprecatedDependencies(snap *project.Snapshot) []string {
	deprecated := map[string]bool{}
	for _, ci := range snap.Items {
		if ci.Status == project.CIDeprecated {
			deprecated[ci.ID] = true
		}
	}
	if len(deprecated) == 0 {
		return nil
	}
	var ids []string
	for _, ci := range snap.Items {
		for _, dep := range ci.DependsOn {
			if deprecated[dep] {
				ids = append(ids, ci.ID)
				break
			}
		}
	}
	return ids
}

func linkedTestsWithoutGherkin(snap *project.Snapshot) []string {
	linked := map[string]bool{}
	for _, l := range snap.Links {
		for _, id := range l.TestIDs {
			linked[id] = true
		}
	}
	var ids []string
	for _, t := range snap.TestCases {
		if linked[t.ID] && strings.TrimSpace(t.Gherkin) == "" {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
