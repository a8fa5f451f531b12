package compliance

import (
	"fmt"
	"sort"

	"tracegrid/pkg/platform/sentinel"
)

// Built-in standard ids.
const (
	StandardISO27001 = "iso-27001"
	StandardSOC2     = "soc2"
	StandardHIPAA    = "hipaa"
	StandardCFR11    = "cfr-part-11"
	StandardEvidence = "rules-of-evidence"
)

// standards holds the built-in control tables. The assessor never inspects
// standard ids, only the tables.
var standards = map[string]Standard{
	StandardISO27001: {
		ID:            StandardISO27001,
		Name:          "ISO/IEC 27001",
		Version:       "2022",
		PassThreshold: 75,
		Domains: []Domain{
			{
				ID:   "iso-a8",
				Name: "Asset and Configuration Management",
				Controls: []Control{
					{
						ID:          "iso-a8-1",
						Name:        "Inventory of assets",
						Description: "Configuration items are identified, versioned and under baseline control.",
						Severity:    SeverityHigh,
						Remediation: "Baseline outstanding configuration items and record their versions.",
						Evaluate:    baselineRule(70),
					},
					{
						ID:          "iso-a8-2",
						Name:        "Traceable implementation",
						Description: "Requirements trace to the configuration items implementing them.",
						Severity:    SeverityMedium,
						Remediation: "Link each requirement to its implementing configuration items.",
						Evaluate:    ciCoverageRule(60),
					},
				},
			},
			{
				ID:   "iso-a12",
				Name: "Operations Security",
				Controls: []Control{
					{
						ID:          "iso-a12-1",
						Name:        "Risk treatment",
						Description: "Identified risks are assessed and carry a mitigation status.",
						Severity:    SeverityCritical,
						Remediation: "Assess open risks and record mitigation or acceptance for each.",
						Evaluate:    riskMitigationRule(70),
					},
					{
						ID:          "iso-a12-2",
						Name:        "No open critical exposure",
						Description: "No high probability, high impact risk remains open.",
						Severity:    SeverityCritical,
						Remediation: "Mitigate or formally accept every high probability, high impact risk.",
						Evaluate:    noOpenCriticalRiskRule(),
					},
				},
			},
			{
				ID:   "iso-a14",
				Name: "System Acquisition and Development",
				Controls: []Control{
					{
						ID:          "iso-a14-1",
						Name:        "Security requirements verified",
						Description: "Requirements are verified by linked, executed tests.",
						Severity:    SeverityHigh,
						Remediation: "Link verifying tests to uncovered requirements and execute them.",
						Evaluate:    testCoverageRule(70),
					},
					{
						ID:          "iso-a14-2",
						Name:        "Test effectiveness",
						Description: "Executed tests pass at an acceptable rate.",
						Severity:    SeverityMedium,
						Remediation: "Investigate and fix failing tests before release.",
						Evaluate:    passRateRule(85),
					},
				},
			},
		},
	},

	StandardSOC2: {
		ID:            StandardSOC2,
		Name:          "SOC 2",
		Version:       "Trust Services Criteria 2017",
		PassThreshold: 70,
		Domains: []Domain{
			{
				ID:   "soc2-cc7",
				Name: "System Operations",
				Controls: []Control{
					{
						ID:          "soc2-cc7-1",
						Name:        "Risk identification and mitigation",
						Description: "Operational risks are identified, classified and mitigated.",
						Severity:    SeverityHigh,
						Remediation: "Classify unrated risks and drive open ones to mitigation.",
						Evaluate:    riskMitigationRule(60),
					},
					{
						ID:          "soc2-cc7-2",
						Name:        "Change traceability",
						Description: "Changes trace from requirement to implementing component.",
						Severity:    SeverityMedium,
						Remediation: "Record requirement to configuration item links for all changes.",
						Evaluate:    ciCoverageRule(50),
					},
				},
			},
			{
				ID:   "soc2-cc8",
				Name: "Change Management",
				Controls: []Control{
					{
						ID:          "soc2-cc8-1",
						Name:        "Changes are tested",
						Description: "Requirements are covered by tests before deployment.",
						Severity:    SeverityHigh,
						Remediation: "Add verifying tests for uncovered requirements.",
						Evaluate:    testCoverageRule(60),
					},
					{
						ID:          "soc2-cc8-2",
						Name:        "Documented procedures",
						Description: "Process documentation sections are filled in.",
						Severity:    SeverityLow,
						Remediation: "Complete the empty sections of the process documents.",
						Evaluate:    docCompletenessRule(50),
					},
				},
			},
		},
	},

	StandardHIPAA: {
		ID:            StandardHIPAA,
		Name:          "HIPAA Security Rule",
		Version:       "45 CFR 164",
		PassThreshold: 80,
		Domains: []Domain{
			{
				ID:   "hipaa-adm",
				Name: "Administrative Safeguards",
				Controls: []Control{
					{
						ID:          "hipaa-adm-1",
						Name:        "Risk analysis",
						Description: "Risks to systems handling protected data are analysed and tracked.",
						Severity:    SeverityCritical,
						Remediation: "Complete the risk analysis and record mitigation for open risks.",
						Evaluate:    riskMitigationRule(75),
					},
					{
						ID:          "hipaa-adm-2",
						Name:        "No unmanaged critical risk",
						Description: "No high probability, high impact risk remains open.",
						Severity:    SeverityCritical,
						Remediation: "Mitigate every open high probability, high impact risk.",
						Evaluate:    noOpenCriticalRiskRule(),
					},
				},
			},
			{
				ID:   "hipaa-tech",
				Name: "Technical Safeguards",
				Controls: []Control{
					{
						ID:          "hipaa-tech-1",
						Name:        "Verified safeguards",
						Description: "Safeguard requirements are verified by passing tests.",
						Severity:    SeverityHigh,
						Remediation: "Link and execute verifying tests for safeguard requirements.",
						Evaluate:    testCoverageRule(80),
					},
					{
						ID:          "hipaa-tech-2",
						Name:        "Test pass rate",
						Description: "Verification tests pass at an acceptable rate.",
						Severity:    SeverityHigh,
						Remediation: "Resolve failing verification tests.",
						Evaluate:    passRateRule(90),
					},
				},
			},
		},
	},

	StandardCFR11: {
		ID:            StandardCFR11,
		Name:          "21 CFR Part 11",
		Version:       "FDA Electronic Records",
		PassThreshold: 80,
		Domains: []Domain{
			{
				ID:   "cfr11-rec",
				Name: "Electronic Records",
				Controls: []Control{
					{
						ID:          "cfr11-rec-1",
						Name:        "Record attribution",
						Description: "Every record identifies the actor who created it.",
						Severity:    SeverityCritical,
						Remediation: "Backfill author attribution on unattributed requirements.",
						Evaluate:    authorshipRule(),
					},
					{
						ID:          "cfr11-rec-2",
						Name:        "Documentation completeness",
						Description: "Controlled documents are complete.",
						Severity:    SeverityMedium,
						Remediation: "Fill in the empty sections of controlled documents.",
						Evaluate:    docCompletenessRule(70),
					},
				},
			},
			{
				ID:   "cfr11-val",
				Name: "System Validation",
				Controls: []Control{
					{
						ID:          "cfr11-val-1",
						Name:        "Validated requirements",
						Description: "Requirements are validated by linked tests.",
						Severity:    SeverityCritical,
						Remediation: "Link validation tests to each uncovered requirement.",
						Evaluate:    testCoverageRule(90),
					},
					{
						ID:          "cfr11-val-2",
						Name:        "Reproducible verification",
						Description: "Linked tests carry executable scenario text.",
						Severity:    SeverityMedium,
						Remediation: "Add executable scenarios to linked tests missing them.",
						Evaluate:    gherkinRule(70),
					},
				},
			},
		},
	},

	StandardEvidence: {
		ID:            StandardEvidence,
		Name:          "Rules of Evidence",
		Version:       "Legal admissibility baseline",
		PassThreshold: 70,
		Domains: []Domain{
			{
				ID:   "ev-chain",
				Name: "Chain of Custody",
				Controls: []Control{
					{
						ID:          "ev-chain-1",
						Name:        "Attributed records",
						Description: "Records identify their author for admissibility.",
						Severity:    SeverityHigh,
						Remediation: "Record authorship on every requirement.",
						Evaluate:    authorshipRule(),
					},
					{
						ID:          "ev-chain-2",
						Name:        "Baseline integrity",
						Description: "Evidentiary artifacts are under baseline control.",
						Severity:    SeverityHigh,
						Remediation: "Baseline the configuration items serving as evidence.",
						Evaluate:    baselineRule(80),
					},
				},
			},
			{
				ID:   "ev-found",
				Name: "Foundation",
				Controls: []Control{
					{
						ID:          "ev-found-1",
						Name:        "Risk disclosure",
						Description: "Known risks trace to the requirements they threaten.",
						Severity:    SeverityMedium,
						Remediation: "Link classified risks to the affected requirements.",
						Evaluate:    riskLinkageRule(60),
					},
					{
						ID:          "ev-found-2",
						Name:        "Documented provenance",
						Description: "Provenance documentation is complete.",
						Severity:    SeverityMedium,
						Remediation: "Complete the provenance document sections.",
						Evaluate:    docCompletenessRule(60),
					},
				},
			},
		},
	},
}

// Lookup returns a built-in standard by id.
func Lookup(id string) (Standard, error) {
	std, ok := standards[id]
	if !ok {
		return Standard{}, fmt.Errorf("lookup standard %q: %w", id, sentinel.ErrNotFound)
	}
	return std, nil
}

// List returns all built-in standards ordered by id.
func List() []Standard {
	out := make([]Standard, 0, len(standards))
	for _, std := range standards {
		out = append(out, std)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
