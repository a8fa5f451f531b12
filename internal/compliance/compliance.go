// Package compliance evaluates a project snapshot against a named standard's
// control set. Standards are static tables of domains and controls; the
// assessor is standard-agnostic and interprets whichever table it is given.
// Pure functions, no I/O.
package compliance

import (
	"tracegrid/internal/platform/config"
	"tracegrid/internal/project"
)

// Severity grades a control and the gaps it produces.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// rank orders severities for recommendation sorting. Unknown sorts last.
func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

// ControlStatus is the per-control verdict.
type ControlStatus string

const (
	StatusCompliant     ControlStatus = "compliant"
	StatusPartial       ControlStatus = "partial"
	StatusNonCompliant  ControlStatus = "non-compliant"
	StatusNotApplicable ControlStatus = "not-applicable"
)

// ControlResult is what a control's evaluation rule returns. Evidence lists
// satisfied conditions, Gaps unsatisfied ones, both human readable.
type ControlResult struct {
	Score    int           `json:"score"`
	Status   ControlStatus `json:"status"`
	Evidence []string      `json:"evidence,omitempty"`
	Gaps     []string      `json:"gaps,omitempty"`
}

// Control is one named check inside a domain. Evaluate must be pure over the
// snapshot and thresholds.
type Control struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
	Remediation string
	Evaluate    func(*project.Snapshot, config.Thresholds) ControlResult
}

// Domain groups related controls within a standard.
type Domain struct {
	ID       string
	Name     string
	Controls []Control
}

// Standard is a complete static control table.
type Standard struct {
	ID            string
	Name          string
	Version       string
	PassThreshold float64
	Domains       []Domain
}
