// Package riskmatrix classifies risks into the 3x3 probability/impact grid.
// Pure functions, no I/O.
package riskmatrix

import "tracegrid/internal/project"

// Levels is the grid axis order, low to high.
var Levels = [3]project.RiskLevel{project.RiskLow, project.RiskMedium, project.RiskHigh}

// Cell is one grid position. SeverityIndex = probability index + impact index,
// 0..4; renderers pick color bands from it.
type Cell struct {
	Probability   project.RiskLevel `json:"probability"`
	Impact        project.RiskLevel `json:"impact"`
	SeverityIndex int               `json:"severityIndex"`
	Risks         []project.Risk    `json:"risks"`
}

// Matrix is the bucketized grid. Risks missing probability or impact land in
// Unclassified rather than being dropped, so totals always reconcile with the
// input.
type Matrix struct {
	Cells        [3][3]Cell     `json:"cells"`
	Unclassified []project.Risk `json:"unclassified,omitempty"`
}

// Build places each risk in exactly one cell, or in Unclassified when either
// coordinate is missing.
func Build(risks []project.Risk) Matrix {
	var m Matrix
	for pi, p := range Levels {
		for ii, i := range Levels {
			m.Cells[pi][ii] = Cell{
				Probability:   p,
				Impact:        i,
				SeverityIndex: pi + ii,
			}
		}
	}

	for _, r := range risks {
		pi, ii := r.Probability.Index(), r.Impact.Index()
		if pi < 0 || ii < 0 {
			m.Unclassified = append(m.Unclassified, r)
			continue
		}
		m.Cells[pi][ii].Risks = append(m.Cells[pi][ii].Risks, r)
	}
	return m
}

// Cell returns the cell for a probability/impact pair, nil for unknown levels.
func (m *Matrix) Cell(p, i project.RiskLevel) *Cell {
	pi, ii := p.Index(), i.Index()
	if pi < 0 || ii < 0 {
		return nil
	}
	return &m.Cells[pi][ii]
}

// Flatten returns every bucketed risk, excluding Unclassified.
func (m *Matrix) Flatten() []project.Risk {
	var out []project.Risk
	for pi := range m.Cells {
		for ii := range m.Cells[pi] {
			out = append(out, m.Cells[pi][ii].Risks...)
		}
	}
	return out
}

// Counts returns the per-cell risk counts in grid order.
func (m *Matrix) Counts() [3][3]int {
	var counts [3][3]int
	for pi := range m.Cells {
		for ii := range m.Cells[pi] {
			counts[pi][ii] = len(m.Cells[pi][ii].Risks)
		}
	}
	return counts
}
