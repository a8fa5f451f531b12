// Package project holds the entity store: the domain records a traceability
// project is made of, their validation rules, and the stores that persist
// them. The scoring engines consume read-only snapshots assembled here.
package project

import (
	"strings"
	"time"

	dErrors "tracegrid/pkg/domain-errors"
)

// Actor identifies who authored a change.
type Actor string

const (
	ActorUser Actor = "User"
	ActorAI   Actor = "AI"
)

func (a Actor) IsValid() bool {
	return a == ActorUser || a == ActorAI
}

// Priority ranks a requirement.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// RequirementStatus tracks a requirement through its lifecycle.
type RequirementStatus string

const (
	RequirementProposed    RequirementStatus = "Proposed"
	RequirementActive      RequirementStatus = "Active"
	RequirementImplemented RequirementStatus = "Implemented"
	RequirementVerified    RequirementStatus = "Verified"
)

func (s RequirementStatus) IsValid() bool {
	switch s {
	case RequirementProposed, RequirementActive, RequirementImplemented, RequirementVerified:
		return true
	}
	return false
}

// Requirement is a user-assigned-id record. IDs are unique per project.
type Requirement struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Priority    Priority          `json:"priority"`
	Status      RequirementStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	CreatedBy   Actor             `json:"createdBy"`
	UpdatedBy   Actor             `json:"updatedBy"`
}

func (r Requirement) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "requirement id is required")
	}
	if !r.Priority.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid requirement priority")
	}
	if !r.Status.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid requirement status")
	}
	if r.CreatedBy != "" && !r.CreatedBy.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid requirement author")
	}
	if r.UpdatedBy != "" && !r.UpdatedBy.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid requirement author")
	}
	return nil
}

// TestStatus tracks a test case outcome.
type TestStatus string

const (
	TestPassed  TestStatus = "Passed"
	TestFailed  TestStatus = "Failed"
	TestPending TestStatus = "Pending"
	TestBlocked TestStatus = "Blocked"
	TestNotRun  TestStatus = "Not Run"
)

func (s TestStatus) IsValid() bool {
	switch s {
	case TestPassed, TestFailed, TestPending, TestBlocked, TestNotRun:
		return true
	}
	return false
}

// TestCase verifies one or more requirements. Gherkin holds the executable
// scenario text when one exists.
type TestCase struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Status      TestStatus `json:"status"`
	Gherkin     string     `json:"gherkin,omitempty"`
}

func (t TestCase) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "test case id is required")
	}
	if !t.Status.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid test case status")
	}
	return nil
}

// RiskLevel grades probability and impact.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func (l RiskLevel) IsValid() bool {
	return l == RiskLow || l == RiskMedium || l == RiskHigh
}

// Index maps a level onto 0..2 for severity arithmetic. Unknown levels return
// -1 so callers can detect unclassified risks.
func (l RiskLevel) Index() int {
	switch l {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	}
	return -1
}

// RiskStatus tracks mitigation progress.
type RiskStatus string

const (
	RiskOpen      RiskStatus = "Open"
	RiskMitigated RiskStatus = "Mitigated"
	RiskClosed    RiskStatus = "Closed"
)

func (s RiskStatus) IsValid() bool {
	return s == RiskOpen || s == RiskMitigated || s == RiskClosed
}

// Risk may arrive without probability or impact; those stay valid but are
// reported as unclassified by the risk matrix rather than bucketed.
type Risk struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Probability RiskLevel  `json:"probability,omitempty"`
	Impact      RiskLevel  `json:"impact,omitempty"`
	Status      RiskStatus `json:"status"`
}

func (r Risk) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "risk id is required")
	}
	if r.Probability != "" && !r.Probability.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid risk probability")
	}
	if r.Impact != "" && !r.Impact.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid risk impact")
	}
	if !r.Status.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid risk status")
	}
	return nil
}

// Classified reports whether the risk carries both grid coordinates.
func (r Risk) Classified() bool {
	return r.Probability.Index() >= 0 && r.Impact.Index() >= 0
}

// CIType categorizes configuration items.
type CIType string

const (
	CISoftwareComponent    CIType = "Software Component"
	CIDocument             CIType = "Document"
	CITool                 CIType = "Tool"
	CIHardware             CIType = "Hardware"
	CIArchitecturalProduct CIType = "Architectural Product"
)

func (t CIType) IsValid() bool {
	switch t {
	case CISoftwareComponent, CIDocument, CITool, CIHardware, CIArchitecturalProduct:
		return true
	}
	return false
}

// CIStatus tracks baseline state.
type CIStatus string

const (
	CIBaseline      CIStatus = "Baseline"
	CIInDevelopment CIStatus = "In Development"
	CIDeprecated    CIStatus = "Deprecated"
)

func (s CIStatus) IsValid() bool {
	return s == CIBaseline || s == CIInDevelopment || s == CIDeprecated
}

// ConfigurationItem is a versioned, trackable artifact. DependsOn references
// other CI ids and must stay acyclic; the service enforces both on save.
type ConfigurationItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      CIType   `json:"type"`
	Version   string   `json:"version"`
	Status    CIStatus `json:"status"`
	DependsOn []string `json:"dependsOn,omitempty"`
}

func (c ConfigurationItem) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "configuration item id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "configuration item name is required")
	}
	if !c.Type.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid configuration item type")
	}
	if !c.Status.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid configuration item status")
	}
	for _, dep := range c.DependsOn {
		if dep == c.ID {
			return dErrors.New(dErrors.CodeBadRequest, "configuration item cannot depend on itself")
		}
	}
	return nil
}

// TraceLink is the per-requirement row of the link table.
type TraceLink struct {
	RequirementID string   `json:"requirementId"`
	TestIDs       []string `json:"tests,omitempty"`
	CIIDs         []string `json:"cis,omitempty"`
	RiskIDs       []string `json:"risks,omitempty"`
	IssueRefs     []int    `json:"issues,omitempty"`
}

// Section is one node of a document tree. Completeness is judged on the
// trimmed description length.
type Section struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Children    []Section `json:"children,omitempty"`
}

// Document is a tree of sections.
type Document struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections,omitempty"`
}

func (d Document) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "document id is required")
	}
	return nil
}

// AssetKind categorizes reusable process assets.
type AssetKind string

const (
	AssetRequirementArchetype AssetKind = "Requirement Archetype"
	AssetSolutionBlueprint    AssetKind = "Solution Blueprint"
	AssetRiskPlaybook         AssetKind = "Risk Playbook"
	AssetTestStrategy         AssetKind = "Test Strategy"
)

func (k AssetKind) IsValid() bool {
	switch k {
	case AssetRequirementArchetype, AssetSolutionBlueprint, AssetRiskPlaybook, AssetTestStrategy:
		return true
	}
	return false
}

// ProcessAsset is a reusable template with usage statistics. Applying an asset
// bumps UsageCount and records the generated entity id.
type ProcessAsset struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Kind           AssetKind `json:"kind"`
	Body           string    `json:"body"`
	UsageCount     int       `json:"usageCount"`
	GeneratedItems []string  `json:"generatedItems,omitempty"`
}

func (a ProcessAsset) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "process asset id is required")
	}
	if !a.Kind.IsValid() {
		return dErrors.New(dErrors.CodeBadRequest, "invalid process asset kind")
	}
	return nil
}

// Snapshot is a read-only view of one project's collections, consistent enough
// for a single scoring pass. Engines must not mutate it.
type Snapshot struct {
	ProjectID    string              `json:"projectId"`
	Requirements []Requirement       `json:"requirements"`
	TestCases    []TestCase          `json:"testCases"`
	Risks        []Risk              `json:"risks"`
	Items        []ConfigurationItem `json:"items"`
	Links        []TraceLink         `json:"links"`
	Documents    []Document          `json:"documents"`
	Assets       []ProcessAsset      `json:"assets"`
}

// LinkFor returns the link row for a requirement id, zero row when absent.
func (s *Snapshot) LinkFor(requirementID string) TraceLink {
	for _, l := range s.Links {
		if l.RequirementID == requirementID {
			return l
		}
	}
	return TraceLink{RequirementID: requirementID}
}
