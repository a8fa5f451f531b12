package project

import "context"

// Stores are interface-driven to keep the domain logic testable and to allow
// swapping in-memory or SQL persistence without rewiring business code. All
// collections are scoped by project id; Save is an upsert.
type RequirementStore interface {
	Save(ctx context.Context, projectID string, r Requirement) error
	Get(ctx context.Context, projectID, id string) (Requirement, error)
	List(ctx context.Context, projectID string) ([]Requirement, error)
	Delete(ctx context.Context, projectID, id string) error
}

type TestCaseStore interface {
	Save(ctx context.Context, projectID string, t TestCase) error
	Get(ctx context.Context, projectID, id string) (TestCase, error)
	List(ctx context.Context, projectID string) ([]TestCase, error)
	Delete(ctx context.Context, projectID, id string) error
}

type RiskStore interface {
	Save(ctx context.Context, projectID string, r Risk) error
	Get(ctx context.Context, projectID, id string) (Risk, error)
	List(ctx context.Context, projectID string) ([]Risk, error)
	Delete(ctx context.Context, projectID, id string) error
}

type ConfigurationItemStore interface {
	Save(ctx context.Context, projectID string, c ConfigurationItem) error
	Get(ctx context.Context, projectID, id string) (ConfigurationItem, error)
	List(ctx context.Context, projectID string) ([]ConfigurationItem, error)
	Delete(ctx context.Context, projectID, id string) error
}

type LinkStore interface {
	Put(ctx context.Context, projectID string, link TraceLink) error
	Get(ctx context.Context, projectID, requirementID string) (TraceLink, error)
	List(ctx context.Context, projectID string) ([]TraceLink, error)
	Delete(ctx context.Context, projectID, requirementID string) error
}

type DocumentStore interface {
	Save(ctx context.Context, projectID string, d Document) error
	Get(ctx context.Context, projectID, id string) (Document, error)
	List(ctx context.Context, projectID string) ([]Document, error)
	Delete(ctx context.Context, projectID, id string) error
}

type ProcessAssetStore interface {
	Save(ctx context.Context, projectID string, a ProcessAsset) error
	Get(ctx context.Context, projectID, id string) (ProcessAsset, error)
	List(ctx context.Context, projectID string) ([]ProcessAsset, error)
	Delete(ctx context.Context, projectID, id string) error
}

// Stores bundles the per-aggregate stores the service needs.
type Stores struct {
	Requirements RequirementStore
	TestCases    TestCaseStore
	Risks        RiskStore
	Items        ConfigurationItemStore
	Links        LinkStore
	Documents    DocumentStore
	Assets       ProcessAssetStore
}
