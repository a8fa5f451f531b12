package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"tracegrid/pkg/platform/sentinel"
)

// Postgres stores persist project collections in PostgreSQL. Flat fields map
// onto columns; nested structures (section trees, link id sets) are stored as
// JSONB payloads.

type PostgresRequirementStore struct {
	db *sql.DB
}

func NewPostgresRequirementStore(db *sql.DB) *PostgresRequirementStore {
	return &PostgresRequirementStore{db: db}
}

func (s *PostgresRequirementStore) Save(ctx context.Context, projectID string, r Requirement) error {
	query := `
		INSERT INTO requirements (project_id, id, description, priority, status, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (project_id, id) DO UPDATE SET
			description = EXCLUDED.description,
			priority = EXCLUDED.priority,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by
	`
	_, err := s.db.ExecContext(ctx, query,
		projectID, r.ID, r.Description, r.Priority, r.Status,
		r.CreatedAt, r.UpdatedAt, r.CreatedBy, r.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("save requirement: %w", err)
	}
	return nil
}

func (s *PostgresRequirementStore) Get(ctx context.Context, projectID, id string) (Requirement, error) {
	query := `
		SELECT id, description, priority, status, created_at, updated_at, created_by, updated_by
		FROM requirements WHERE project_id = $1 AND id = $2
	`
	var r Requirement
	err := s.db.QueryRowContext(ctx, query, projectID, id).Scan(
		&r.ID, &r.Description, &r.Priority, &r.Status,
		&r.CreatedAt, &r.UpdatedAt, &r.CreatedBy, &r.UpdatedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Requirement{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Requirement{}, fmt.Errorf("get requirement: %w", err)
	}
	return r, nil
}

func (s *PostgresRequirementStore) List(ctx context.Context, projectID string) ([]Requirement, error) {
	query := `
		SELECT id, description, priority, status, created_at, updated_at, created_by, updated_by
		FROM requirements WHERE project_id = $1 ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()

	var out []Requirement
	for rows.Next() {
		var r Requirement
		if err := rows.Scan(&r.ID, &r.Description, &r.Priority, &r.Status,
			&r.CreatedAt, &r.UpdatedAt, &r.CreatedBy, &r.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresRequirementStore) Delete(ctx context.Context, projectID, id string) error {
	return deleteRow(ctx, s.db, "requirements", projectID, id)
}

type PostgresTestCaseStore struct {
	db *sql.DB
}

func NewPostgresTestCaseStore(db *sql.DB) *PostgresTestCaseStore {
	return &PostgresTestCaseStore{db: db}
}

func (s *PostgresTestCaseStore) Save(ctx context.Context, projectID string, t TestCase) error {
	query := `
		INSERT INTO test_cases (project_id, id, description, status, gherkin)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (project_id, id) DO UPDATE SET
			description = EXCLUDED.description,
			status = EXCLUDED.status,
			gherkin = EXCLUDED.gherkin
	`
	if _, err := s.db.ExecContext(ctx, query, projectID, t.ID, t.Description, t.Status, t.Gherkin); err != nil {
		return fmt.Errorf("save test case: %w", err)
	}
	return nil
}

func (s *PostgresTestCaseStore) Get(ctx context.Context, projectID, id string) (TestCase, error) {
	var t TestCase
	err := s.db.QueryRowContext(ctx,
		`SELECT id, description, status, gherkin FROM test_cases WHERE project_id = $1 AND id = $2`,
		projectID, id,
	).Scan(&t.ID, &t.Description, &t.Status, &t.Gherkin)
	if errors.Is(err, sql.ErrNoRows) {
		return TestCase{}, sentinel.ErrNotFound
	}
	if err != nil {
		return TestCase{}, fmt.Errorf("get test case: %w", err)
	}
	return t, nil
}

func (s *PostgresTestCaseStore) List(ctx context.Context, projectID string) ([]TestCase, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, status, gherkin FROM test_cases WHERE project_id = $1 ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list test cases: %w", err)
	}
	defer rows.Close()

	var out []TestCase
	for rows.Next() {
		var t TestCase
		if err := rows.Scan(&t.ID, &t.Description, &t.Status, &t.Gherkin); err != nil {
			return nil, fmt.Errorf("scan test case: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PostgresTestCaseStore) Delete(ctx context.Context, projectID, id string) error {
	return deleteRow(ctx, s.db, "test_cases", projectID, id)
}

type PostgresRiskStore struct {
	db *sql.DB
}

func NewPostgresRiskStore(db *sql.DB) *PostgresRiskStore {
	return &PostgresRiskStore{db: db}
}

func (s *PostgresRiskStore) Save(ctx context.Context, projectID string, r Risk) error {
	query := `
		INSERT INTO risks (project_id, id, description, probability, impact, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (project_id, id) DO UPDATE SET
			description = EXCLUDED.description,
			probability = EXCLUDED.probability,
			impact = EXCLUDED.impact,
			status = EXCLUDED.status
	`
	if _, err := s.db.ExecContext(ctx, query, projectID, r.ID, r.Description, r.Probability, r.Impact, r.Status); err != nil {
		return fmt.Errorf("save risk: %w", err)
	}
	return nil
}

func (s *PostgresRiskStore) Get(ctx context.Context, projectID, id string) (Risk, error) {
	var r Risk
	err := s.db.QueryRowContext(ctx,
		`SELECT id, description, probability, impact, status FROM risks WHERE project_id = $1 AND id = $2`,
		projectID, id,
	).Scan(&r.ID, &r.Description, &r.Probability, &r.Impact, &r.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return Risk{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Risk{}, fmt.Errorf("get risk: %w", err)
	}
	return r, nil
}

func (s *PostgresRiskStore) List(ctx context.Context, projectID string) ([]Risk, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, probability, impact, status FROM risks WHERE project_id = $1 ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	defer rows.Close()

	var out []Risk
	for rows.Next() {
		var r Risk
		if err := rows.Scan(&r.ID, &r.Description, &r.Probability, &r.Impact, &r.Status); err != nil {
			return nil, fmt.Errorf("scan risk: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresRiskStore) Delete(ctx context.Context, projectID, id string) error {
	return deleteRow(ctx, s.db, "risks", projectID, id)
}

type PostgresConfigurationItemStore struct {
	db *sql.DB
}

func NewPostgresConfigurationItemStore(db *sql.DB) *PostgresConfigurationItemStore {
	return &PostgresConfigurationItemStore{db: db}
}

func (s *PostgresConfigurationItemStore) Save(ctx context.Context, projectID string, c ConfigurationItem) error {
	query := `
		INSERT INTO configuration_items (project_id, id, name, type, version, status, depends_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (project_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			version = EXCLUDED.version,
			status = EXCLUDED.status,
			depends_on = EXCLUDED.depends_on
	`
	if _, err := s.db.ExecContext(ctx, query,
		projectID, c.ID, c.Name, c.Type, c.Version, c.Status, pq.Array(c.DependsOn),
	); err != nil {
		return fmt.Errorf("save configuration item: %w", err)
	}
	return nil
}

func (s *PostgresConfigurationItemStore) Get(ctx context.Context, projectID, id string) (ConfigurationItem, error) {
	var c ConfigurationItem
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, type, version, status, depends_on FROM configuration_items WHERE project_id = $1 AND id = $2`,
		projectID, id,
	).Scan(&c.ID, &c.Name, &c.Type, &c.Version, &c.Status, pq.Array(&c.DependsOn))
	if errors.Is(err, sql.ErrNoRows) {
		return ConfigurationItem{}, sentinel.ErrNotFound
	}
	if err != nil {
		return ConfigurationItem{}, fmt.Errorf("get configuration item: %w", err)
	}
	return c, nil
}

func (s *PostgresConfigurationItemStore) List(ctx context.Context, projectID string) ([]ConfigurationItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, type, version, status, depends_on FROM configuration_items WHERE project_id = $1 ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list configuration items: %w", err)
	}
	defer rows.Close()

	var out []ConfigurationItem
	for rows.Next() {
		var c ConfigurationItem
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Version, &c.Status, pq.Array(&c.DependsOn)); err != nil {
			return nil, fmt.Errorf("scan configuration item: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresConfigurationItemStore) Delete(ctx context.Context, projectID, id string) error {
	return deleteRow(ctx, s.db, "configuration_items", projectID, id)
}

type PostgresLinkStore struct {
	db *sql.DB
}

func NewPostgresLinkStore(db *sql.DB) *PostgresLinkStore {
	return &PostgresLinkStore{db: db}
}

func (s *PostgresLinkStore) Put(ctx context.Context, projectID string, link TraceLink) error {
	payload, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("marshal link: %w", err)
	}
	query := `
		INSERT INTO trace_links (project_id, requirement_id, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (project_id, requirement_id) DO UPDATE SET payload = EXCLUDED.payload
	`
	if _, err := s.db.ExecContext(ctx, query, projectID, link.RequirementID, payload); err != nil {
		return fmt.Errorf("put link: %w", err)
	}
	return nil
}

func (s *PostgresLinkStore) Get(ctx context.Context, projectID, requirementID string) (TraceLink, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM trace_links WHERE project_id = $1 AND requirement_id = $2`,
		projectID, requirementID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return TraceLink{}, sentinel.ErrNotFound
	}
	if err != nil {
		return TraceLink{}, fmt.Errorf("get link: %w", err)
	}
	var link TraceLink
	if err := json.Unmarshal(payload, &link); err != nil {
		return TraceLink{}, fmt.Errorf("unmarshal link: %w", err)
	}
	return link, nil
}

func (s *PostgresLinkStore) List(ctx context.Context, projectID string) ([]TraceLink, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM trace_links WHERE project_id = $1 ORDER BY requirement_id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	var out []TraceLink
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		var link TraceLink
		if err := json.Unmarshal(payload, &link); err != nil {
			return nil, fmt.Errorf("unmarshal link: %w", err)
		}
		out = append(out, link)
	}
	return out, rows.Err()
}

func (s *PostgresLinkStore) Delete(ctx context.Context, projectID, requirementID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM trace_links WHERE project_id = $1 AND requirement_id = $2`,
		projectID, requirementID,
	)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type PostgresDocumentStore struct {
	db *sql.DB
}

func NewPostgresDocumentStore(db *sql.DB) *PostgresDocumentStore {
	return &PostgresDocumentStore{db: db}
}

func (s *PostgresDocumentStore) Save(ctx context.Context, projectID string, d Document) error {
	sections, err := json.Marshal(d.Sections)
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	query := `
		INSERT INTO documents (project_id, id, title, sections)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (project_id, id) DO UPDATE SET
			title = EXCLUDED.title,
			sections = EXCLUDED.sections
	`
	if _, err := s.db.ExecContext(ctx, query, projectID, d.ID, d.Title, sections); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *PostgresDocumentStore) Get(ctx context.Context, projectID, id string) (Document, error) {
	var d Document
	var sections []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, sections FROM documents WHERE project_id = $1 AND id = $2`,
		projectID, id,
	).Scan(&d.ID, &d.Title, &sections)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("get document: %w", err)
	}
	if err := json.Unmarshal(sections, &d.Sections); err != nil {
		return Document{}, fmt.Errorf("unmarshal sections: %w", err)
	}
	return d, nil
}

func (s *PostgresDocumentStore) List(ctx context.Context, projectID string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, sections FROM documents WHERE project_id = $1 ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		var sections []byte
		if err := rows.Scan(&d.ID, &d.Title, &sections); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if err := json.Unmarshal(sections, &d.Sections); err != nil {
			return nil, fmt.Errorf("unmarshal sections: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PostgresDocumentStore) Delete(ctx context.Context, projectID, id string) error {
	return deleteRow(ctx, s.db, "documents", projectID, id)
}

type PostgresProcessAssetStore struct {
	db *sql.DB
}

func NewPostgresProcessAssetStore(db *sql.DB) *PostgresProcessAssetStore {
	return &PostgresProcessAssetStore{db: db}
}

func (s *PostgresProcessAssetStore) Save(ctx context.Context, projectID string, a ProcessAsset) error {
	query := `
		INSERT INTO process_assets (project_id, id, name, kind, body, usage_count, generated_items)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (project_id, id) DO UPDATE SET
			name = EXCLUDED.name,
			kind = EXCLUDED.kind,
			body = EXCLUDED.body,
			usage_count = EXCLUDED.usage_count,
			generated_items = EXCLUDED.generated_items
	`
	if _, err := s.db.ExecContext(ctx, query,
		projectID, a.ID, a.Name, a.Kind, a.Body, a.UsageCount, pq.Array(a.GeneratedItems),
	); err != nil {
		return fmt.Errorf("save process asset: %w", err)
	}
	return nil
}

func (s *PostgresProcessAssetStore) Get(ctx context.Context, projectID, id string) (ProcessAsset, error) {
	var a ProcessAsset
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, kind, body, usage_count, generated_items FROM process_assets WHERE project_id = $1 AND id = $2`,
		projectID, id,
	).Scan(&a.ID, &a.Name, &a.Kind, &a.Body, &a.UsageCount, pq.Array(&a.GeneratedItems))
	if errors.Is(err, sql.ErrNoRows) {
		return ProcessAsset{}, sentinel.ErrNotFound
	}
	if err != nil {
		return ProcessAsset{}, fmt.Errorf("get process asset: %w", err)
	}
	return a, nil
}

func (s *PostgresProcessAssetStore) List(ctx context.Context, projectID string) ([]ProcessAsset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, body, usage_count, generated_items FROM process_assets WHERE project_id = $1 ORDER BY id`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list process assets: %w", err)
	}
	defer rows.Close()

	var out []ProcessAsset
	for rows.Next() {
		var a ProcessAsset
		if err := rows.Scan(&a.ID, &a.Name, &a.Kind, &a.Body, &a.UsageCount, pq.Array(&a.GeneratedItems)); err != nil {
			return nil, fmt.Errorf("scan process asset: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresProcessAssetStore) Delete(ctx context.Context, projectID, id string) error {
	return deleteRow(ctx, s.db, "process_assets", projectID, id)
}

// NewPostgresStores wires a full SQL-backed store set over one connection pool.
func NewPostgresStores(db *sql.DB) Stores {
	return Stores{
		Requirements: NewPostgresRequirementStore(db),
		TestCases:    NewPostgresTestCaseStore(db),
		Risks:        NewPostgresRiskStore(db),
		Items:        NewPostgresConfigurationItemStore(db),
		Links:        NewPostgresLinkStore(db),
		Documents:    NewPostgresDocumentStore(db),
		Assets:       NewPostgresProcessAssetStore(db),
	}
}

func deleteRow(ctx context.Context, db *sql.DB, table, projectID, id string) error {
	res, err := db.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1 AND id = $2`, table),
		projectID, id,
	)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
