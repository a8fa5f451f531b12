package project

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema holds the DDL for the SQL-backed stores. Applied idempotently at
// startup and by the integration tests.
const Schema = `
CREATE TABLE IF NOT EXISTS requirements (
	project_id TEXT NOT NULL,
	id TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	created_by TEXT NOT NULL DEFAULT 'User',
	updated_by TEXT NOT NULL DEFAULT 'User',
	PRIMARY KEY (project_id, id)
);

CREATE TABLE IF NOT EXISTS test_cases (
	project_id TEXT NOT NULL,
	id TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	gherkin TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (project_id, id)
);

CREATE TABLE IF NOT EXISTS risks (
	project_id TEXT NOT NULL,
	id TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	probability TEXT NOT NULL DEFAULT '',
	impact TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	PRIMARY KEY (project_id, id)
);

CREATE TABLE IF NOT EXISTS configuration_items (
	project_id TEXT NOT NULL,
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	version TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	depends_on TEXT[] NOT NULL DEFAULT '{}',
	PRIMARY KEY (project_id, id)
);

CREATE TABLE IF NOT EXISTS trace_links (
	project_id TEXT NOT NULL,
	requirement_id TEXT NOT NULL,
	payload JSONB NOT NULL,
	PRIMARY KEY (project_id, requirement_id)
);

CREATE TABLE IF NOT EXISTS documents (
	project_id TEXT NOT NULL,
	id TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	sections JSONB NOT NULL DEFAULT '[]',
	PRIMARY KEY (project_id, id)
);

CREATE TABLE IF NOT EXISTS process_assets (
	project_id TEXT NOT NULL,
	id TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	kind TEXT NOT NULL,
	body TEXT NOT NULL DEFAULT '',
	usage_count INTEGER NOT NULL DEFAULT 0,
	generated_items TEXT[] NOT NULL DEFAULT '{}',
	PRIMARY KEY (project_id, id)
);
`

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply project schema: %w", err)
	}
	return nil
}
