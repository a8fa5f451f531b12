package audit

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists the audit trail. Appends are idempotent on event id
// so a replayed worker batch cannot duplicate entries.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Schema holds the DDL for the audit trail table.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_events (
	id UUID PRIMARY KEY,
	ts TIMESTAMPTZ NOT NULL,
	project_id TEXT NOT NULL,
	entity_kind TEXT NOT NULL DEFAULT '',
	entity_id TEXT NOT NULL DEFAULT '',
	action TEXT NOT NULL,
	actor TEXT NOT NULL DEFAULT '',
	detail TEXT NOT NULL DEFAULT '',
	request_id TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS audit_events_project_ts ON audit_events (project_id, ts);
`

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply audit schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	query := `
		INSERT INTO audit_events (id, ts, project_id, entity_kind, entity_id, action, actor, detail, request_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := s.db.ExecContext(ctx, query,
		event.ID, event.Timestamp, event.ProjectID, event.EntityKind, event.EntityID,
		event.Action, event.Actor, event.Detail, event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByProject(ctx context.Context, projectID string) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ts, project_id, entity_kind, entity_id, action, actor, detail, request_id
		FROM audit_events WHERE project_id = $1 ORDER BY ts
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.ProjectID, &e.EntityKind, &e.EntityID,
			&e.Action, &e.Actor, &e.Detail, &e.RequestID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
