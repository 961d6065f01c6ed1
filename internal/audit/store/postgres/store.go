// Package postgres persists audit events to the audit_events table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"loandraft/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	const query = `
		INSERT INTO audit_events (id, occurred_at, request_id, table_name, action, detail, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.Timestamp,
		event.RequestID,
		event.Table,
		event.Action,
		event.Detail,
		[]byte(event.Payload),
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *Store) ListByAction(ctx context.Context, action string) ([]audit.Event, error) {
	const query = `
		SELECT id, occurred_at, request_id, table_name, action, detail, payload
		FROM audit_events
		WHERE action = $1
		ORDER BY occurred_at`
	rows, err := s.db.QueryContext(ctx, query, action)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var (
			event   audit.Event
			payload []byte
		)
		if err := rows.Scan(&event.ID, &event.Timestamp, &event.RequestID, &event.Table, &event.Action, &event.Detail, &payload); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Payload = payload
		events = append(events, event)
	}
	return events, rows.Err()
}
