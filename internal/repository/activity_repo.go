package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"checklist_api/internal/models"

	"github.com/google/uuid"
)

type ActivitySQL struct {
	db *sql.DB
}

func NewActivitySQL(db *sql.DB) *ActivitySQL { return &ActivitySQL{db: db} }

var _ ActivityRepo = (*ActivitySQL)(nil)

const (
	insertActivitySQL = `INSERT INTO activity_events (id, occurred_at, type, username, message, meta) VALUES (?, ?, ?, ?, ?, ?)`
	selectActivitySQL = `SELECT id, occurred_at, type, username, message, meta FROM activity_events`
)

// Append inserts a new event. Missing EventID or OccurredAt are filled in.
func (r *ActivitySQL) Append(ctx context.Context, e models.ActivityEvent) error {
	if e.EventID == "" {
		// v7 ids sort by creation time, which breaks occurred_at ties.
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate activity id: %w", err)
		}
		e.EventID = id.String()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	// DATETIME(6) keeps microseconds
	e.OccurredAt = e.OccurredAt.UTC().Truncate(time.Microsecond)

	var metaPtr *string
	if e.Metadata != nil {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("marshal activity metadata: %w", err)
		}
		s := string(b)
		metaPtr = &s
	}

	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		e.EventID,
		e.OccurredAt,
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Username,
		e.Description,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

// List returns events filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *ActivitySQL) List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := selectActivitySQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select activity events: %w", err)
	}
	defer rows.Close()

	out := make([]models.ActivityEvent, 0, 64)
	for rows.Next() {
		var ev models.ActivityEvent
		var metaStr sql.NullString
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &ev.Type, &ev.Username, &ev.Description, &metaStr); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		ev.OccurredAt = ev.OccurredAt.UTC()

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				ev.Metadata = v
			} else {
				ev.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity events: %w", err)
	}
	return out, nil
}
