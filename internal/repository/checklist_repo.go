package repository

import (
	"context"
	"database/sql"
	"fmt"

	"checklist_api/internal/models"
)

type ChecklistSQL struct {
	db *sql.DB
}

func NewChecklistSQL(db *sql.DB) *ChecklistSQL {
	return &ChecklistSQL{db: db}
}

var _ ChecklistRepo = (*ChecklistSQL)(nil)

const (
	selectChecklistsSQL      = `SELECT id, name FROM checklist ORDER BY id`
	selectChecklistExistsSQL = `SELECT 1 FROM checklist WHERE id = ?`
	insertChecklistSQL       = `INSERT INTO checklist (name) VALUES (?)`
	deleteChecklistSQL       = `DELETE FROM checklist WHERE id = ?`
)

// List returns every checklist ordered by id. An empty store yields an empty, non-nil slice.
func (r *ChecklistSQL) List(ctx context.Context) ([]models.Checklist, error) {
	rows, err := r.db.QueryContext(ctx, selectChecklistsSQL)
	if err != nil {
		return nil, fmt.Errorf("select checklists: %w", err)
	}
	defer rows.Close()

	out := make([]models.Checklist, 0, 16)
	for rows.Next() {
		var cl models.Checklist
		if err := rows.Scan(&cl.ID, &cl.Name); err != nil {
			return nil, fmt.Errorf("scan checklist: %w", err)
		}
		out = append(out, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checklists: %w", err)
	}
	return out, nil
}

// Exists reports whether a checklist with the given id is present.
func (r *ChecklistSQL) Exists(ctx context.Context, id int64) (bool, error) {
	rows, err := r.db.QueryContext(ctx, selectChecklistExistsSQL, id)
	if err != nil {
		return false, fmt.Errorf("select checklist %d: %w", id, err)
	}
	defer rows.Close()

	found := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("select checklist %d: %w", id, err)
	}
	return found, nil
}

func (r *ChecklistSQL) Create(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertChecklistSQL, name)
	if err != nil {
		return 0, fmt.Errorf("insert checklist: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for checklist: %w", err)
	}
	return id, nil
}

func (r *ChecklistSQL) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteChecklistSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete checklist %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for checklist %d: %w", id, err)
	}
	return n, nil
}
