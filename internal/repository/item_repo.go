package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"checklist_api/internal/models"
)

type ItemSQL struct {
	db *sql.DB
}

func NewItemSQL(db *sql.DB) *ItemSQL {
	return &ItemSQL{db: db}
}

var _ ItemRepo = (*ItemSQL)(nil)

const (
	selectItemsByChecklistSQL = `SELECT id, checklist_id, name FROM checklistitem WHERE checklist_id = ? ORDER BY id`
	selectItemSQL             = `SELECT id, checklist_id, name FROM checklistitem WHERE checklist_id = ? AND id = ?`
	insertItemSQL             = `INSERT INTO checklistitem (name, checklist_id) VALUES (?, ?)`
	updateItemNameSQL         = `UPDATE checklistitem SET name = ? WHERE id = ? AND checklist_id = ?`
	deleteItemSQL             = `DELETE FROM checklistitem WHERE id = ? AND checklist_id = ?`
)

func (r *ItemSQL) ListByChecklist(ctx context.Context, checklistID int64) ([]models.ChecklistItem, error) {
	rows, err := r.db.QueryContext(ctx, selectItemsByChecklistSQL, checklistID)
	if err != nil {
		return nil, fmt.Errorf("select items of checklist %d: %w", checklistID, err)
	}
	defer rows.Close()

	out := make([]models.ChecklistItem, 0, 16)
	for rows.Next() {
		var it models.ChecklistItem
		if err := rows.Scan(&it.ID, &it.ChecklistID, &it.Name); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items of checklist %d: %w", checklistID, err)
	}
	return out, nil
}

// Get fetches one item scoped to its checklist. Returns (nil, nil) if not found.
func (r *ItemSQL) Get(ctx context.Context, checklistID, itemID int64) (*models.ChecklistItem, error) {
	var it models.ChecklistItem
	err := r.db.QueryRowContext(ctx, selectItemSQL, checklistID, itemID).Scan(&it.ID, &it.ChecklistID, &it.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select item %d of checklist %d: %w", itemID, checklistID, err)
	}
	return &it, nil
}

func (r *ItemSQL) Create(ctx context.Context, checklistID int64, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertItemSQL, name, checklistID)
	if err != nil {
		return 0, fmt.Errorf("insert item into checklist %d: %w", checklistID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for item: %w", err)
	}
	return id, nil
}

func (r *ItemSQL) Rename(ctx context.Context, checklistID, itemID int64, name string) (int64, error) {
	return r.execAffected(ctx, "update", updateItemNameSQL, checklistID, itemID, name, itemID, checklistID)
}

func (r *ItemSQL) Delete(ctx context.Context, checklistID, itemID int64) (int64, error) {
	return r.execAffected(ctx, "delete", deleteItemSQL, checklistID, itemID, itemID, checklistID)
}

func (r *ItemSQL) execAffected(ctx context.Context, action, query string, checklistID, itemID int64, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%s item %d of checklist %d: %w", action, itemID, checklistID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for item %d: %w", itemID, err)
	}
	return n, nil
}
