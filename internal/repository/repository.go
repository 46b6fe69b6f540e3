package repository

import (
	"context"
	"database/sql"
	"time"

	"checklist_api/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type ChecklistRepo interface {
	List(ctx context.Context) ([]models.Checklist, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, name string) (int64, error)
	// Delete returns the number of rows removed.
	Delete(ctx context.Context, id int64) (int64, error)
}

type ItemRepo interface {
	ListByChecklist(ctx context.Context, checklistID int64) ([]models.ChecklistItem, error)
	Get(ctx context.Context, checklistID, itemID int64) (*models.ChecklistItem, error)
	Create(ctx context.Context, checklistID int64, name string) (int64, error)
	// Rename and Delete are scoped by both ids and return the affected-row count.
	Rename(ctx context.Context, checklistID, itemID int64, name string) (int64, error)
	Delete(ctx context.Context, checklistID, itemID int64) (int64, error)
}

type ActivityRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Auth       Authorization
	Checklists ChecklistRepo
	Items      ItemRepo
	Activity   ActivityRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:       NewUserRepository(db),
		Checklists: NewChecklistSQL(db),
		Items:      NewItemSQL(db),
		Activity:   NewActivitySQL(db),
	}
}
