package service

import (
	"context"

	"checklist_api/internal/models"
	"checklist_api/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) (int64, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Checklists exposes checklist create/list/delete.
type Checklists interface {
	List(ctx context.Context) ([]models.Checklist, error)
	Create(ctx context.Context, name string) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// Items exposes item operations, always scoped by checklist id.
type Items interface {
	List(ctx context.Context, checklistID int64) ([]models.ChecklistItem, error)
	Get(ctx context.Context, checklistID, itemID int64) (models.ChecklistItem, error)
	Create(ctx context.Context, checklistID int64, name string) (int64, error)
	Rename(ctx context.Context, checklistID, itemID int64, name string) error
	Delete(ctx context.Context, checklistID, itemID int64) error
}

// ActivityLog exposes the append-only mutation log with filtering access.
type ActivityLog interface {
	Record(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, f ActivityFilter) ([]models.ActivityEvent, error)
}

type SignUpInput struct {
	Username string
	Password string
	Email    string
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Checklists  Checklists
	Items       Items
	ActivityLog ActivityLog
}

func NewService(repos *repository.Repository, tokens *TokenManager) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, tokens),
		Checklists:    NewChecklistService(repos.Checklists),
		Items:         NewItemService(repos.Checklists, repos.Items),
		ActivityLog:   NewActivityService(repos.Activity),
	}
}
