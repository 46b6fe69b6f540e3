package service

import (
	"context"
	"errors"

	"checklist_api/internal/models"
	"checklist_api/internal/repository"
)

var (
	ErrChecklistNotFound = errors.New("checklist not found")
	ErrItemNotFound      = errors.New("checklist item not found")
)

type ChecklistService struct {
	repo repository.ChecklistRepo
}

func NewChecklistService(repo repository.ChecklistRepo) *ChecklistService {
	return &ChecklistService{repo: repo}
}

func (s *ChecklistService) List(ctx context.Context) ([]models.Checklist, error) {
	return s.repo.List(ctx)
}

func (s *ChecklistService) Create(ctx context.Context, name string) (int64, error) {
	return s.repo.Create(ctx, name)
}

// Delete removes the checklist; zero affected rows means it never existed.
func (s *ChecklistService) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrChecklistNotFound
	}
	return nil
}
