package service

import (
	"context"

	"checklist_api/internal/models"
	"checklist_api/internal/repository"
)

type ItemService struct {
	checklists repository.ChecklistRepo
	items      repository.ItemRepo
}

func NewItemService(checklists repository.ChecklistRepo, items repository.ItemRepo) *ItemService {
	return &ItemService{checklists: checklists, items: items}
}

// requireChecklist re-checks existence on every call; nothing is cached.
func (s *ItemService) requireChecklist(ctx context.Context, checklistID int64) error {
	ok, err := s.checklists.Exists(ctx, checklistID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrChecklistNotFound
	}
	return nil
}

func (s *ItemService) List(ctx context.Context, checklistID int64) ([]models.ChecklistItem, error) {
	if err := s.requireChecklist(ctx, checklistID); err != nil {
		return nil, err
	}
	return s.items.ListByChecklist(ctx, checklistID)
}

func (s *ItemService) Get(ctx context.Context, checklistID, itemID int64) (models.ChecklistItem, error) {
	if err := s.requireChecklist(ctx, checklistID); err != nil {
		return models.ChecklistItem{}, err
	}
	it, err := s.items.Get(ctx, checklistID, itemID)
	if err != nil {
		return models.ChecklistItem{}, err
	}
	if it == nil {
		return models.ChecklistItem{}, ErrItemNotFound
	}
	return *it, nil
}

// Create inserts an item after confirming the parent checklist exists.
func (s *ItemService) Create(ctx context.Context, checklistID int64, name string) (int64, error) {
	if err := s.requireChecklist(ctx, checklistID); err != nil {
		return 0, err
	}
	return s.items.Create(ctx, checklistID, name)
}

func (s *ItemService) Rename(ctx context.Context, checklistID, itemID int64, name string) error {
	n, err := s.items.Rename(ctx, checklistID, itemID, name)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (s *ItemService) Delete(ctx context.Context, checklistID, itemID int64) error {
	n, err := s.items.Delete(ctx, checklistID, itemID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}
