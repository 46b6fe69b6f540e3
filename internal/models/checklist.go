package models

// Checklist is a named collection of items.
type Checklist struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ChecklistItem is a named entry belonging to exactly one Checklist.
type ChecklistItem struct {
	ID          int64  `json:"id"`
	ChecklistID int64  `json:"checklistId"`
	Name        string `json:"name"`
}
