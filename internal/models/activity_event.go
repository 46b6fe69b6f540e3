package models

import "time"

const (
	ActivityUserRegistered   = "USER_REGISTERED"
	ActivityChecklistCreated = "CHECKLIST_CREATED"
	ActivityChecklistDeleted = "CHECKLIST_DELETED"
	ActivityItemCreated      = "ITEM_CREATED"
	ActivityItemRenamed      = "ITEM_RENAMED"
	ActivityItemDeleted      = "ITEM_DELETED"
)

// ActivityEvent records one successful mutation.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`               // one of the Activity* constants
	Username    string    `json:"username,omitempty"` // actor, empty for anonymous routes
	Description string    `json:"description"`        // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
