// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// WorkItemHistory is a historical record of a change to a work item.
// Immutable after creation; appended only via the work item itself.
type WorkItemHistory struct {
	Entity
	Action     string
	Timestamp  time.Time
	ModifiedBy uuid.UUID
	WorkItemID uuid.UUID
}

// NewWorkItemHistory constructs a history entry.
func NewWorkItemHistory(id uuid.UUID, action string, timestamp time.Time, modifiedBy, workItemID uuid.UUID) *WorkItemHistory {
	return &WorkItemHistory{
		Entity:     NewEntity(id, timestamp),
		Action:     action,
		Timestamp:  timestamp,
		ModifiedBy: modifiedBy,
		WorkItemID: workItemID,
	}
}
