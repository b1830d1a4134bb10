// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// WorkItemComment is a comment on a work item. Immutable after creation.
type WorkItemComment struct {
	Entity
	Content    string
	AuthorID   uuid.UUID
	WorkItemID uuid.UUID
}

// NewWorkItemComment constructs a comment stamped at the given time.
func NewWorkItemComment(id uuid.UUID, content string, authorID, workItemID uuid.UUID, now time.Time) *WorkItemComment {
	return &WorkItemComment{
		Entity:     NewEntity(id, now),
		Content:    content,
		AuthorID:   authorID,
		WorkItemID: workItemID,
	}
}

// Equal reports identity equality with nil-safe semantics.
func (c *WorkItemComment) Equal(other *WorkItemComment) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.sameIdentity(&other.Entity)
}
