// Package entities contains core business entities.
package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WorkItemStatus enumerates work item lifecycle states.
type WorkItemStatus string

const (
	// StatusPending marks a newly created work item.
	StatusPending WorkItemStatus = "Pending"
	// StatusInProgress marks a work item being worked on.
	StatusInProgress WorkItemStatus = "InProgress"
	// StatusCompleted marks a finished work item.
	StatusCompleted WorkItemStatus = "Completed"
)

// Valid reports whether the status is a known value.
func (s WorkItemStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// WorkItemPriority enumerates work item priorities. Immutable after creation.
type WorkItemPriority string

const (
	// PriorityLow is the lowest priority.
	PriorityLow WorkItemPriority = "Low"
	// PriorityMedium is the default mid priority.
	PriorityMedium WorkItemPriority = "Medium"
	// PriorityHigh is capped per project by creation rules.
	PriorityHigh WorkItemPriority = "High"
)

// Valid reports whether the priority is a known value.
func (p WorkItemPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

const dueDateLayout = "2006-01-02"

// WorkItem is a unit of work within a project. It owns its comments and an
// append-only history; every mutation records what changed and by whom.
type WorkItem struct {
	Entity
	Title       string
	Description string
	DueDate     time.Time
	Status      WorkItemStatus
	Priority    WorkItemPriority
	ProjectID   uuid.UUID
	CreatedBy   uuid.UUID
	Comments    []WorkItemComment
	History     []WorkItemHistory
}

// NewWorkItem constructs a pending work item and records the creation entry.
// Validation is the caller's responsibility.
func NewWorkItem(id uuid.UUID, title, description string, dueDate time.Time,
	priority WorkItemPriority, projectID, createdBy uuid.UUID, now time.Time) *WorkItem {
	wi := &WorkItem{
		Entity:      NewEntity(id, now),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      StatusPending,
		Priority:    priority,
		ProjectID:   projectID,
		CreatedBy:   createdBy,
	}
	wi.recordHistory("Work item created", nil, now)
	return wi
}

// Equal reports identity equality with nil-safe semantics.
func (wi *WorkItem) Equal(other *WorkItem) bool {
	if wi == nil || other == nil {
		return wi == other
	}
	return wi.sameIdentity(&other.Entity)
}

// UpdateStatus sets a new status and records the transition. A same-status
// transition is a complete no-op: no history entry is appended. Returns the
// appended entry, or nil when nothing changed.
func (wi *WorkItem) UpdateStatus(newStatus WorkItemStatus, modifiedBy uuid.UUID, now time.Time) *WorkItemHistory {
	if wi.Status == newStatus {
		return nil
	}
	wi.Status = newStatus
	return wi.recordHistory(fmt.Sprintf("Status changed to %s", newStatus), &modifiedBy, now)
}

// UpdateDetails applies title/description/due date edits, updating only the
// fields that differ. When at least one differs a single combined history
// entry is recorded. Returns the appended entry, or nil when nothing changed.
func (wi *WorkItem) UpdateDetails(title, description string, dueDate time.Time, modifiedBy uuid.UUID, now time.Time) *WorkItemHistory {
	changes := make([]string, 0, 3)

	if wi.Title != title {
		changes = append(changes, fmt.Sprintf("Title changed from '%s' to '%s'", wi.Title, title))
		wi.Title = title
	}
	if wi.Description != description {
		changes = append(changes, "Description updated")
		wi.Description = description
	}
	if !wi.DueDate.Equal(dueDate) {
		changes = append(changes, fmt.Sprintf("Due date changed from %s to %s",
			wi.DueDate.Format(dueDateLayout), dueDate.Format(dueDateLayout)))
		wi.DueDate = dueDate
	}

	if len(changes) == 0 {
		return nil
	}
	return wi.recordHistory(strings.Join(changes, ", "), &modifiedBy, now)
}

// AddComment appends a fresh comment and records it in the history.
// Returns the comment just added together with its history entry.
func (wi *WorkItem) AddComment(content string, authorID uuid.UUID, now time.Time) (*WorkItemComment, *WorkItemHistory) {
	comment := NewWorkItemComment(uuid.New(), content, authorID, wi.ID, now)
	wi.Comments = append(wi.Comments, *comment)
	history := wi.recordHistory(fmt.Sprintf("Comment added: %s", content), &authorID, now)
	return comment, history
}

// recordHistory appends an entry; a nil modifiedBy attributes it to the
// work item's creator.
func (wi *WorkItem) recordHistory(action string, modifiedBy *uuid.UUID, now time.Time) *WorkItemHistory {
	by := wi.CreatedBy
	if modifiedBy != nil {
		by = *modifiedBy
	}
	entry := NewWorkItemHistory(uuid.New(), action, now.UTC(), by, wi.ID)
	wi.History = append(wi.History, *entry)
	return entry
}
