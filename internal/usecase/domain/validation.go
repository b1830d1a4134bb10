package domain

import (
	"time"

	"github.com/google/uuid"

	"task-management-service/internal/entities"
)

// CreateProjectInput carries plain project creation data.
type CreateProjectInput struct {
	Name        string
	Description string
	OwnerID     uuid.UUID
}

// CreateWorkItemInput carries plain work item creation data.
type CreateWorkItemInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    entities.WorkItemPriority
	ProjectID   uuid.UUID
	CreatedBy   uuid.UUID
}

// UpdateWorkItemInput is a patch: nil fields are left untouched.
type UpdateWorkItemInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *entities.WorkItemStatus
}

// AddCommentInput carries plain comment data.
type AddCommentInput struct {
	Content  string
	AuthorID uuid.UUID
}

const (
	maxProjectNameLen         = 100
	maxProjectDescriptionLen  = 500
	maxWorkItemTitleLen       = 200
	maxWorkItemDescriptionLen = 1000
)

// violations collects every failed field rule before any repository access.
type violations struct {
	fields []entities.FieldViolation
}

func (v *violations) add(field, message string) {
	v.fields = append(v.fields, entities.FieldViolation{Field: field, Message: message})
}

func (v *violations) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &entities.ValidationError{Violations: v.fields}
}

func validateCreateProject(in CreateProjectInput) error {
	var v violations

	if in.Name == "" {
		v.add("name", "Project name is required")
	} else if len(in.Name) > maxProjectNameLen {
		v.add("name", "Project name must not exceed 100 characters")
	}

	if len(in.Description) > maxProjectDescriptionLen {
		v.add("description", "Description must not exceed 500 characters")
	}

	if in.OwnerID == uuid.Nil {
		v.add("owner_id", "Owner ID is required")
	}

	return v.err()
}

func validateCreateWorkItem(in CreateWorkItemInput, now time.Time) error {
	var v violations

	if in.Title == "" {
		v.add("title", "Title is required")
	} else if len(in.Title) > maxWorkItemTitleLen {
		v.add("title", "Title must not exceed 200 characters")
	}

	if len(in.Description) > maxWorkItemDescriptionLen {
		v.add("description", "Description must not exceed 1000 characters")
	}

	if in.DueDate.IsZero() {
		v.add("due_date", "Due date is required")
	} else if !in.DueDate.After(now) {
		v.add("due_date", "Due date must be in the future")
	}

	if !in.Priority.Valid() {
		v.add("priority", "Invalid priority value")
	}

	if in.ProjectID == uuid.Nil {
		v.add("project_id", "Project ID is required")
	}

	if in.CreatedBy == uuid.Nil {
		v.add("created_by", "Creator ID is required")
	}

	return v.err()
}

func validateUpdateWorkItem(in UpdateWorkItemInput, now time.Time) error {
	var v violations

	if in.Title != nil && len(*in.Title) > maxWorkItemTitleLen {
		v.add("title", "Title must not exceed 200 characters")
	}

	if in.Description != nil && len(*in.Description) > maxWorkItemDescriptionLen {
		v.add("description", "Description must not exceed 1000 characters")
	}

	if in.DueDate != nil && !in.DueDate.After(now) {
		v.add("due_date", "Due date must be in the future")
	}

	if in.Status != nil && !in.Status.Valid() {
		v.add("status", "Invalid status value")
	}

	return v.err()
}
