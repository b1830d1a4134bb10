// Package api defines the transport request/response shapes.
package api

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectRequest is the body for project creation.
type CreateProjectRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

// ProjectResponse is the flat project projection.
type ProjectResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OwnerID       uuid.UUID `json:"owner_id"`
	WorkItemCount int       `json:"work_item_count"`
}

// ProjectDetailsResponse is the project projection including work items.
type ProjectDetailsResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	WorkItems   []WorkItemResponse `json:"work_items"`
}

// CreateWorkItemRequest is the body for work item creation.
type CreateWorkItemRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Priority    string    `json:"priority"`
	ProjectID   uuid.UUID `json:"project_id"`
	CreatedBy   uuid.UUID `json:"created_by"`
}

// UpdateWorkItemRequest is the patch body for work item updates. Absent
// fields are left untouched.
type UpdateWorkItemRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// WorkItemResponse is the flat work item projection.
type WorkItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	ProjectID   uuid.UUID `json:"project_id"`
	CreatedBy   uuid.UUID `json:"created_by"`
}

// WorkItemDetailsResponse includes comments and history.
type WorkItemDetailsResponse struct {
	WorkItemResponse
	Comments []CommentResponse `json:"comments"`
	History  []HistoryResponse `json:"history"`
}

// AddCommentRequest is the body for commenting on a work item.
type AddCommentRequest struct {
	Content  string    `json:"content"`
	AuthorID uuid.UUID `json:"author_id"`
}

// CommentResponse is the comment projection.
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse is the history entry projection.
type HistoryResponse struct {
	ID         uuid.UUID `json:"id"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
	ModifiedBy uuid.UUID `json:"modified_by"`
}

// PerformanceReportResponse is the report projection.
type PerformanceReportResponse struct {
	TotalCompleted          int       `json:"total_completed"`
	AverageCompletedPerUser float64   `json:"average_completed_per_user"`
	FromDate                time.Time `json:"from_date"`
	ToDate                  time.Time `json:"to_date"`
}

// ErrorResponse is the error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a machine code, a human message and, for validation
// failures, every violated field.
type ErrorBody struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Fields  []FieldViolation `json:"fields,omitempty"`
}

// FieldViolation mirrors a single failed request-field rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error codes used in ErrorResponse.
const (
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeDomainRule   = "DOMAIN_RULE"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL"
)
