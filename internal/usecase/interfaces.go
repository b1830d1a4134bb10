package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"task-management-service/internal/entities"
	"task-management-service/internal/usecase/domain"
)

// ProjectUsecaseInterface abstracts project operations for the delivery layer.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, in domain.CreateProjectInput) (*entities.Project, error)
	ProjectsByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.ProjectSummary, error)
	ProjectDetails(ctx context.Context, projectID uuid.UUID) (*entities.Project, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}

// WorkItemUsecaseInterface abstracts work item operations.
type WorkItemUsecaseInterface interface {
	CreateWorkItem(ctx context.Context, in domain.CreateWorkItemInput) (*entities.WorkItem, error)
	WorkItemDetails(ctx context.Context, workItemID uuid.UUID) (*entities.WorkItem, error)
	UpdateWorkItem(ctx context.Context, workItemID uuid.UUID, in domain.UpdateWorkItemInput, modifiedBy uuid.UUID) (*entities.WorkItem, error)
	DeleteWorkItem(ctx context.Context, workItemID uuid.UUID) error
	AddComment(ctx context.Context, workItemID uuid.UUID, in domain.AddCommentInput) (*entities.WorkItemComment, error)
}

// ReportUsecaseInterface abstracts performance reporting.
type ReportUsecaseInterface interface {
	PerformanceReport(ctx context.Context, fromDate, toDate time.Time) (*entities.PerformanceReport, error)
	PerformanceReportFor(ctx context.Context, requesterID uuid.UUID, fromDate, toDate time.Time) (*entities.PerformanceReport, error)
}
