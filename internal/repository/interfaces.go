// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/google/uuid"

	"task-management-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProjectInterface exposes project aggregate persistence.
type ProjectInterface interface {
	GetProject(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	GetProjectWithWorkItems(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	GetProjectsByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.ProjectSummary, error)
	InsertProject(ctx context.Context, project *entities.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// WorkItemInterface exposes work item persistence including owned
// comments and history rows.
type WorkItemInterface interface {
	GetWorkItem(ctx context.Context, id uuid.UUID) (*entities.WorkItem, error)
	GetWorkItemWithDetails(ctx context.Context, id uuid.UUID) (*entities.WorkItem, error)
	AllWorkItems(ctx context.Context) ([]entities.WorkItem, error)
	InsertWorkItem(ctx context.Context, item *entities.WorkItem) error
	UpdateWorkItem(ctx context.Context, item *entities.WorkItem) error
	DeleteWorkItem(ctx context.Context, id uuid.UUID) error
	AddComment(ctx context.Context, comment entities.WorkItemComment) error
	AddHistory(ctx context.Context, history entities.WorkItemHistory) error
}

// UserInterface exposes read-only user access.
type UserInterface interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	AllUsers(ctx context.Context) ([]entities.User, error)
}
