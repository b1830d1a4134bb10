// Package domain contains application services orchestrating domain logic by project.
package domain

import (
	"context"

	"github.com/google/uuid"

	"task-management-service/internal/entities"
)

// CreateProject validates the request and persists a fresh project.
func (u *Usecase) CreateProject(ctx context.Context, in CreateProjectInput) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateCreateProject(in); err != nil {
		return nil, err
	}

	project := entities.NewProject(uuid.New(), in.Name, in.Description, in.OwnerID, u.clock.Now())
	if err := u.repo.InsertProject(ctx, project); err != nil {
		return nil, err
	}

	u.log.Infow("project created", "project_id", project.ID, "owner_id", project.OwnerID)
	return project, nil
}

// ProjectsByOwner returns all projects of an owner with work item counts.
func (u *Usecase) ProjectsByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.ProjectSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetProjectsByOwner(ctx, ownerID)
}

// ProjectDetails returns a project with its work items populated.
func (u *Usecase) ProjectDetails(ctx context.Context, projectID uuid.UUID) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetProjectWithWorkItems(ctx, projectID)
}

// DeleteProject removes a project; blocked while any child work item is not
// completed.
func (u *Usecase) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	project, err := u.repo.GetProjectWithWorkItems(ctx, projectID)
	if err != nil {
		return err
	}

	for _, wi := range project.WorkItems {
		if wi.Status != entities.StatusCompleted {
			return entities.NewConflictError(
				"Cannot delete project with pending or in-progress work items. " +
					"Please complete or remove all work items first.")
		}
	}

	if err := u.repo.DeleteProject(ctx, project.ID); err != nil {
		return err
	}

	u.log.Infow("project deleted", "project_id", projectID)
	return nil
}
