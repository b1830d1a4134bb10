// Package domain contains application services orchestrating domain logic by work item.
package domain

import (
	"context"

	"github.com/google/uuid"

	"task-management-service/internal/entities"
)

// CreateWorkItem validates the request, runs the domain creation rules
// against the owning project and persists the new item. Shape validation
// always runs before any repository access so field errors take precedence
// over NotFound and domain rule failures.
func (u *Usecase) CreateWorkItem(ctx context.Context, in CreateWorkItemInput) (*entities.WorkItem, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	now := u.clock.Now()
	if err := validateCreateWorkItem(in, now); err != nil {
		return nil, err
	}

	project, err := u.repo.GetProjectWithWorkItems(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := u.validator.ValidateWorkItemCreation(project, in.Priority); err != nil {
		return nil, err
	}

	item := entities.NewWorkItem(uuid.New(), in.Title, in.Description, in.DueDate,
		in.Priority, in.ProjectID, in.CreatedBy, now)

	if err := project.AddWorkItem(item); err != nil {
		return nil, err
	}

	if err := u.repo.InsertWorkItem(ctx, item); err != nil {
		return nil, err
	}

	u.log.Infow("work item created", "work_item_id", item.ID, "project_id", in.ProjectID)
	return item, nil
}

// WorkItemDetails returns a work item with comments and history populated.
func (u *Usecase) WorkItemDetails(ctx context.Context, workItemID uuid.UUID) (*entities.WorkItem, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetWorkItemWithDetails(ctx, workItemID)
}

// UpdateWorkItem applies a patch to a work item. Status transitions and
// detail edits each record their own history through the aggregate.
func (u *Usecase) UpdateWorkItem(ctx context.Context, workItemID uuid.UUID, in UpdateWorkItemInput, modifiedBy uuid.UUID) (*entities.WorkItem, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	now := u.clock.Now()
	if err := validateUpdateWorkItem(in, now); err != nil {
		return nil, err
	}

	item, err := u.repo.GetWorkItem(ctx, workItemID)
	if err != nil {
		return nil, err
	}

	appended := make([]entities.WorkItemHistory, 0, 2)

	if in.Status != nil {
		if h := item.UpdateStatus(*in.Status, modifiedBy, now); h != nil {
			appended = append(appended, *h)
		}
	}

	if in.Title != nil || in.Description != nil || in.DueDate != nil {
		title := item.Title
		if in.Title != nil {
			title = *in.Title
		}
		description := item.Description
		if in.Description != nil {
			description = *in.Description
		}
		dueDate := item.DueDate
		if in.DueDate != nil {
			dueDate = *in.DueDate
		}

		if h := item.UpdateDetails(title, description, dueDate, modifiedBy, now); h != nil {
			appended = append(appended, *h)
		}
		item.MarkAsUpdated(now)
	}

	if err := u.repo.UpdateWorkItem(ctx, item); err != nil {
		return nil, err
	}
	for _, h := range appended {
		if err := u.repo.AddHistory(ctx, h); err != nil {
			return nil, err
		}
	}

	u.log.Infow("work item updated", "work_item_id", workItemID, "history_entries", len(appended))
	return item, nil
}

// DeleteWorkItem removes a work item; only completed items may be deleted.
func (u *Usecase) DeleteWorkItem(ctx context.Context, workItemID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	item, err := u.repo.GetWorkItem(ctx, workItemID)
	if err != nil {
		return err
	}

	if item.Status != entities.StatusCompleted {
		return entities.NewConflictError("Cannot delete pending or in-progress work items")
	}

	if err := u.repo.DeleteWorkItem(ctx, item.ID); err != nil {
		return err
	}

	u.log.Infow("work item deleted", "work_item_id", workItemID)
	return nil
}

// AddComment appends a comment to a work item and returns exactly the
// comment just added.
func (u *Usecase) AddComment(ctx context.Context, workItemID uuid.UUID, in AddCommentInput) (*entities.WorkItemComment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Content == "" || in.AuthorID == uuid.Nil {
		return nil, &entities.ValidationError{Violations: commentViolations(in)}
	}

	item, err := u.repo.GetWorkItemWithDetails(ctx, workItemID)
	if err != nil {
		return nil, err
	}

	comment, history := item.AddComment(in.Content, in.AuthorID, u.clock.Now())

	if err := u.repo.AddComment(ctx, *comment); err != nil {
		return nil, err
	}
	if err := u.repo.AddHistory(ctx, *history); err != nil {
		return nil, err
	}

	u.log.Infow("comment added", "work_item_id", workItemID, "comment_id", comment.ID)
	return comment, nil
}

func commentViolations(in AddCommentInput) []entities.FieldViolation {
	var fields []entities.FieldViolation
	if in.Content == "" {
		fields = append(fields, entities.FieldViolation{Field: "content", Message: "Content is required"})
	}
	if in.AuthorID == uuid.Nil {
		fields = append(fields, entities.FieldViolation{Field: "author_id", Message: "Author ID is required"})
	}
	return fields
}
