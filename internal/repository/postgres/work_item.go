package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"task-management-service/internal/entities"
)

const (
	selectWorkItemQuery = `SELECT id, title, description, due_date, status, priority, project_id, created_by, created_at, updated_at
FROM work_items WHERE id=$1`
	selectAllWorkItemsQuery = `SELECT id, title, description, due_date, status, priority, project_id, created_by, created_at, updated_at
FROM work_items ORDER BY created_at`
	selectCommentsQuery = `SELECT id, content, author_id, work_item_id, created_at
FROM work_item_comments WHERE work_item_id=$1 ORDER BY created_at`
	selectHistoryQuery = `SELECT id, action, timestamp, modified_by, work_item_id
FROM work_item_history WHERE work_item_id=$1 ORDER BY timestamp, id`
	insertWorkItemQuery = `INSERT INTO work_items(id, title, description, due_date, status, priority, project_id, created_by, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	updateWorkItemQuery = `UPDATE work_items
SET title=$2, description=$3, due_date=$4, status=$5, updated_at=$6
WHERE id=$1`
	deleteWorkItemQuery = `DELETE FROM work_items WHERE id=$1`
	insertCommentQuery  = `INSERT INTO work_item_comments(id, content, author_id, work_item_id, created_at)
VALUES ($1,$2,$3,$4,$5)`
	insertHistoryQuery = `INSERT INTO work_item_history(id, action, timestamp, modified_by, work_item_id)
VALUES ($1,$2,$3,$4,$5)`
)

// GetWorkItem returns a work item without comments or history.
func (p *Postgres) GetWorkItem(ctx context.Context, id uuid.UUID) (*entities.WorkItem, error) {
	item, err := scanWorkItem(p.db.QueryRow(ctx, selectWorkItemQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrWorkItemNotFound
		}
		p.log.Errorw("failed to get work item", "error", err, "work_item_id", id)
		return nil, fmt.Errorf("get work item: %w", err)
	}
	return item, nil
}

// GetWorkItemWithDetails returns a work item with comments and history
// hydrated in their stored order.
func (p *Postgres) GetWorkItemWithDetails(ctx context.Context, id uuid.UUID) (*entities.WorkItem, error) {
	item, err := p.GetWorkItem(ctx, id)
	if err != nil {
		return nil, err
	}

	commentRows, err := p.db.Query(ctx, selectCommentsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var c entities.WorkItemComment
		if err := commentRows.Scan(&c.ID, &c.Content, &c.AuthorID, &c.WorkItemID, &c.CreatedAt); err != nil {
			p.log.Errorw("failed to scan comment", "error", err, "work_item_id", id)
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		item.Comments = append(item.Comments, c)
	}
	if err := commentRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	historyRows, err := p.db.Query(ctx, selectHistoryQuery, id)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	defer historyRows.Close()

	for historyRows.Next() {
		var h entities.WorkItemHistory
		if err := historyRows.Scan(&h.ID, &h.Action, &h.Timestamp, &h.ModifiedBy, &h.WorkItemID); err != nil {
			p.log.Errorw("failed to scan history", "error", err, "work_item_id", id)
			return nil, fmt.Errorf("scan history: %w", err)
		}
		h.CreatedAt = h.Timestamp
		item.History = append(item.History, h)
	}
	if err := historyRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return item, nil
}

// AllWorkItems returns every work item for read-side aggregation.
func (p *Postgres) AllWorkItems(ctx context.Context) ([]entities.WorkItem, error) {
	rows, err := p.db.Query(ctx, selectAllWorkItemsQuery)
	if err != nil {
		return nil, fmt.Errorf("select all work items: %w", err)
	}
	defer rows.Close()

	items := make([]entities.WorkItem, 0)
	for rows.Next() {
		item, err := scanWorkItem(rows)
		if err != nil {
			p.log.Errorw("failed to scan work item", "error", err)
			return nil, fmt.Errorf("scan work item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work items: %w", err)
	}

	return items, nil
}

// InsertWorkItem persists a new work item together with the history entries
// the aggregate recorded at construction, in one transaction.
func (p *Postgres) InsertWorkItem(ctx context.Context, item *entities.WorkItem) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertWorkItemQuery,
		item.ID, item.Title, item.Description, item.DueDate,
		item.Status, item.Priority, item.ProjectID, item.CreatedBy, item.CreatedAt); err != nil {
		p.log.Errorw("failed to insert work item", "error", err, "work_item_id", item.ID)
		return fmt.Errorf("insert work item: %w", err)
	}

	for _, h := range item.History {
		if _, err := tx.Exec(ctx, insertHistoryQuery,
			h.ID, h.Action, h.Timestamp, h.ModifiedBy, h.WorkItemID); err != nil {
			p.log.Errorw("failed to insert history", "error", err, "work_item_id", item.ID)
			return fmt.Errorf("insert history: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("work item inserted", "work_item_id", item.ID, "project_id", item.ProjectID)
	return nil
}

// UpdateWorkItem persists mutable work item fields.
func (p *Postgres) UpdateWorkItem(ctx context.Context, item *entities.WorkItem) error {
	tag, err := p.db.Exec(ctx, updateWorkItemQuery,
		item.ID, item.Title, item.Description, item.DueDate, item.Status, item.UpdatedAt)
	if err != nil {
		p.log.Errorw("failed to update work item", "error", err, "work_item_id", item.ID)
		return fmt.Errorf("update work item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrWorkItemNotFound
	}
	return nil
}

// DeleteWorkItem removes a work item and its owned rows via cascading FKs.
func (p *Postgres) DeleteWorkItem(ctx context.Context, id uuid.UUID) error {
	tag, err := p.db.Exec(ctx, deleteWorkItemQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete work item", "error", err, "work_item_id", id)
		return fmt.Errorf("delete work item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrWorkItemNotFound
	}
	return nil
}

// AddComment appends a comment row.
func (p *Postgres) AddComment(ctx context.Context, comment entities.WorkItemComment) error {
	_, err := p.db.Exec(ctx, insertCommentQuery,
		comment.ID, comment.Content, comment.AuthorID, comment.WorkItemID, comment.CreatedAt)
	if err != nil {
		p.log.Errorw("failed to insert comment", "error", err, "work_item_id", comment.WorkItemID)
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// AddHistory appends a history row.
func (p *Postgres) AddHistory(ctx context.Context, history entities.WorkItemHistory) error {
	_, err := p.db.Exec(ctx, insertHistoryQuery,
		history.ID, history.Action, history.Timestamp, history.ModifiedBy, history.WorkItemID)
	if err != nil {
		p.log.Errorw("failed to insert history", "error", err, "work_item_id", history.WorkItemID)
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

func scanWorkItem(row pgx.Row) (*entities.WorkItem, error) {
	var item entities.WorkItem
	err := row.Scan(&item.ID, &item.Title, &item.Description, &item.DueDate,
		&item.Status, &item.Priority, &item.ProjectID, &item.CreatedBy,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
