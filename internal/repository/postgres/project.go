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
	selectProjectQuery = `SELECT id, name, description, owner_id, created_at, updated_at
FROM projects WHERE id=$1`
	selectProjectsByOwnerQuery = `SELECT p.id, p.name, p.description, p.owner_id, COUNT(wi.id)
FROM projects p
LEFT JOIN work_items wi ON wi.project_id = p.id
WHERE p.owner_id=$1
GROUP BY p.id, p.name, p.description, p.owner_id, p.created_at
ORDER BY p.created_at`
	selectProjectWorkItemsQuery = `SELECT id, title, description, due_date, status, priority, project_id, created_by, created_at, updated_at
FROM work_items WHERE project_id=$1 ORDER BY created_at`
	selectProjectMembersQuery = `SELECT id, project_id, user_id, joined_at, created_at, updated_at
FROM project_members WHERE project_id=$1 ORDER BY joined_at`
	insertProjectQuery = `INSERT INTO projects(id, name, description, owner_id, created_at)
VALUES ($1,$2,$3,$4,$5)`
	deleteProjectQuery = `DELETE FROM projects WHERE id=$1`
)

// GetProject returns a project without its owned collections.
func (p *Postgres) GetProject(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	project, err := p.scanProject(p.db.QueryRow(ctx, selectProjectQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		p.log.Errorw("failed to get project", "error", err, "project_id", id)
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// GetProjectWithWorkItems returns a project with work items and members
// hydrated.
func (p *Postgres) GetProjectWithWorkItems(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	project, err := p.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, selectProjectWorkItemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("select project work items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanWorkItem(rows)
		if err != nil {
			p.log.Errorw("failed to scan project work item", "error", err, "project_id", id)
			return nil, fmt.Errorf("scan project work item: %w", err)
		}
		project.WorkItems = append(project.WorkItems, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project work items: %w", err)
	}

	members, err := p.readMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Members = members

	return project, nil
}

// GetProjectsByOwner returns owner projects projected with work item counts.
func (p *Postgres) GetProjectsByOwner(ctx context.Context, ownerID uuid.UUID) ([]entities.ProjectSummary, error) {
	rows, err := p.db.Query(ctx, selectProjectsByOwnerQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select projects by owner: %w", err)
	}
	defer rows.Close()

	summaries := make([]entities.ProjectSummary, 0)
	for rows.Next() {
		var s entities.ProjectSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.OwnerID, &s.WorkItemCount); err != nil {
			p.log.Errorw("failed to scan project summary", "error", err, "owner_id", ownerID)
			return nil, fmt.Errorf("scan project summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects by owner: %w", err)
	}

	return summaries, nil
}

// InsertProject persists a new project.
func (p *Postgres) InsertProject(ctx context.Context, project *entities.Project) error {
	_, err := p.db.Exec(ctx, insertProjectQuery,
		project.ID, project.Name, project.Description, project.OwnerID, project.CreatedAt)
	if err != nil {
		p.log.Errorw("failed to insert project", "error", err, "project_id", project.ID)
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// DeleteProject removes a project; owned rows go with it via cascading FKs.
func (p *Postgres) DeleteProject(ctx context.Context, id uuid.UUID) error {
	tag, err := p.db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete project", "error", err, "project_id", id)
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}
	return nil
}

func (p *Postgres) scanProject(row pgx.Row) (*entities.Project, error) {
	var project entities.Project
	err := row.Scan(&project.ID, &project.Name, &project.Description,
		&project.OwnerID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (p *Postgres) readMembers(ctx context.Context, projectID uuid.UUID) ([]entities.ProjectMember, error) {
	rows, err := p.db.Query(ctx, selectProjectMembersQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("select project members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.ProjectMember, 0)
	for rows.Next() {
		var m entities.ProjectMember
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.JoinedAt, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate project members: %w", err)
	}
	return members, nil
}
