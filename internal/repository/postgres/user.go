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
	selectUserQuery = `SELECT id, name, email, is_manager, created_at, updated_at
FROM users WHERE id=$1`
	selectAllUsersQuery = `SELECT id, name, email, is_manager, created_at, updated_at
FROM users ORDER BY created_at`
)

// GetUser returns a user by id.
func (p *Postgres) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.IsManager, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to get user", "error", err, "user_id", id)
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// AllUsers returns every user for read-side aggregation.
func (p *Postgres) AllUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, selectAllUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("select all users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.IsManager, &u.CreatedAt, &u.UpdatedAt); err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
