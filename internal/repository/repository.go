// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"task-management-service/config"
	"task-management-service/internal/repository/postgres"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	ProjectInterface
	WorkItemInterface
	UserInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
