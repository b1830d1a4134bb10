package domain

import (
	"context"
	"time"

	"go.uber.org/zap"

	"task-management-service/internal/entities"
	"task-management-service/internal/repository"
	"task-management-service/pkg/clock"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log       *zap.SugaredLogger
	repo      repository.Repository
	clock     clock.Clock
	validator *entities.WorkItemValidator
	timeout   time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	clk clock.Clock,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:       log,
		repo:      repo,
		clock:     clk,
		validator: entities.NewWorkItemValidator(),
		timeout:   timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
