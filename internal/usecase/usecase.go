package usecase

import (
	"time"

	"go.uber.org/zap"

	"task-management-service/internal/repository"
	"task-management-service/internal/usecase/domain"
	"task-management-service/pkg/clock"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ProjectUsecaseInterface
	WorkItemUsecaseInterface
	ReportUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, clk clock.Clock, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, clk, timeout)
}
