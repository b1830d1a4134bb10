// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"task-management-service/internal/usecase"
)

// Handler exposes the application services over HTTP.
type Handler struct {
	log          *zap.SugaredLogger
	uc           usecase.InterfaceUsecase
	reportWindow time.Duration
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, reportWindow time.Duration) *Handler {
	return &Handler{
		log:          log,
		uc:           uc,
		reportWindow: reportWindow,
	}
}

// Register mounts all API routes on the app.
func (h *Handler) Register(app *fiber.App) {
	projects := app.Group("/api/projects")
	projects.Post("/", h.CreateProject)
	projects.Get("/user/:ownerId", h.ProjectsByOwner)
	projects.Get("/:id", h.ProjectDetails)
	projects.Delete("/:id", h.DeleteProject)

	items := app.Group("/api/workitems")
	items.Post("/", h.CreateWorkItem)
	items.Get("/:id", h.WorkItemDetails)
	items.Put("/:id", h.UpdateWorkItem)
	items.Delete("/:id", h.DeleteWorkItem)
	items.Post("/:id/comments", h.AddComment)

	app.Get("/api/reports/performance", h.PerformanceReport)
}
