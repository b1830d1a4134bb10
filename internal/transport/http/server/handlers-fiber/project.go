package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"task-management-service/internal/api"
	"task-management-service/internal/mapper"
	"task-management-service/internal/usecase/domain"
)

// CreateProject creates a project.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var body api.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid body", nil))
	}

	project, err := h.uc.CreateProject(c.Context(), domain.CreateProjectInput{
		Name:        body.Name,
		Description: body.Description,
		OwnerID:     body.OwnerID,
	})
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToProjectResponse(project))
}

// ProjectsByOwner returns all projects owned by a user.
func (h *Handler) ProjectsByOwner(c *fiber.Ctx) error {
	ownerID, err := parseUUIDParam(c, "ownerId")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid owner id", nil))
	}

	summaries, err := h.uc.ProjectsByOwner(c.Context(), ownerID)
	if err != nil {
		return writeError(c, err)
	}

	res := make([]api.ProjectResponse, 0, len(summaries))
	for _, s := range summaries {
		res = append(res, mapper.ToProjectResponseFromSummary(s))
	}
	return c.Status(http.StatusOK).JSON(res)
}

// ProjectDetails returns a project including its work items.
func (h *Handler) ProjectDetails(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid project id", nil))
	}

	project, err := h.uc.ProjectDetails(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToProjectDetailsResponse(project))
}

// DeleteProject deletes a project when all its work items are completed.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid project id", nil))
	}

	if err := h.uc.DeleteProject(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}
