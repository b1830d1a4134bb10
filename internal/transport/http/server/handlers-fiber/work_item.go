package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"task-management-service/internal/api"
	"task-management-service/internal/entities"
	"task-management-service/internal/mapper"
	"task-management-service/internal/usecase/domain"
)

// headerModifiedBy identifies the user making a change.
const headerModifiedBy = "X-Modified-By"

// CreateWorkItem creates a work item inside a project.
func (h *Handler) CreateWorkItem(c *fiber.Ctx) error {
	var body api.CreateWorkItemRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid body", nil))
	}

	item, err := h.uc.CreateWorkItem(c.Context(), domain.CreateWorkItemInput{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		Priority:    entities.WorkItemPriority(body.Priority),
		ProjectID:   body.ProjectID,
		CreatedBy:   body.CreatedBy,
	})
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToWorkItemResponse(item))
}

// WorkItemDetails returns a work item including comments and history.
func (h *Handler) WorkItemDetails(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid work item id", nil))
	}

	item, err := h.uc.WorkItemDetails(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToWorkItemDetailsResponse(item))
}

// UpdateWorkItem applies a patch to a work item.
func (h *Handler) UpdateWorkItem(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid work item id", nil))
	}

	modifiedBy, err := uuid.Parse(c.Get(headerModifiedBy))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "X-Modified-By header is required", nil))
	}

	var body api.UpdateWorkItemRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid body", nil))
	}

	in := domain.UpdateWorkItemInput{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
	}
	if body.Status != nil {
		status := entities.WorkItemStatus(*body.Status)
		in.Status = &status
	}

	item, err := h.uc.UpdateWorkItem(c.Context(), id, in, modifiedBy)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToWorkItemResponse(item))
}

// DeleteWorkItem deletes a completed work item.
func (h *Handler) DeleteWorkItem(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid work item id", nil))
	}

	if err := h.uc.DeleteWorkItem(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

// AddComment appends a comment to a work item.
func (h *Handler) AddComment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid work item id", nil))
	}

	var body api.AddCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "invalid body", nil))
	}

	comment, err := h.uc.AddComment(c.Context(), id, domain.AddCommentInput{
		Content:  body.Content,
		AuthorID: body.AuthorID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToCommentResponse(comment))
}
