package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"task-management-service/internal/api"
	"task-management-service/internal/entities"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"
	var fields []api.FieldViolation

	var validationErr *entities.ValidationError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		code = api.CodeValidation
		msg = "request validation failed"
		fields = make([]api.FieldViolation, 0, len(validationErr.Violations))
		for _, v := range validationErr.Violations {
			fields = append(fields, api.FieldViolation{Field: v.Field, Message: v.Message})
		}
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeValidation
		msg = err.Error()
	case errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrWorkItemNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrDomainRule):
		status = http.StatusConflict
		code = api.CodeDomainRule
		msg = err.Error()
	case errors.Is(err, entities.ErrConflict):
		status = http.StatusConflict
		code = api.CodeConflict
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusForbidden
		code = api.CodeUnauthorized
		msg = "Only managers can access performance reports"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg, fields))
}

func errorResponse(code, msg string, fields []api.FieldViolation) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg, Fields: fields}}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}
