package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"task-management-service/internal/api"
	"task-management-service/internal/mapper"
)

// PerformanceReport generates a performance report for a manager. The date
// window defaults to the configured trailing period when absent.
func (h *Handler) PerformanceReport(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "userId query parameter is required", nil))
	}

	toDate := time.Now().UTC()
	fromDate := toDate.Add(-h.reportWindow)

	if raw := c.Query("fromDate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "fromDate must be RFC 3339", nil))
		}
		fromDate = parsed
	}
	if raw := c.Query("toDate"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeValidation, "toDate must be RFC 3339", nil))
		}
		toDate = parsed
	}

	report, err := h.uc.PerformanceReportFor(c.Context(), userID, fromDate, toDate)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToPerformanceReportResponse(report))
}
