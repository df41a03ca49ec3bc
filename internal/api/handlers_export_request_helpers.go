package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/models"
	"github.com/terraincognita07/cyclenote/internal/services"
)

// exportLogs resolves the optional from/to query range and loads the matching logs.
// A non-zero status tells the caller which error response to write.
func (handler *Handler) exportLogs(c *fiber.Ctx) ([]models.SymptomLog, int, string, error) {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return nil, fiber.StatusUnauthorized, "unauthorized", nil
	}

	from, to, message := parseRangeQuery(c)
	if message != "" {
		return nil, fiber.StatusBadRequest, message, nil
	}

	logs, err := handler.exportService.LoadLogs(user.ID, from, to)
	if err != nil {
		return nil, fiber.StatusInternalServerError, "failed to fetch logs", err
	}
	return logs, 0, "", nil
}

func respondExportError(c *fiber.Ctx, status int, message string, cause error) error {
	if cause != nil {
		return internalError(c, cause, message)
	}
	return apiError(c, status, message)
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("cyclenote-export-%s.%s", now.Format(services.DayLayout), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
