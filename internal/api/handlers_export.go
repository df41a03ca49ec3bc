package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/services"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	logs, status, message, cause := handler.exportLogs(c)
	if status != 0 {
		return respondExportError(c, status, message, cause)
	}

	var output bytes.Buffer
	if err := services.WriteCSV(&output, logs); err != nil {
		return internalError(c, err, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(handler.today(), "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	logs, status, message, cause := handler.exportLogs(c)
	if status != 0 {
		return respondExportError(c, status, message, cause)
	}

	today := handler.today()
	payload := fiber.Map{
		"exported_at": today.Format(services.DayLayout),
		"summary":     services.BuildExportSummary(logs),
		"entries":     services.BuildExportJSONEntries(logs),
	}
	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(today, "json"))
	return c.JSON(payload)
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	logs, status, message, cause := handler.exportLogs(c)
	if status != 0 {
		return respondExportError(c, status, message, cause)
	}
	return c.JSON(services.BuildExportSummary(logs))
}
