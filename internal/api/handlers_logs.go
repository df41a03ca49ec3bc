package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/services"
)

func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, message := parseRangeQuery(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	logs, err := handler.logService.FetchLogsForRange(user.ID, from, to)
	if err != nil {
		return internalError(c, err, "failed to fetch logs")
	}
	return c.JSON(newLogResponses(logs))
}

func (handler *Handler) GetLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.logService.FetchLogByDate(user.ID, day)
	if err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "log not found")
		}
		return internalError(c, err, "failed to fetch log")
	}
	return c.JSON(newLogResponse(entry))
}

func (handler *Handler) SaveLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := logPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, err := handler.logService.SaveLog(user.ID, day, payload.toInput())
	if err != nil {
		return respondLogWriteError(c, err)
	}
	return c.JSON(newLogResponse(entry))
}

func (handler *Handler) ReplaceLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	inputs, message := parseBulkLogPayload(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	stored, err := handler.logService.ReplaceLogs(user.ID, inputs)
	if err != nil {
		return respondLogWriteError(c, err)
	}
	return c.JSON(newLogResponses(stored))
}

// DeleteLog succeeds whether or not the day had an entry.
func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := parseDayParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.logService.DeleteLog(user.ID, day); err != nil {
		return internalError(c, err, "failed to delete log")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
