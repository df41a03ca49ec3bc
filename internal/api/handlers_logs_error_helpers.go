package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/services"
)

var logValidationErrors = []error{
	services.ErrInvalidFlow,
	services.ErrInvalidPain,
	services.ErrInvalidMood,
	services.ErrInvalidSymptom,
	services.ErrTooManySymptoms,
	services.ErrNotesTooLong,
}

// respondLogWriteError maps validation failures to 400 and storage failures to 500.
func respondLogWriteError(c *fiber.Ctx, err error) error {
	for _, validationErr := range logValidationErrors {
		if errors.Is(err, validationErr) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	return internalError(c, err, "failed to save log")
}
