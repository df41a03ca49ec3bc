package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/models"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) DefaultSymptoms(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"symptoms": models.DefaultSymptomLabels()})
}
