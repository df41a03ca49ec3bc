package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclenote/internal/logger"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// internalError logs the cause and answers with a generic 500 message.
func internalError(c *fiber.Ctx, err error, message string) error {
	entry := logger.Log.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	})
	if user, ok := currentUser(c); ok && user != nil {
		entry = entry.WithField("user_id", user.ID)
	}
	entry.WithError(err).Error(message)
	return apiError(c, fiber.StatusInternalServerError, message)
}
