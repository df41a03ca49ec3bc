package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/services"
)

const defaultMood = 5

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	email, password, err := services.NormalizeCredentialsInput(credentials.Email, credentials.Password)
	if err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = email
	credentials.Password = password
	return credentials, nil
}

func parseDayParam(c *fiber.Ctx) (time.Time, error) {
	return services.ParseDay(c.Params("date"))
}

func (payload logPayload) toInput() services.LogInput {
	mood := defaultMood
	if payload.Mood != nil {
		mood = *payload.Mood
	}
	return services.LogInput{
		Flow:     payload.Flow,
		Pain:     payload.Pain,
		Mood:     mood,
		Symptoms: payload.Symptoms,
		Notes:    payload.Notes,
	}
}

func parseBulkLogPayload(c *fiber.Ctx) ([]services.DatedLogInput, string) {
	payload := bulkLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return nil, "invalid input"
	}

	inputs := make([]services.DatedLogInput, 0, len(payload.Logs))
	for _, entry := range payload.Logs {
		day, err := services.ParseDay(entry.Date)
		if err != nil {
			return nil, "invalid date"
		}
		inputs = append(inputs, services.DatedLogInput{Date: day, LogInput: entry.toInput()})
	}
	return inputs, ""
}
