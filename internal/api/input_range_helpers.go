package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/services"
)

// parseRangeQuery returns an error message suitable for a 400 response when the
// from/to query parameters are malformed.
func parseRangeQuery(c *fiber.Ctx) (*time.Time, *time.Time, string) {
	from, to, err := services.ParseDateRange(c.Query("from"), c.Query("to"))
	if err == nil {
		return from, to, ""
	}
	switch {
	case errors.Is(err, services.ErrFromDateInvalid):
		return nil, nil, "invalid from date"
	case errors.Is(err, services.ErrToDateInvalid):
		return nil, nil, "invalid to date"
	default:
		return nil, nil, "invalid range"
	}
}
