package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	insights, err := handler.insightsService.Overview(user.ID)
	if err != nil {
		return internalError(c, err, "failed to load insights")
	}
	return c.JSON(insights)
}

// GetCycleStatistics answers with a JSON null body when the user has no logs yet.
func (handler *Handler) GetCycleStatistics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.insightsService.CycleStatistics(user.ID)
	if err != nil {
		return internalError(c, err, "failed to load cycle statistics")
	}
	return c.JSON(stats)
}

func (handler *Handler) GetSymptomPatterns(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	patterns, err := handler.insightsService.SymptomPatterns(user.ID)
	if err != nil {
		return internalError(c, err, "failed to load symptom patterns")
	}
	return c.JSON(patterns)
}

func (handler *Handler) GetChatContext(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	prompt, err := handler.insightsService.ChatContext(user.ID, handler.today())
	if err != nil {
		return internalError(c, err, "failed to build chat context")
	}
	return c.JSON(fiber.Map{"prompt": prompt})
}
