package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.CurrentUser)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.GetLogs)
	logs.Put("", handler.ReplaceLogs)
	logs.Get("/:date", handler.GetLog)
	logs.Put("/:date", handler.SaveLog)
	logs.Delete("/:date", handler.DeleteLog)

	insights := api.Group("/insights", handler.AuthRequired)
	insights.Get("", handler.GetInsights)
	insights.Get("/cycle", handler.GetCycleStatistics)
	insights.Get("/symptoms", handler.GetSymptomPatterns)
	insights.Get("/chat-context", handler.GetChatContext)

	api.Get("/symptoms/defaults", handler.AuthRequired, handler.DefaultSymptoms)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// NotFound keeps unknown API paths on the JSON error contract.
func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "not found")
}
