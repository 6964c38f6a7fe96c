package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the analysis endpoints on app. history is nil when
// analysis history is disabled.
func RegisterRoutes(app *fiber.App, analyze *AnalyzeHandler, history *HistoryHandler) {
	app.Post("/analyze", analyze.HandleAnalyze)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	if history != nil {
		api := app.Group("/api/v1")
		api.Get("/analyses", history.HandleList)
		api.Get("/analyses/:id", history.HandleGet)
	}
}
