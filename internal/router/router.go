package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/essaycoach/essaycoach-api/internal/config"
	"github.com/essaycoach/essaycoach-api/internal/handler"
	"github.com/essaycoach/essaycoach-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AnalysisHandler    *handler.AnalysisHandler
	ChatHandler        *handler.ChatHandler
	ImprovementHandler *handler.ImprovementHandler
	TodoHandler        *handler.TodoHandler
	AnalysisLimiter    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	limiter := deps.AnalysisLimiter
	if limiter == nil {
		limiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Legacy top-level paths kept for the original web client.
	if deps.AnalysisHandler != nil {
		app.Post("/analyze-essay", limiter, deps.AnalysisHandler.AnalyzeBasic)
		app.Post("/analyze-essay-enhanced", limiter, deps.AnalysisHandler.AnalyzeEnhanced)
	}
	if deps.ChatHandler != nil {
		app.Post("/chat-feedback", deps.ChatHandler.ChatFeedback)
	}
	if deps.ImprovementHandler != nil {
		app.Post("/evaluate-improvements", deps.ImprovementHandler.EvaluateImprovements)
	}

	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.AnalysisHandler != nil {
		api.Post("/analyze-essay", limiter, deps.AnalysisHandler.AnalyzeBasic)
		api.Post("/analyze-essay-enhanced", limiter, deps.AnalysisHandler.AnalyzeEnhanced)
		api.Get("/analyses", deps.AnalysisHandler.List)
		api.Get("/analyses/:id", deps.AnalysisHandler.Get)
	}
	if deps.ChatHandler != nil {
		api.Post("/chat-feedback", deps.ChatHandler.ChatFeedback)
	}
	if deps.ImprovementHandler != nil {
		api.Post("/evaluate-improvements", deps.ImprovementHandler.EvaluateImprovements)
	}
	if deps.TodoHandler != nil {
		api.Patch("/analyses/:id/todos/:todoId", deps.TodoHandler.UpdateStatus)
	}
}
