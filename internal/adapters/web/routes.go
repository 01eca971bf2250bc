package web

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures the application routes.
func SetupRoutes(app *fiber.App, handlers *Handlers, rateLimiter *RateLimiter) {
	// Health check / agent card
	app.Get("/", handlers.AgentCard)

	// Serve generated images
	app.Get("/image/:id", handlers.Image)

	// A2A JSON-RPC 2.0 endpoint
	app.Post("/a2a", rateLimiter.Middleware(), handlers.A2A)
}
