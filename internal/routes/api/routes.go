package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/checkers/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Get("/games/:id/destinations/:cell", GetDestinations)
	apiGroup.Post("/games/:id/click", Click)
	apiGroup.Post("/games/:id/undo", Undo)
	apiGroup.Post("/games/:id/restart", Restart)

	// Archive routes
	apiGroup.Get("/archive", GetRecentGames)
	apiGroup.Get("/archive/stats", GetArchiveStats)
}
