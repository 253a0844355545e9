package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/checkers/internal/middleware"
	"github.com/lk16/checkers/internal/play"
	"github.com/lk16/checkers/internal/ws"
)

func handleWs(c *websocket.Conn) {
	service := c.Locals("play").(*play.Service) //nolint: errcheck
	gameID := c.Params("id")

	h := ws.NewHandler(c, service, gameID)
	if err := h.Handle(); err != nil {
		slog.Debug("ws connection closed", "game", gameID, "error", err)
	}
}

// requireUpgrade rejects plain HTTP requests on the websocket route.
func requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws/games/:id", middleware.AuthOrToken(), requireUpgrade, websocket.New(handleWs))
}
