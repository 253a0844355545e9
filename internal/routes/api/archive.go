package api

import (
	"github.com/gofiber/fiber/v2"
)

const (
	defaultArchiveLimit = 20
	maxArchiveLimit     = 200
)

// GetRecentGames returns the most recently finished games.
func GetRecentGames(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultArchiveLimit)
	if limit < 1 || limit > maxArchiveLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 200",
		})
	}

	games, err := playService(c).RecentGames(c.Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(games)
}

// GetArchiveStats returns the number of finished games by result.
func GetArchiveStats(c *fiber.Ctx) error {
	stats, err := playService(c).ArchiveStats(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
