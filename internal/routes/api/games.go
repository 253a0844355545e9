package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/checkers/internal/models"
)

// CreateGame starts a new game.
func CreateGame(c *fiber.Ctx) error {
	session, err := playService(c).Create(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewGameView(session))
}

// GetGame returns the current state of a game.
func GetGame(c *fiber.Ctx) error {
	session, err := playService(c).Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameView(session))
}

// GetDestinations returns the candidates of a cell without selecting it.
func GetDestinations(c *fiber.Ctx) error {
	cell, err := c.ParamsInt("cell")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid cell",
		})
	}

	moves, err := playService(c).Destinations(c.Context(), c.Params("id"), cell)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewDestinationsResponse(cell, moves))
}

// Click handles a click on a board cell.
func Click(c *fiber.Ctx) error {
	var req models.ClickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cell, err := req.Index()
	if err != nil {
		return errorResponse(c, err)
	}

	result, session, err := playService(c).Click(c.Context(), c.Params("id"), cell)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewClickResponse(result, session))
}

// Undo restores the previous position.
func Undo(c *fiber.Ctx) error {
	session, err := playService(c).Undo(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameView(session))
}

// Restart puts a game back in the starting position.
func Restart(c *fiber.Ctx) error {
	session, err := playService(c).Restart(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameView(session))
}
