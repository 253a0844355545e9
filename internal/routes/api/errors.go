package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/checkers/internal/checkers"
	"github.com/lk16/checkers/internal/models"
	"github.com/lk16/checkers/internal/play"
	"github.com/lk16/checkers/internal/repository"
)

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, checkers.ErrInvalidCell), errors.Is(err, models.ErrMissingCell):
		return fiber.StatusBadRequest
	case errors.Is(err, checkers.ErrGameOver),
		errors.Is(err, checkers.ErrIllegalContinuation),
		errors.Is(err, play.ErrNothingToUndo):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(StatusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func playService(c *fiber.Ctx) *play.Service {
	return c.Locals("play").(*play.Service) //nolint: errcheck
}
