package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
)

func newService(c *fiber.Ctx) *game.Service {
	return game.NewServiceFromRepositories(
		repository.NewBotMoveRepository(c),
		repository.NewMoveLogRepository(c),
	)
}

// errorStatus maps an error from the game service to an HTTP status code.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidBoard),
		errors.Is(err, models.ErrInvalidPlayer),
		errors.Is(err, models.ErrInvalidGameID):
		return fiber.StatusBadRequest
	case errors.Is(err, engine.ErrInvalidMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, game.ErrBotTimeout):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// NewGame starts a new game.
func NewGame(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(newService(c).NewGame())
}

// ValidMoves returns the valid moves for a board and player.
func ValidMoves(c *fiber.Ctx) error {
	var req models.GameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := newService(c).ValidMoves(req)
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// PlayerMove handles a move by a human player.
func PlayerMove(c *fiber.Ctx) error {
	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := newService(c).PlayerMove(c.Context(), req)
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// BotMove lets the bot move.
func BotMove(c *fiber.Ctx) error {
	var req models.BotMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := newService(c).BotMove(c.Context(), req)
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetStats returns the number of logged moves per difficulty.
func GetStats(c *fiber.Ctx) error {
	stats, err := newService(c).GetStats(c.Context())
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
