package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Game routes
	apiGroup.Post("/game/new", NewGame)
	apiGroup.Post("/game/valid-moves", ValidMoves)
	apiGroup.Post("/game/move", PlayerMove)
	apiGroup.Post("/game/bot-move", BotMove)

	// Stats routes
	apiGroup.Get("/stats", middleware.Token(), GetStats)
}
