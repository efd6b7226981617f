package repository

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/services"
)

// MoveLogRepository writes played moves to Postgres for statistics.
// The log is never read back as game state.
type MoveLogRepository struct {
	services *services.Services
}

// NewMoveLogRepository creates a new MoveLogRepository.
func NewMoveLogRepository(c *fiber.Ctx) *MoveLogRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &MoveLogRepository{
		services: services,
	}
}

func NewMoveLogRepositoryFromServices(services *services.Services) *MoveLogRepository {
	return &MoveLogRepository{
		services: services,
	}
}

// Enabled returns whether Postgres is configured.
func (repo *MoveLogRepository) Enabled() bool {
	return repo.services.Postgres != nil
}

// Record inserts a move. It does nothing if Postgres is not configured.
func (repo *MoveLogRepository) Record(ctx context.Context, record models.MoveRecord) error {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return nil
	}

	query := `
		INSERT INTO moves (game_id, player, move_row, move_col, flipped, difficulty, disc_count)
		VALUES (:game_id, :player, :move_row, :move_col, :flipped, :difficulty, :disc_count)
	`

	if _, err := pgConn.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("error recording move: %w", err)
	}

	return nil
}

// GetStats counts the logged moves per difficulty.
func (repo *MoveLogRepository) GetStats(ctx context.Context) ([]models.DifficultyStats, error) {
	pgConn := repo.services.Postgres
	if pgConn == nil {
		return []models.DifficultyStats{}, nil
	}

	query := `
		SELECT COALESCE(difficulty, 0) AS difficulty, count(*) AS moves
		FROM moves
		GROUP BY 1
		ORDER BY 1
	`

	stats := make([]models.DifficultyStats, 0)
	if err := pgConn.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("error getting move stats: %w", err)
	}

	return stats, nil
}
