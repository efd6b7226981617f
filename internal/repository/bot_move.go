package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	botMoveKeyPrefix = "bot_move"
	botMoveTTL       = 24 * time.Hour
)

var ErrCacheMiss = errors.New("bot move not cached")

// BotMoveRepository caches moves of the deterministic difficulty levels in Redis.
type BotMoveRepository struct {
	services *services.Services
}

// NewBotMoveRepository creates a new BotMoveRepository.
func NewBotMoveRepository(c *fiber.Ctx) *BotMoveRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &BotMoveRepository{
		services: services,
	}
}

func NewBotMoveRepositoryFromServices(services *services.Services) *BotMoveRepository {
	return &BotMoveRepository{
		services: services,
	}
}

// BotMoveKey returns the Redis key for a cached bot move.
func BotMoveKey(board othello.Board, player othello.Color, difficulty int) string {
	return fmt.Sprintf("%s:%d:%d:%s", botMoveKeyPrefix, difficulty, player, board.String())
}

// Cacheable returns whether moves at this difficulty are deterministic and can be cached.
func Cacheable(difficulty int) bool {
	_, ok := othello.SearchDepth(difficulty)
	return ok
}

// Get looks up a cached move. ErrCacheMiss is returned if there is none or caching is disabled.
func (repo *BotMoveRepository) Get(
	ctx context.Context,
	board othello.Board,
	player othello.Color,
	difficulty int,
) (othello.Move, error) {
	redisConn := repo.services.Redis
	if redisConn == nil || !Cacheable(difficulty) {
		return othello.Move{}, ErrCacheMiss
	}

	jsonData, err := redisConn.Get(ctx, BotMoveKey(board, player, difficulty)).Bytes()
	if errors.Is(err, redis.Nil) {
		return othello.Move{}, ErrCacheMiss
	}

	if err != nil {
		return othello.Move{}, fmt.Errorf("error getting bot move: %w", err)
	}

	var move othello.Move
	if err = json.Unmarshal(jsonData, &move); err != nil {
		return othello.Move{}, fmt.Errorf("error unmarshaling bot move: %w", err)
	}

	return move, nil
}

// Set stores a move. It does nothing if caching is disabled.
func (repo *BotMoveRepository) Set(
	ctx context.Context,
	board othello.Board,
	player othello.Color,
	difficulty int,
	move othello.Move,
) error {
	redisConn := repo.services.Redis
	if redisConn == nil || !Cacheable(difficulty) {
		return nil
	}

	jsonData, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("error marshaling bot move: %w", err)
	}

	err = redisConn.Set(ctx, BotMoveKey(board, player, difficulty), jsonData, botMoveTTL).Err()
	if err != nil {
		return fmt.Errorf("error storing bot move: %w", err)
	}

	return nil
}
