package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/engine"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
)

const (
	botMoveTimeout   = 10 * time.Second
	sideStoreTimeout = 2 * time.Second
)

var ErrBotTimeout = errors.New("bot did not find a move in time")

// searchSlots bounds the number of searches running at once. A search whose
// caller timed out keeps its slot until it finishes.
var searchSlots = make(chan struct{}, runtime.NumCPU())

// Service serves games on top of the engine. It keeps no game state: every
// call gets the board from the caller.
type Service struct {
	botMoves *repository.BotMoveRepository
	moveLog  *repository.MoveLogRepository
	timeout  time.Duration
	searches chan struct{}
}

// NewService creates a new Service.
func NewService(services *services.Services) *Service {
	return NewServiceFromRepositories(
		repository.NewBotMoveRepositoryFromServices(services),
		repository.NewMoveLogRepositoryFromServices(services),
	)
}

// NewServiceFromRepositories creates a new Service on top of existing repositories.
func NewServiceFromRepositories(
	botMoves *repository.BotMoveRepository,
	moveLog *repository.MoveLogRepository,
) *Service {
	return &Service{
		botMoves: botMoves,
		moveLog:  moveLog,
		timeout:  botMoveTimeout,
		searches: searchSlots,
	}
}

// NewGame starts a new game. Black moves first.
func (s *Service) NewGame() models.NewGameResponse {
	board := engine.NewGameBoard()

	return models.NewGameResponse{
		GameID:     uuid.New().String(),
		Board:      board,
		Player:     othello.BLACK,
		ValidMoves: engine.ValidMoves(board, othello.BLACK),
	}
}

// ValidMoves lists the valid moves for the requested player.
func (s *Service) ValidMoves(req models.GameRequest) (models.ValidMovesResponse, error) {
	board, player, err := req.Validate()
	if err != nil {
		return models.ValidMovesResponse{}, err
	}

	return models.ValidMovesResponse{
		Moves: engine.ValidMoves(board, player),
	}, nil
}

// PlayerMove validates and plays a human move.
func (s *Service) PlayerMove(ctx context.Context, req models.MoveRequest) (models.MoveResponse, error) {
	board, player, err := req.Validate()
	if err != nil {
		return models.MoveResponse{}, err
	}

	board, flipped, err := engine.ApplyPlayerMoveFlipped(board, req.Row, req.Col, player)
	if err != nil {
		return models.MoveResponse{}, err
	}

	s.record(ctx, req.GameID, player, othello.Move{Row: req.Row, Col: req.Col}, flipped, nil, board)

	return models.MoveResponse{
		GameState: models.NewGameState(board, player),
		Flipped:   flipped,
	}, nil
}

// BotMove picks and plays a move for the requested player.
func (s *Service) BotMove(ctx context.Context, req models.BotMoveRequest) (models.BotMoveResponse, error) {
	board, player, err := req.Validate()
	if err != nil {
		return models.BotMoveResponse{}, err
	}

	move, err := s.chooseMove(ctx, board, player, req.Difficulty)
	if err != nil {
		return models.BotMoveResponse{}, err
	}

	before := board.CountDiscs(player)
	board = engine.PlayMove(board, move, player)

	if !move.IsNoMove() {
		flipped := board.CountDiscs(player) - before - 1
		difficulty := req.Difficulty
		s.record(ctx, req.GameID, player, move, flipped, &difficulty, board)
	}

	return models.BotMoveResponse{
		GameState: models.NewGameState(board, player),
		Move:      move,
	}, nil
}

// chooseMove returns a random move, a cached move or the result of a search.
// The search itself cannot be interrupted, so on timeout its result is dropped.
func (s *Service) chooseMove(ctx context.Context, board othello.Board, player othello.Color, difficulty int) (othello.Move, error) {
	move, err := s.cachedMove(ctx, board, player, difficulty)
	if err == nil {
		slog.Debug("bot move cache hit", "board", board.String(), "difficulty", difficulty)
		return move, nil
	}

	if _, ok := othello.SearchDepth(difficulty); !ok {
		return othello.GetRandomMove(board, player), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case s.searches <- struct{}{}:
	case <-ctx.Done():
		slog.Warn("no search slot available", "board", board.String(), "difficulty", difficulty)
		return othello.Move{}, fmt.Errorf("%w: %w", ErrBotTimeout, ctx.Err())
	}

	result := make(chan othello.Move, 1)
	go func() {
		defer func() { <-s.searches }()
		result <- othello.ChooseMove(board, player, difficulty)
	}()

	select {
	case move = <-result:
	case <-ctx.Done():
		slog.Warn("bot move timed out", "board", board.String(), "difficulty", difficulty)
		return othello.Move{}, fmt.Errorf("%w: %w", ErrBotTimeout, ctx.Err())
	}

	storeCtx, storeCancel := context.WithTimeout(context.Background(), sideStoreTimeout)
	defer storeCancel()

	if err = s.botMoves.Set(storeCtx, board, player, difficulty, move); err != nil {
		slog.Warn("failed to cache bot move", "error", err)
	}

	return move, nil
}

func (s *Service) cachedMove(ctx context.Context, board othello.Board, player othello.Color, difficulty int) (othello.Move, error) {
	ctx, cancel := context.WithTimeout(ctx, sideStoreTimeout)
	defer cancel()

	move, err := s.botMoves.Get(ctx, board, player, difficulty)
	if err != nil && !errors.Is(err, repository.ErrCacheMiss) {
		slog.Warn("failed to look up bot move", "error", err)
	}

	return move, err
}

// record writes a move to the move log. Failures are only logged.
func (s *Service) record(
	ctx context.Context,
	gameID string,
	player othello.Color,
	move othello.Move,
	flipped int,
	difficulty *int,
	board othello.Board,
) {
	if !s.moveLog.Enabled() {
		return
	}

	record := models.MoveRecord{
		Player:     int(player),
		Row:        move.Row,
		Col:        move.Col,
		Flipped:    flipped,
		Difficulty: difficulty,
		DiscCount:  board.CountDiscs(othello.BLACK) + board.CountDiscs(othello.WHITE),
	}

	if gameID != "" {
		record.GameID = &gameID
	}

	ctx, cancel := context.WithTimeout(ctx, sideStoreTimeout)
	defer cancel()

	if err := s.moveLog.Record(ctx, record); err != nil {
		slog.Warn("failed to record move", "error", err)
	}
}

// GetStats returns the number of logged moves per difficulty.
func (s *Service) GetStats(ctx context.Context) ([]models.DifficultyStats, error) {
	return s.moveLog.GetStats(ctx)
}
