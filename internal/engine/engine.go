package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lk16/reversi/internal/othello"
)

var ErrInvalidMove = errors.New("invalid move")

// NewGameBoard returns the starting board.
func NewGameBoard() othello.Board {
	return othello.NewBoardStart()
}

// ValidMoves returns the valid moves of player in row-major order.
func ValidMoves(board othello.Board, player othello.Color) []othello.Move {
	return board.GetValidMoves(player)
}

// ApplyPlayerMove validates the move and returns the board after it was played.
// The input board is never modified.
func ApplyPlayerMove(board othello.Board, row, col int, player othello.Color) (othello.Board, error) {
	result, _, err := applyPlayerMove(board, row, col, player)
	return result, err
}

// ApplyPlayerMoveFlipped works like ApplyPlayerMove and also returns the number of flipped discs.
func ApplyPlayerMoveFlipped(board othello.Board, row, col int, player othello.Color) (othello.Board, int, error) {
	return applyPlayerMove(board, row, col, player)
}

func applyPlayerMove(board othello.Board, row, col int, player othello.Color) (othello.Board, int, error) {
	if !board.IsValidMove(row, col, player) {
		return board, 0, fmt.Errorf("%w: (%d,%d) for %s", ErrInvalidMove, row, col, player)
	}

	flipped := board.DoMove(row, col, player)
	return board, flipped, nil
}

// BotMove picks a move for player at the given difficulty and plays it. If
// player has no valid moves othello.NoMove is returned with the board unchanged.
func BotMove(board othello.Board, player othello.Color, difficulty int) (othello.Move, othello.Board) {
	move := othello.ChooseMove(board, player, difficulty)
	return move, PlayMove(board, move, player)
}

// PlayMove plays a move previously chosen for player. NoMove leaves the board unchanged.
func PlayMove(board othello.Board, move othello.Move, player othello.Color) othello.Board {
	if move.IsNoMove() {
		slog.Debug("bot has no move", "player", player, "board", board.String())
		return board
	}

	flipped := board.DoMove(move.Row, move.Col, player)
	slog.Debug("bot move", "player", player, "move", move.String(), "score", move.Score, "flipped", flipped)
	return board
}
