package engine

import (
	"testing"

	"github.com/lk16/reversi/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestNewGameBoard(t *testing.T) {
	board := NewGameBoard()

	require.Equal(t, othello.WHITE, board[3][3])
	require.Equal(t, othello.WHITE, board[4][4])
	require.Equal(t, othello.BLACK, board[3][4])
	require.Equal(t, othello.BLACK, board[4][3])
	require.Equal(t, 60, board.CountDiscs(othello.EMPTY))
}

func TestValidMoves(t *testing.T) {
	moves := ValidMoves(NewGameBoard(), othello.BLACK)

	require.Equal(t, []othello.Move{
		{Row: 2, Col: 3},
		{Row: 3, Col: 2},
		{Row: 4, Col: 5},
		{Row: 5, Col: 4},
	}, moves)
}

func TestApplyPlayerMove(t *testing.T) {
	board := NewGameBoard()

	result, err := ApplyPlayerMove(board, 2, 3, othello.BLACK)
	require.NoError(t, err)

	require.Equal(t, othello.BLACK, result[3][3])
	require.Equal(t, 4, result.CountDiscs(othello.BLACK))
	require.Equal(t, 1, result.CountDiscs(othello.WHITE))

	// The input board is not modified.
	require.Equal(t, NewGameBoard(), board)
}

func TestApplyPlayerMove_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"occupied", 3, 3},
		{"no flips", 0, 0},
		{"out of range", 8, 8},
		{"negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewGameBoard()

			result, err := ApplyPlayerMove(board, tt.row, tt.col, othello.BLACK)
			require.ErrorIs(t, err, ErrInvalidMove)
			require.Equal(t, NewGameBoard(), result)
		})
	}
}

func TestApplyPlayerMoveFlipped(t *testing.T) {
	_, flipped, err := ApplyPlayerMoveFlipped(NewGameBoard(), 5, 4, othello.BLACK)
	require.NoError(t, err)
	require.Equal(t, 1, flipped)
}

func TestBotMove(t *testing.T) {
	for _, difficulty := range []int{1, 2, 3, 7} {
		board := NewGameBoard()

		move, result := BotMove(board, othello.BLACK, difficulty)

		require.True(t, board.IsValidMove(move.Row, move.Col, othello.BLACK), "difficulty %d", difficulty)
		require.Equal(t, othello.BLACK, result[move.Row][move.Col])
		require.Equal(t, 4, result.CountDiscs(othello.BLACK))
		require.Equal(t, 1, result.CountDiscs(othello.WHITE))
	}
}

func TestBotMove_Deterministic(t *testing.T) {
	board := NewGameBoard()

	first, firstBoard := BotMove(board, othello.BLACK, othello.DifficultyMedium)
	second, secondBoard := BotMove(board, othello.BLACK, othello.DifficultyMedium)

	require.Equal(t, first, second)
	require.Equal(t, firstBoard, secondBoard)
}

func TestBotMove_NoMove(t *testing.T) {
	board := othello.NewBoardEmpty()
	board[0][0] = othello.BLACK
	board[0][1] = othello.WHITE

	for _, difficulty := range []int{1, 2, 3} {
		move, result := BotMove(board, othello.WHITE, difficulty)

		require.Equal(t, othello.NoMove, move)
		require.Equal(t, board, result)
	}
}
