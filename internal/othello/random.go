package othello

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// GetRandomMove returns a uniformly random valid move for player, or NoMove.
func GetRandomMove(board Board, player Color) Move {
	moves := board.GetValidMoves(player)
	if len(moves) == 0 {
		return NoMove
	}

	return moves[rand.Intn(len(moves))]
}

// ChooseMove picks a move for player according to the difficulty level.
func ChooseMove(board Board, player Color, difficulty int) Move {
	depth, ok := SearchDepth(difficulty)
	if !ok {
		return GetRandomMove(board, player)
	}

	return GetBestMove(board, depth, player)
}

// NewBoardRandom plays random moves from the start until the board holds the
// given number of discs. It returns the board and the color to move.
func NewBoardRandom(discs int) (Board, Color, error) {
	if discs < 4 || discs > Squares {
		return Board{}, EMPTY, fmt.Errorf("invalid number of discs: %d", discs)
	}

	board := NewBoardStart()
	turn := BLACK

	for board.CountDiscs(BLACK)+board.CountDiscs(WHITE) < discs {
		move := GetRandomMove(board, turn)
		if move.IsNoMove() {
			// Game ended early, start over.
			board = NewBoardStart()
			turn = BLACK
			continue
		}

		board.DoMove(move.Row, move.Col, turn)

		next, ok := board.NextTurn(turn)
		if !ok {
			if board.CountDiscs(BLACK)+board.CountDiscs(WHITE) == discs {
				break
			}
			board = NewBoardStart()
			turn = BLACK
			continue
		}
		turn = next
	}

	return board, turn, nil
}
