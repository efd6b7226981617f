package othello

import (
	"errors"
	"fmt"
)

var ErrGameOver = errors.New("game is over")

// Game represents an Othello game, either complete or in progress.
type Game struct {
	// moves is the list of moves in the game, passes are not stored.
	moves []Move

	// players holds the color that played each move in moves.
	players []Color

	// start board is the board before any move is played.
	start Board

	// first is the color that moves first from start.
	first Color
}

// NewGameWithStart creates a new empty game with a custom start board.
func NewGameWithStart(start Board, first Color) *Game {
	return &Game{
		moves:   make([]Move, 0, MaxMoves),
		players: make([]Color, 0, MaxMoves),
		start:   start,
		first:   first,
	}
}

// NewGame creates a new empty game, black moves first.
func NewGame() *Game {
	return NewGameWithStart(NewBoardStart(), BLACK)
}

// GetBoard returns the last board in the game.
func (g *Game) GetBoard() Board {
	board := g.start

	for i, move := range g.moves {
		board.DoMove(move.Row, move.Col, g.players[i])
	}

	return board
}

// Turn returns the color to move. The second return value is false if the game is over.
func (g *Game) Turn() (Color, bool) {
	board := g.GetBoard()

	if len(g.moves) == 0 {
		if board.HasMoves(g.first) {
			return g.first, true
		}
		if board.HasMoves(g.first.Opponent()) {
			return g.first.Opponent(), true
		}
		return EMPTY, false
	}

	return board.NextTurn(g.players[len(g.players)-1])
}

// PushMove appends a move for the player to move. Passes are applied implicitly.
func (g *Game) PushMove(move Move) error {
	turn, ok := g.Turn()
	if !ok {
		return ErrGameOver
	}

	board := g.GetBoard()
	if !board.IsValidMove(move.Row, move.Col, turn) {
		return fmt.Errorf("invalid move %s for %s", move, turn)
	}

	g.moves = append(g.moves, move)
	g.players = append(g.players, turn)
	return nil
}

// Moves returns a copy of the moves played so far.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.moves))
	copy(moves, g.moves)
	return moves
}
