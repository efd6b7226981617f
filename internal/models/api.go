package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/othello"
)

var (
	ErrInvalidBoard  = errors.New("invalid board")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrInvalidGameID = errors.New("invalid game id")
)

// GameRequest holds the fields shared by all requests about a board.
type GameRequest struct {
	GameID string  `json:"game_id"`
	Board  [][]int `json:"board"`
	Player int     `json:"player"`
}

// Validate checks the structure of the request and converts the board and player.
func (r *GameRequest) Validate() (othello.Board, othello.Color, error) {
	board, err := ParseBoard(r.Board)
	if err != nil {
		return othello.Board{}, othello.EMPTY, err
	}

	if r.Player != int(othello.BLACK) && r.Player != int(othello.WHITE) {
		return othello.Board{}, othello.EMPTY, fmt.Errorf("%w: %d", ErrInvalidPlayer, r.Player)
	}
	player := othello.Color(r.Player)

	if r.GameID != "" {
		if _, err = uuid.Parse(r.GameID); err != nil {
			return othello.Board{}, othello.EMPTY, fmt.Errorf("%w: %s", ErrInvalidGameID, r.GameID)
		}
	}

	return board, player, nil
}

// ParseBoard converts a JSON board into an othello.Board.
func ParseBoard(rows [][]int) (othello.Board, error) {
	var board othello.Board

	if len(rows) != othello.Size {
		return board, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, othello.Size, len(rows))
	}

	for row, cols := range rows {
		if len(cols) != othello.Size {
			return board, fmt.Errorf("%w: row %d has %d columns", ErrInvalidBoard, row, len(cols))
		}

		for col, value := range cols {
			if value < int(othello.EMPTY) || value > int(othello.WHITE) {
				return board, fmt.Errorf("%w: square (%d,%d) has value %d", ErrInvalidBoard, row, col, value)
			}
			board[row][col] = othello.Color(value)
		}
	}

	return board, nil
}

// BoardRows converts a board into its JSON shape. It is the inverse of ParseBoard.
func BoardRows(board othello.Board) [][]int {
	rows := make([][]int, othello.Size)
	for row := 0; row < othello.Size; row++ {
		rows[row] = make([]int, othello.Size)
		for col := 0; col < othello.Size; col++ {
			rows[row][col] = int(board[row][col])
		}
	}
	return rows
}

// MoveRequest is a move played by a human player.
type MoveRequest struct {
	GameRequest
	Row int `json:"row"`
	Col int `json:"col"`
}

// BotMoveRequest asks the bot to move for player.
type BotMoveRequest struct {
	GameRequest
	Difficulty int `json:"difficulty"`
}

// GameState describes the board after a move.
type GameState struct {
	Board      othello.Board  `json:"board"`
	NextPlayer othello.Color  `json:"next_player"`
	ValidMoves []othello.Move `json:"valid_moves"`
	GameOver   bool           `json:"game_over"`
	Black      int            `json:"black"`
	White      int            `json:"white"`
}

// NewGameState builds the state of board after mover has moved.
func NewGameState(board othello.Board, mover othello.Color) GameState {
	state := GameState{
		Board:      board,
		NextPlayer: othello.EMPTY,
		ValidMoves: []othello.Move{},
		Black:      board.CountDiscs(othello.BLACK),
		White:      board.CountDiscs(othello.WHITE),
	}

	next, ok := board.NextTurn(mover)
	if !ok {
		state.GameOver = true
		return state
	}

	state.NextPlayer = next
	state.ValidMoves = board.GetValidMoves(next)
	return state
}

// NewGameResponse is returned when a game is started.
type NewGameResponse struct {
	GameID     string         `json:"game_id"`
	Board      othello.Board  `json:"board"`
	Player     othello.Color  `json:"player"`
	ValidMoves []othello.Move `json:"valid_moves"`
}

// ValidMovesResponse lists the valid moves of a player.
type ValidMovesResponse struct {
	Moves []othello.Move `json:"moves"`
}

// MoveResponse is returned after a human move.
type MoveResponse struct {
	GameState
	Flipped int `json:"flipped"`
}

// BotMoveResponse is returned after a bot move.
type BotMoveResponse struct {
	GameState
	Move othello.Move `json:"move"`
}

// MoveRecord is a row of the move log.
type MoveRecord struct {
	GameID     *string `db:"game_id"`
	Player     int     `db:"player"`
	Row        int     `db:"move_row"`
	Col        int     `db:"move_col"`
	Flipped    int     `db:"flipped"`
	Difficulty *int    `db:"difficulty"`
	DiscCount  int     `db:"disc_count"`
}

// DifficultyStats counts logged moves per difficulty. Difficulty 0 holds human moves.
type DifficultyStats struct {
	Difficulty int `json:"difficulty" db:"difficulty"`
	Moves      int `json:"moves"      db:"moves"`
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
