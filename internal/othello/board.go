package othello

import (
	"fmt"
	"strings"
)

// Color is the state of a square, or the color of a player.
type Color int8

const (
	EMPTY Color = 0
	BLACK Color = 1
	WHITE Color = 2
)

const (
	Size    = 8
	Squares = Size * Size

	// MaxMoves is the number of squares that can ever be empty.
	MaxMoves = Squares - 4
)

// directions holds the (row, col) steps of the 8 compass directions.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Opponent returns the opponent color.
func (c Color) Opponent() Color {
	return BLACK + WHITE - c
}

// IsPlayer returns whether c is BLACK or WHITE.
func (c Color) IsPlayer() bool {
	return c == BLACK || c == WHITE
}

// String returns the name of the color.
func (c Color) String() string {
	switch c {
	case BLACK:
		return "black"
	case WHITE:
		return "white"
	case EMPTY:
		return "empty"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Board is an 8x8 Othello board, indexed by row then column.
type Board [Size][Size]Color

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() Board {
	var b Board
	b[3][3] = WHITE
	b[4][4] = WHITE
	b[3][4] = BLACK
	b[4][3] = BLACK
	return b
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString creates a board from its string representation.
func NewBoardFromString(s string) (Board, error) {
	var b Board

	if len(s) != Squares {
		return Board{}, fmt.Errorf("board string must be %d characters long, got %d", Squares, len(s))
	}

	for i, r := range strings.ToUpper(s) {
		switch r {
		case '-':
			b[i/Size][i%Size] = EMPTY
		case 'X':
			b[i/Size][i%Size] = BLACK
		case 'O':
			b[i/Size][i%Size] = WHITE
		default:
			return Board{}, fmt.Errorf("invalid square %q at index %d", r, i)
		}
	}

	return b, nil
}

// InBounds returns whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// IsValidMove checks if player may place a disc at (row, col).
func (b Board) IsValidMove(row, col int, player Color) bool {
	if !InBounds(row, col) || b[row][col] != EMPTY {
		return false
	}

	for _, dir := range directions {
		if b.flanks(row, col, dir, player) > 0 {
			return true
		}
	}

	return false
}

// flanks returns the length of the opponent run that starts next to (row, col)
// in direction dir and is closed by a disc of player. It returns 0 if the run
// is empty or ends on an empty square or the edge of the board.
func (b *Board) flanks(row, col int, dir [2]int, player Color) int {
	opponent := player.Opponent()

	r, c := row+dir[0], col+dir[1]
	run := 0

	for InBounds(r, c) && b[r][c] == opponent {
		r += dir[0]
		c += dir[1]
		run++
	}

	if run == 0 || !InBounds(r, c) || b[r][c] != player {
		return 0
	}

	return run
}

// GetValidMoves returns all valid moves for player in row-major order.
func (b Board) GetValidMoves(player Color) []Move {
	moves := make([]Move, 0, 16)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.IsValidMove(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

// HasMoves checks if player has at least one valid move.
func (b Board) HasMoves(player Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.IsValidMove(row, col, player) {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns whether neither player can move.
func (b Board) IsGameOver() bool {
	return !b.HasMoves(BLACK) && !b.HasMoves(WHITE)
}

// DoMove places a disc of player at (row, col) and flips every flanked
// opponent run. It returns the number of flipped discs. The move is not
// validated: playing an invalid move places the disc and flips nothing.
func (b *Board) DoMove(row, col int, player Color) int {
	b[row][col] = player

	flipped := 0
	for _, dir := range directions {
		run := b.flanks(row, col, dir, player)
		for s := 1; s <= run; s++ {
			b[row+s*dir[0]][col+s*dir[1]] = player
		}
		flipped += run
	}

	return flipped
}

// CountDiscs returns the number of discs of the given color.
func (b Board) CountDiscs(color Color) int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == color {
				count++
			}
		}
	}
	return count
}

// NextTurn returns who moves after player has moved, taking passes into account.
// The second return value is false if the game is over.
func (b Board) NextTurn(player Color) (Color, bool) {
	opponent := player.Opponent()

	if b.HasMoves(opponent) {
		return opponent, true
	}

	if b.HasMoves(player) {
		return player, true
	}

	return EMPTY, false
}

// ASCIIArtLines returns the ascii art lines for the board, with the valid
// moves of player marked.
func (b Board) ASCIIArtLines(player Color) []string {
	lines := make([]string, Size+2)

	lines[0] = "+-0-1-2-3-4-5-6-7-+"
	for row := 0; row < Size; row++ {
		line := fmt.Sprintf("%d ", row)

		for col := 0; col < Size; col++ {
			switch {
			case b[row][col] == WHITE:
				line += "○ "
			case b[row][col] == BLACK:
				line += "● "
			case b.IsValidMove(row, col, player):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print(player Color) {
	for _, line := range b.ASCIIArtLines(player) {
		fmt.Println(line)
	}
}

// String returns the string representation of the board.
func (b Board) String() string {
	var builder strings.Builder
	builder.Grow(Squares)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case BLACK:
				builder.WriteByte('X')
			case WHITE:
				builder.WriteByte('O')
			default:
				builder.WriteByte('-')
			}
		}
	}

	return builder.String()
}
