package othello

import "fmt"

// Move is a square to play on. Score is only set by the search.
type Move struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Score int `json:"score"`
}

// NoMove is returned when a player has no valid moves.
var NoMove = Move{Row: -1, Col: -1}

// IsNoMove returns whether m is the NoMove sentinel.
func (m Move) IsNoMove() bool {
	return m.Row == NoMove.Row && m.Col == NoMove.Col
}

// String returns the move as "(row,col)".
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
