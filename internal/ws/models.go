package ws

import (
	"encoding/json"
)

const (
	EventValidMoves = "valid_moves"
	EventPlayerMove = "player_move"
	EventBotMove    = "bot_move"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}
