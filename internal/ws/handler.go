package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
)

// Conn is the part of a websocket connection used by Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	service *game.Service
	ws      Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, service *game.Service) *Handler {
	return &Handler{service: service, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	var req Incoming
	if err = json.Unmarshal(msg, &req); err != nil {
		// Malformed messages are answered like messages without an event.
		return &Incoming{Event: ""}, nil
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// HandleMessage computes the answer to a single message. Errors are reported
// in the answer, they never close the connection.
func (h *Handler) HandleMessage(ctx context.Context, req *Incoming) *Outgoing {
	data, err := h.handleMessage(ctx, req)
	if err != nil {
		return &Outgoing{ID: req.ID, Error: err.Error()}
	}

	return &Outgoing{ID: req.ID, Data: data}
}

func (h *Handler) handleMessage(ctx context.Context, req *Incoming) (any, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case EventValidMoves:
		var reqData models.GameRequest
		if err := json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("invalid %s data: %w", req.Event, err)
		}
		return h.service.ValidMoves(reqData)
	case EventPlayerMove:
		var reqData models.MoveRequest
		if err := json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("invalid %s data: %w", req.Event, err)
		}
		return h.service.PlayerMove(ctx, reqData)
	case EventBotMove:
		var reqData models.BotMoveRequest
		if err := json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("invalid %s data: %w", req.Event, err)
		}
		return h.service.BotMove(ctx, reqData)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection until it is closed.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData := h.HandleMessage(context.Background(), req)

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}
