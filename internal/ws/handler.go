package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/checkers/internal/models"
	"github.com/lk16/checkers/internal/play"
)

const (
	requestTimeout = 5 * time.Second
)

// Conn is the part of a websocket connection the handler uses.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	service *play.Service
	ws      Conn
	gameID  string
}

// NewHandler creates a new Handler for one game.
func NewHandler(ws Conn, service *play.Service, gameID string) *Handler {
	return &Handler{service: service, ws: ws, gameID: gameID}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "game", h.gameID, "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "game", h.gameID, "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(ctx context.Context, req *Incoming) (any, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case EventState:
		session, err := h.service.Get(ctx, h.gameID)
		if err != nil {
			return nil, err
		}
		return models.NewGameView(session), nil
	case EventClick:
		return h.handleClick(ctx, req)
	case EventUndo:
		session, err := h.service.Undo(ctx, h.gameID)
		if err != nil {
			return nil, err
		}
		return models.NewGameView(session), nil
	case EventRestart:
		session, err := h.service.Restart(ctx, h.gameID)
		if err != nil {
			return nil, err
		}
		return models.NewGameView(session), nil
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

func (h *Handler) handleClick(ctx context.Context, req *Incoming) (any, error) {
	var click models.ClickRequest
	if err := json.Unmarshal(req.Data, &click); err != nil {
		return nil, fmt.Errorf("ws click request unmarshal error: %w", err)
	}

	cell, err := click.Index()
	if err != nil {
		return nil, err
	}

	result, session, err := h.service.Click(ctx, h.gameID, cell)
	if err != nil {
		return nil, err
	}

	return models.NewClickResponse(result, session), nil
}

// Handle serves requests until the connection fails. Errors from a request are sent back to
// the client and do not close the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		data, err := h.handleMessage(ctx, req)
		cancel()

		outgoing := &Outgoing{ID: req.ID, Data: data}
		if err != nil {
			outgoing = &Outgoing{ID: req.ID, Error: err.Error()}
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}
