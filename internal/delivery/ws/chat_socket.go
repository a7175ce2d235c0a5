package ws

import (
	"encoding/json"
	"log/slog"

	deliverycontext "directorio/internal/delivery/context"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatSocketParams holds dependencies for ChatSocket, injected by Fx.
type ChatSocketParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatSocket answers chat messages over a WebSocket, one reply frame per message frame.
type ChatSocket struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// ChatFrame is a message typed by a visitor
type ChatFrame struct {
	Message string `json:"message"`
}

// NewChatSocket is the constructor for ChatSocket
func NewChatSocket(params ChatSocketParams) *ChatSocket {
	return &ChatSocket{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// Serve handles GET /ws/chat
func (s *ChatSocket) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the client.
		return nil
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameBytes)

	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	for {
		if err := extendReadDeadline(conn, chatIdleTimeout); err != nil {
			return nil
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("Chat socket closed unexpectedly", slog.Any("error", err))
			}

			return nil
		}

		var frame ChatFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			if err := writeJSON(conn, errorFrame(domainerrors.ErrInvalidInput)); err != nil {
				return nil
			}

			continue
		}

		var out any
		reply, err := s.chatUC.Reply(ctx, frame.Message)
		if err != nil {
			out = errorFrame(err)
		} else {
			out = reply
		}

		if err := writeJSON(conn, out); err != nil {
			log.Warn("Failed to write chat reply", slog.Any("error", err))

			return nil
		}
	}
}
