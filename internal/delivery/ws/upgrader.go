// Package ws serves the chat widget and the moderator inquiry feed over WebSocket.
package ws

import (
	"net/http"
	"time"

	domainerrors "directorio/internal/domain/errors"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	maxFrameBytes = 4096
	writeWait     = 10 * time.Second

	// A moderator feed must answer a ping within pongWait.
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10

	// A chat socket without messages for chatIdleTimeout is closed.
	chatIdleTimeout = 5 * time.Minute
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ErrorFrame reports a failed request without closing the connection.
type ErrorFrame struct {
	Error *ErrorBody `json:"error"`
}

// ErrorBody mirrors the error object of the HTTP envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorFrame(err error) ErrorFrame {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return ErrorFrame{Error: &ErrorBody{Code: appErr.ErrorCode(), Message: appErr.Message()}}
	}

	return ErrorFrame{Error: &ErrorBody{
		Code:    domainerrors.ErrInternalError.ErrorCode(),
		Message: domainerrors.ErrInternalError.Message(),
	}}
}

func writeJSON(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(conn.WriteJSON(v))
}

// extendReadDeadline replaces the deadline inherited from the HTTP server.
func extendReadDeadline(conn *websocket.Conn, wait time.Duration) error {
	return errors.WithStack(conn.SetReadDeadline(time.Now().Add(wait)))
}
