package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"directorio/internal/domain/entity"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	broadcastBuffer    = 32
	inquiryCreatedType = "inquiry.created"
)

// InquiryFrame is pushed to moderators when a visitor leaves an inquiry
type InquiryFrame struct {
	Type    string          `json:"type"`
	Inquiry *entity.Inquiry `json:"inquiry"`
}

// InquiryHubParams holds dependencies for InquiryHub, injected by Fx.
type InquiryHubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// InquiryHub fans new inquiries out to every connected moderator.
// All writes to moderator connections happen on the hub goroutine.
type InquiryHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan *entity.Inquiry
	done       chan struct{}
	stopped    chan struct{}
	mu         sync.Mutex
	logger     *slog.Logger
}

// NewInquiryHub creates the hub and runs it for the lifetime of the application.
func NewInquiryHub(params InquiryHubParams) *InquiryHub {
	hub := &InquiryHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan *entity.Inquiry, broadcastBuffer),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
		logger:     params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go hub.run()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(hub.done)
			select {
			case <-hub.stopped:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return hub
}

// NotifyInquiry queues inquiry for delivery. It never blocks the caller.
func (h *InquiryHub) NotifyInquiry(inquiry *entity.Inquiry) {
	select {
	case h.broadcast <- inquiry:
	default:
		h.logger.Warn("Inquiry feed is full, dropping notification", slog.String("inquiryID", inquiry.ID.String()))
	}
}

// ClientCount returns the number of connected moderators.
func (h *InquiryHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Serve handles GET /ws/moderation/inquiries
func (h *InquiryHub) Serve(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil
	}
	conn.SetReadLimit(maxFrameBytes)
	if err := extendReadDeadline(conn, pongWait); err != nil {
		conn.Close()

		return nil
	}
	conn.SetPongHandler(func(string) error {
		return extendReadDeadline(conn, pongWait)
	})

	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()

		return nil
	}

	// Moderators only listen; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	select {
	case h.unregister <- conn:
	case <-h.done:
	}

	return nil
}

func (h *InquiryHub) run() {
	defer close(h.stopped)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case inquiry := <-h.broadcast:
			frame := InquiryFrame{Type: inquiryCreatedType, Inquiry: inquiry}
			h.mu.Lock()
			for conn := range h.clients {
				if err := writeJSON(conn, frame); err != nil {
					h.logger.Warn("Dropping moderator connection", slog.Any("error", err))
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()

		case <-ticker.C:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				conn.Close()
				delete(h.clients, conn)
			}
			h.mu.Unlock()

			return
		}
	}
}
