// Package mcp exposes directory lookups as Model Context Protocol tools over SSE.
package mcp

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"directorio/config"
	"directorio/internal/domain/lifecycle"
	"directorio/internal/usecase"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"
	"github.com/ThinkInAIXYZ/go-mcp/server"
	"github.com/ThinkInAIXYZ/go-mcp/transport"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ssePath     = "/mcp/sse"
	messagePath = "/mcp/message"
)

// Server is the MCP tool server. It shares the API listener.
type Server struct {
	server  *server.Server
	handler *transport.SSEHandler
	logger  *slog.Logger
}

// ServerParams holds dependencies for the MCP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	DirectoryUC usecase.DirectoryUsecase
}

// NewServer registers the directory tools. It returns nil when MCP is disabled.
func NewServer(params ServerParams) (*Server, error) {
	if params.Config.MCP == nil || !params.Config.MCP.Enabled {
		return nil, nil
	}

	sseTransport, handler, err := transport.NewSSEServerTransportAndHandler(messagePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MCP transport")
	}

	mcpServer, err := server.NewServer(sseTransport, server.WithServerInfo(protocol.Implementation{
		Name:    params.Config.Env.ServiceName,
		Version: "1.0.0",
	}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MCP server")
	}

	tools := &directoryTools{directoryUC: params.DirectoryUC}
	if err := registerTools(mcpServer, tools); err != nil {
		return nil, err
	}

	srv := &Server{
		server:  mcpServer,
		handler: handler,
		logger:  params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := mcpServer.Run(); err != nil {
					srv.logger.Error("MCP server stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			srv.logger.Info("Shutting down MCP server")

			return errors.WithStack(mcpServer.Shutdown(shutdownCtx))
		},
	})

	return srv, nil
}

func registerTools(mcpServer *server.Server, tools *directoryTools) error {
	defs := []struct {
		name        string
		description string
		input       any
		handler     func(context.Context, *protocol.CallToolRequest) (*protocol.CallToolResult, error)
	}{
		{
			name:        toolSearchBusinesses,
			description: "Busca negocios aprobados del directorio de Gachetá por texto, categoría, zona, precio o calificación",
			input:       SearchBusinessesRequest{},
			handler:     tools.searchBusinesses,
		},
		{
			name:        toolGetBusiness,
			description: "Devuelve los datos completos de un negocio, incluido su horario y si está abierto ahora",
			input:       GetBusinessRequest{},
			handler:     tools.getBusiness,
		},
		{
			name:        toolListCategories,
			description: "Lista las categorías, zonas y rangos de precio disponibles como filtros",
			input:       ListCategoriesRequest{},
			handler:     tools.listCategories,
		},
	}

	for _, def := range defs {
		tool, err := protocol.NewTool(def.name, def.description, def.input)
		if err != nil {
			return errors.Wrapf(err, "failed to create tool %s", def.name)
		}
		mcpServer.RegisterTool(tool, def.handler)
	}

	return nil
}

// Mount adds the SSE stream and message endpoints to e.
func (s *Server) Mount(e *echo.Echo) {
	sse := s.handler.HandleSSE()
	e.GET(ssePath, func(c echo.Context) error {
		// The stream outlives the server write timeout.
		_ = http.NewResponseController(c.Response()).SetWriteDeadline(time.Time{})
		sse.ServeHTTP(c.Response(), c.Request())

		return nil
	})
	e.POST(messagePath, echo.WrapHandler(s.handler.HandleMessage()))
}
