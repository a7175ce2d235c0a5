// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"directorio/internal/delivery/api/middleware"
	"directorio/internal/delivery/api/router/handler"
	"directorio/internal/delivery/mcp"
	"directorio/internal/delivery/ws"
	"directorio/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DirectoryHandler  *handler.DirectoryHandler
	BrowseHandler     *handler.BrowseHandler
	SubmissionHandler *handler.SubmissionHandler
	ModerationHandler *handler.ModerationHandler
	ChatHandler       *handler.ChatHandler
	PromotionHandler  *handler.PromotionHandler
	MapHandler        *handler.MapHandler
	ChatSocket        *ws.ChatSocket
	InquiryHub        *ws.InquiryHub
	MCPServer         *mcp.Server `optional:"true"`
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	directoryHandler  *handler.DirectoryHandler
	browseHandler     *handler.BrowseHandler
	submissionHandler *handler.SubmissionHandler
	moderationHandler *handler.ModerationHandler
	chatHandler       *handler.ChatHandler
	promotionHandler  *handler.PromotionHandler
	mapHandler        *handler.MapHandler
	chatSocket        *ws.ChatSocket
	inquiryHub        *ws.InquiryHub
	mcpServer         *mcp.Server
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		directoryHandler:  params.DirectoryHandler,
		browseHandler:     params.BrowseHandler,
		submissionHandler: params.SubmissionHandler,
		moderationHandler: params.ModerationHandler,
		chatHandler:       params.ChatHandler,
		promotionHandler:  params.PromotionHandler,
		mapHandler:        params.MapHandler,
		chatSocket:        params.ChatSocket,
		inquiryHub:        params.InquiryHub,
		mcpServer:         params.MCPServer,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public directory
	apiV1.GET("/catalogue", r.directoryHandler.Catalogue)
	businessesGroup := apiV1.Group("/businesses")
	{
		businessesGroup.GET("", r.directoryHandler.ListBusinesses)
		businessesGroup.GET("/nearby", r.directoryHandler.Nearby)
		businessesGroup.GET("/map", r.directoryHandler.Map)
		businessesGroup.GET("/:id", r.directoryHandler.GetBusiness)
		businessesGroup.GET("/:id/qr.png", r.directoryHandler.ShareCode)
		businessesGroup.GET("/:id/tile", r.mapHandler.BusinessTile)
	}

	// Map assets
	apiV1.GET("/tiles/:z/:x/:y", r.mapHandler.Tile)
	apiV1.GET("/categories/:category/placeholder.png", r.mapHandler.Placeholder)

	// Browse sessions
	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.browseHandler.Open)
		sessionsGroup.GET("/:id", r.browseHandler.Snapshot)
		sessionsGroup.DELETE("/:id", r.browseHandler.Close)
		sessionsGroup.PATCH("/:id/filter", r.browseHandler.SetFilter)
		sessionsGroup.DELETE("/:id/filter", r.browseHandler.ClearFilters)
		sessionsGroup.PATCH("/:id/staged", r.browseHandler.StageFilter)
		sessionsGroup.DELETE("/:id/staged", r.browseHandler.DiscardStaged)
		sessionsGroup.POST("/:id/staged/apply", r.browseHandler.ApplyStaged)
		sessionsGroup.POST("/:id/refresh", r.browseHandler.Refresh)
		sessionsGroup.POST("/:id/more", r.browseHandler.LoadMore)
		sessionsGroup.PUT("/:id/favorites/:businessId", r.browseHandler.ToggleFavorite)
		sessionsGroup.GET("/:id/businesses/:businessId", r.browseHandler.View)
	}

	// Public submissions, chat and banners
	apiV1.POST("/submissions", r.submissionHandler.Submit)
	apiV1.POST("/chat", r.chatHandler.Reply)
	apiV1.POST("/inquiries", r.chatHandler.SubmitInquiry)
	apiV1.GET("/promotions", r.promotionHandler.ListActive)
	apiV1.GET("/promotions/current", r.promotionHandler.Current)

	// Auth routes
	apiV1.POST("/auth/login", r.moderationHandler.Login)

	// Moderation routes require authentication and the "moderator" role
	moderationGroup := apiV1.Group("/moderation")
	moderationGroup.Use(r.authMiddleware.Authenticate)
	moderationGroup.Use(r.authMiddleware.RequireRole(entity.RoleModerator))
	{
		moderationGroup.POST("/moderators", r.moderationHandler.CreateModerator)
		moderationGroup.GET("/businesses", r.moderationHandler.ListPending)
		moderationGroup.POST("/businesses/:id/approve", r.moderationHandler.Approve)
		moderationGroup.DELETE("/businesses/:id", r.moderationHandler.Reject)
		moderationGroup.GET("/inquiries", r.moderationHandler.ListInquiries)
		moderationGroup.POST("/inquiries/:id/handled", r.moderationHandler.MarkInquiryHandled)
		moderationGroup.POST("/promotions", r.promotionHandler.Create)
		moderationGroup.DELETE("/promotions/:id", r.promotionHandler.Delete)
	}

	// WebSocket routes
	e.GET("/ws/chat", r.chatSocket.Serve)
	e.GET("/ws/moderation/inquiries", r.inquiryHub.Serve,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleModerator))
}

// RegisterToolRoutes mounts the MCP endpoints when they are enabled.
func (r *router) RegisterToolRoutes(e *echo.Echo) {
	if r.mcpServer != nil {
		r.mcpServer.Mount(e)
	}
}
