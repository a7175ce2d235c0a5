package main

import (
	"context"
	"log/slog"
	"os"

	"directorio/config"
	"directorio/internal/delivery"
	"directorio/internal/delivery/api"
	"directorio/internal/delivery/api/middleware"
	"directorio/internal/delivery/api/router/handler"
	"directorio/internal/delivery/mcp"
	"directorio/internal/delivery/scheduler"
	"directorio/internal/delivery/ws"
	"directorio/internal/domain/service"
	"directorio/internal/infra/assistant"
	"directorio/internal/infra/auth"
	logs "directorio/internal/infra/log"
	"directorio/internal/infra/notification"
	"directorio/internal/infra/persistence/postgres"
	"directorio/internal/infra/placeholder"
	"directorio/internal/infra/pubsub"
	"directorio/internal/infra/qrcode"
	"directorio/internal/infra/storage"
	"directorio/internal/infra/tiles"
	"directorio/internal/usecase"
	"directorio/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	_ "time/tzdata"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectJobs(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			loadPromotions,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewBusinessRepository,
			postgres.NewSubmissionRepository,
			postgres.NewInquiryRepository,
			postgres.NewPromotionRepository,
			postgres.NewModeratorRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newFirebaseService,
			newQRCodeService,
			pubsub.NewEventPublisher,
			storage.NewImageStore,
			tiles.NewTileService,
			placeholder.NewRenderer,
			assistant.NewAssistant,
			impl.NewHoursEvaluator,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newQRCodeService builds share codes that point at the public front-end
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.Directory.PublicBaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryService,
			impl.NewBrowseService,
			impl.NewSubmissionService,
			impl.NewModerationService,
			impl.NewChatService,
			impl.NewPromotionService,
			impl.NewMapService,
		),
	)
}

func injectJobs() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(scheduler.BrowseJanitor, fx.ResultTags(`group:"jobs"`)),
			fx.Annotate(scheduler.PromotionRotator, fx.ResultTags(`group:"jobs"`)),
			fx.Annotate(scheduler.PromotionRefresher, fx.ResultTags(`group:"jobs"`)),
			scheduler.New,
		),
		fx.Invoke(func(*scheduler.Scheduler) {}),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDirectoryHandler,
			handler.NewBrowseHandler,
			handler.NewSubmissionHandler,
			handler.NewModerationHandler,
			handler.NewChatHandler,
			handler.NewPromotionHandler,
			handler.NewMapHandler,
			ws.NewChatSocket,
			// The hub is also the real-time notifier the chat usecase pushes inquiries to
			fx.Annotate(
				ws.NewInquiryHub,
				fx.As(fx.Self()),
				fx.As(new(service.InquiryNotifier)),
			),
			mcp.NewServer,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// loadPromotions fills the banner rotation before the first request arrives
func loadPromotions(lc fx.Lifecycle, promotions usecase.PromotionUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := promotions.Refresh(ctx); err != nil {
				logger.Warn("Starting without promotions", slog.Any("error", err))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
