package scheduler

import (
	"context"
	"log/slog"
	"time"

	"directorio/config"
	"directorio/internal/usecase"
)

// BrowseJanitor closes browse sessions idle for longer than the session TTL.
func BrowseJanitor(browse usecase.BrowseUsecase, cfg *config.Config, logger *slog.Logger) Job {
	ttl := cfg.Directory.SessionTTL

	return Job{
		Name:     "browse-janitor",
		Interval: cfg.Directory.JanitorInterval,
		Run: func(context.Context) {
			if n := browse.EvictIdle(time.Now().Add(-ttl)); n > 0 {
				logger.Info("Evicted idle browse sessions", slog.Int("count", n))
			}
		},
	}
}

// PromotionRotator advances the banner on display.
func PromotionRotator(promotions usecase.PromotionUsecase, cfg *config.Config) Job {
	return Job{
		Name:     "promotion-rotator",
		Interval: cfg.Promotions.RotationInterval,
		Run:      func(context.Context) { promotions.Rotate() },
	}
}

// PromotionRefresher reloads the running promotions.
func PromotionRefresher(promotions usecase.PromotionUsecase, cfg *config.Config) Job {
	return Job{
		Name:     "promotion-refresher",
		Interval: cfg.Promotions.RefreshInterval,
		Run: func(ctx context.Context) {
			// Refresh logs its own failures.
			_ = promotions.Refresh(ctx)
		},
	}
}
