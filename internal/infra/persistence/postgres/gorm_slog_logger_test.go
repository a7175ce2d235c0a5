package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"directorio/config"
	deliverycontext "directorio/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestQueryLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name     string
		debug    bool
		elapsed  time.Duration
		err      error
		contains string
	}{
		{name: "failed query", err: errors.New("no such table"), contains: "Database query failed"},
		{name: "record not found is silent", err: gorm.ErrRecordNotFound},
		{name: "slow query", elapsed: time.Second, contains: "Slow database query"},
		{name: "fast query hidden without debug"},
		{name: "fast query in debug", debug: true, contains: "Database query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			ql := newGormSlogLogger(base, cfg)
			ql.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.contains == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	ql := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{
		Database: &config.DatabaseConfig{SlowQueryThreshold: time.Millisecond},
	})

	requestLogger := slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	ql.Trace(ctx, time.Now().Add(-10*time.Millisecond), func() (string, int64) { return "SELECT 2", 0 }, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
	assert.Contains(t, scoped.String(), "Slow database query")
}
