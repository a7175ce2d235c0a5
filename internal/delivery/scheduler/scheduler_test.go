package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsJobsUntilStopped(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	var ticks, panics atomic.Int32

	_, err := New(Params{
		Lifecycle: lc,
		Logger:    discardLogger(),
		Jobs: []Job{
			{Name: "count", Interval: 5 * time.Millisecond, Run: func(context.Context) { ticks.Add(1) }},
			{Name: "explode", Interval: 5 * time.Millisecond, Run: func(context.Context) {
				panics.Add(1)
				panic("boom")
			}},
		},
	})
	require.NoError(t, err)

	lc.RequireStart()
	assert.Eventually(t, func() bool { return ticks.Load() >= 3 && panics.Load() >= 2 }, time.Second, 5*time.Millisecond)
	lc.RequireStop()

	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
}

func TestNew_RejectsInvalidJobs(t *testing.T) {
	tests := []struct {
		name string
		job  Job
	}{
		{name: "zero interval", job: Job{Name: "a", Run: func(context.Context) {}}},
		{name: "no run", job: Job{Name: "b", Interval: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Logger: discardLogger(), Jobs: []Job{tt.job}})
			require.Error(t, err)
		})
	}
}
