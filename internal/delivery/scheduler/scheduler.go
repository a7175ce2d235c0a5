// Package scheduler runs the periodic jobs of the directory on the fx lifecycle.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Job is a task run every Interval until the application stops.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context)
}

// Params defines the scheduler dependencies
type Params struct {
	fx.In
	fx.Lifecycle

	Jobs   []Job `group:"jobs"`
	Logger *slog.Logger
}

// Scheduler owns one ticker goroutine per job.
type Scheduler struct {
	jobs   []Job
	logger *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New validates the jobs and starts them with the application.
func New(params Params) (*Scheduler, error) {
	for _, job := range params.Jobs {
		if job.Interval <= 0 {
			return nil, errors.Errorf("job %q has non-positive interval %s", job.Name, job.Interval)
		}
		if job.Run == nil {
			return nil, errors.Errorf("job %q has no run function", job.Name)
		}
	}

	s := &Scheduler{jobs: params.Jobs, logger: params.Logger}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})

	return s, nil
}

// Start launches every job. The first run happens one interval after start.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, job)
	}

	s.logger.Info("Scheduler started", slog.Int("jobs", len(s.jobs)))
}

// Stop cancels the jobs and waits for running ones until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler stop timed out")
	}
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.run(ctx, job)
		}
	}
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Job panicked", slog.String("job", job.Name), slog.Any("panic", r))
		}
	}()

	job.Run(ctx)
}
