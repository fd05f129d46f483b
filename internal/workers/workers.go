package workers

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/service"
)

type Workers struct {
	cron *cron.Cron

	logger *logger.Logger
}

// NewWorkers schedules every background job. Specs use six fields, the first
// one being seconds. A run that is still in progress when its next tick
// arrives makes that tick a no-op.
func NewWorkers(services *service.Services, recorder JobRecorder, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	w := newWorkers(logger)

	cleanup := NewUserCleanupJob(services.UserCleanupService, recorder, logger)
	if err := w.schedule(cfg.UserCleanupSchedule, cleanup); err != nil {
		return nil, err
	}

	return w, nil
}

func newWorkers(logger *logger.Logger) *Workers {
	cl := cronLogger{logger: logger}
	return &Workers{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

func (w *Workers) schedule(spec string, worker Worker) error {
	if _, err := w.cron.AddJob(spec, worker); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchedule, spec, err)
	}
	return nil
}

// Run starts the scheduler in its own goroutine.
func (w *Workers) Run() {
	w.logger.Info().Int("jobs", len(w.cron.Entries())).Msg("starting background workers")
	w.cron.Start()
}

// Stop stops scheduling and waits for running jobs or for ctx, whichever
// ends first.
func (w *Workers) Stop(ctx context.Context) error {
	done := w.cron.Stop()

	select {
	case <-done.Done():
		w.logger.Info().Msg("background workers stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
