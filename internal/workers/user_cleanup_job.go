package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/service"
)

const userCleanupJobName = "user_cleanup"

// defaultJobTimeout bounds a single cleanup run.
const defaultJobTimeout = 5 * time.Minute

// UserCleanupJob removes accounts that were never activated.
type UserCleanupJob struct {
	service  service.UserCleanupService
	recorder JobRecorder
	timeout  time.Duration

	logger *logger.Logger
}

func NewUserCleanupJob(service service.UserCleanupService, recorder JobRecorder, logger *logger.Logger) *UserCleanupJob {
	return &UserCleanupJob{
		service:  service,
		recorder: recorder,
		timeout:  defaultJobTimeout,
		logger:   logger,
	}
}

func (j *UserCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	ctx = j.logger.WithContext(ctx)

	start := time.Now()
	removed, err := j.service.RemoveNotActivatedUsers(ctx)
	duration := time.Since(start)

	j.recorder.RecordJob(userCleanupJobName, duration, err == nil)
	j.recorder.AddRemovedUsers(removed)

	if err != nil {
		j.logger.Err(err).
			Str("job", userCleanupJobName).
			Int("removed", removed).
			Msg("cleanup of not activated users failed")
		return
	}

	j.logger.Info().
		Str("job", userCleanupJobName).
		Int("removed", removed).
		Dur("duration", duration).
		Msg("not activated users removed")
}
