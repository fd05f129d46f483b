package workers

import (
	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/go-uaa/internal/logger"
)

// cronLogger routes scheduler diagnostics to the application logger.
type cronLogger struct {
	logger *logger.Logger
}

var _ cron.Logger = cronLogger{}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Err(err).Fields(keysAndValues).Msg(msg)
}
