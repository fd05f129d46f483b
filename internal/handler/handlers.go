package handler

import (
	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/handler/grpc"
	"github.com/MKhiriev/go-uaa/internal/handler/http"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/metrics"
	"github.com/MKhiriev/go-uaa/internal/service"
	"github.com/MKhiriev/go-uaa/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transport handlers enabled in cfg.Server. An empty
// address disables the corresponding transport.
func NewHandlers(services *service.Services, checker store.HealthChecker, metrics *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(checker, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
