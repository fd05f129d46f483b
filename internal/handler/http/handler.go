package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/metrics"
	"github.com/MKhiriev/go-uaa/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// appName prefixes the alert headers, e.g. X-uaaApp-alert.
	appName        string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		appName:        cfg.App.Name,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

// decodeJSON reads the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}
