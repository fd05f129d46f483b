// Package grpc exposes the standard gRPC health service. The serving status
// follows the reachability of the backing store.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/store"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "uaa"

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] and keeps its status in line with the result of
// [store.HealthChecker.Ping].
type Handler struct {
	health  *health.Server
	checker store.HealthChecker

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Until the first check the status is
// NOT_SERVING.
func NewHandler(checker store.HealthChecker, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:  health.NewServer(),
		checker: checker,
		logger:  logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Check pings the store once and publishes the resulting status.
func (h *Handler) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.checker.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Check").Msg("store is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Watch re-checks the store every interval until ctx is done, then marks
// the service as shutting down.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Shutdown sets every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// UnaryLoggingInterceptor logs every unary call with its duration and
// outcome.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Send()

	return resp, err
}
