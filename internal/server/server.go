package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/handler"
	"github.com/MKhiriev/go-uaa/internal/logger"
)

// shutdownTimeout bounds draining of HTTP connections and running jobs.
const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    BackgroundWorkers
	logger     *logger.Logger
}

// NewServer creates the servers for the enabled handlers. workers may be nil
// when no background jobs should run.
func NewServer(handlers *handler.Handlers, workers BackgroundWorkers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: workers, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT and then shuts
// everything down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// stop scheduling first so no job starts against a closing store
	if s.workers != nil {
		if err := s.workers.Stop(ctx); err != nil {
			s.logger.Err(err).Msg("background workers did not stop in time")
		}
	}

	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}

	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run starts everything and returns once ctx is done and shutdown finished.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	if s.workers != nil {
		s.workers.Run()
	}
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()
	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
