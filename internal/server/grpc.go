package server

import (
	"context"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-uaa/internal/config"
	myGRPC "github.com/MKhiriev/go-uaa/internal/handler/grpc"
	"github.com/MKhiriev/go-uaa/internal/logger"
)

// healthCheckInterval is how often the gRPC health status is refreshed.
const healthCheckInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	// done is closed on shutdown to stop the health watcher.
	done     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		done:    make(chan struct{}),
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-g.done:
			cancel()
		case <-ctx.Done():
		}
	}()
	go g.handler.Watch(ctx, healthCheckInterval)

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopOnce.Do(func() { close(g.done) })
	g.handler.Shutdown()
	g.server.GracefulStop()
}
