package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// BackgroundWorkers is the scheduler started next to the servers.
type BackgroundWorkers interface {
	Run()
	Stop(ctx context.Context) error
}
