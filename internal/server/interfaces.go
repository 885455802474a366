package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// RunServer blocks until a termination signal arrives or the listener
// fails; only the latter is returned as an error.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
