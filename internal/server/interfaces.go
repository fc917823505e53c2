package server

// Server is the lifecycle contract of the transport server run by main.
//
// RunServer blocks until a stop signal arrives and the graceful shutdown
// completes; Shutdown stops accepting new connections and drains the
// in-flight ones.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
