package server

// Server is the lifecycle contract for a transport server owned by this
// package. RunServer blocks until the server stops; Shutdown drains
// in-flight requests and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
