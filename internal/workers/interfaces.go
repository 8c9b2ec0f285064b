// Package workers runs the application's background workers. It defines the
// Worker contract and a Workers aggregate that starts every registered
// worker.
package workers

// Worker is a long-running background task. Run blocks for the lifetime of
// the worker.
type Worker interface {
	Run()
}
