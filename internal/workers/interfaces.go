// Package workers runs the long-lived background loops of a process, such as
// the database change listener, under one cancellation scope.
package workers

import "context"

// Worker is a background loop that blocks until ctx is cancelled or it fails.
//
// Implementations return nil when stopped by cancellation. Any other error
// stops the sibling workers of the same [Workers] group.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
