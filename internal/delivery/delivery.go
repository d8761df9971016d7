// Package delivery defines the entry points that serve the application.
package delivery

import "context"

// Delivery is a long-running server started by the application runtime.
type Delivery interface {
	// Serve blocks until the server stops or the context is canceled.
	Serve(ctx context.Context) error
}
