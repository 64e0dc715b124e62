// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a long-running server (HTTP front-end, background worker)
// started by the application entrypoint. Serve blocks until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
