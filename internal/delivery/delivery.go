// Package delivery defines the contract every transport (HTTP, workers)
// fulfills so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the application root.
type Delivery interface {
	Serve(ctx context.Context) error
}
