// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) managed by the app container.
type Delivery interface {
	// Serve blocks until the delivery stops or the context is canceled.
	Serve(ctx context.Context) error
}
