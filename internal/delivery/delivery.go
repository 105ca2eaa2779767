// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface, started once at boot.
// Serve blocks until the context is cancelled or the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
