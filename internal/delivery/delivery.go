// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP API, worker endpoint).
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
