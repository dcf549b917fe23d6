// Package delivery defines the contract every transport implementation
// (HTTP today) exposes to the application bootstrap.
package delivery

import "context"

// Delivery is a serving transport. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
