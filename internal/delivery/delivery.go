// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application, typically an HTTP server.
// Implementations block in Serve until the listener fails or is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
