// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a transport started by the application once all providers are built.
type Delivery interface {
	Serve(ctx context.Context) error
}
