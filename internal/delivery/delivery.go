// Package delivery declares the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running server started by main and stopped through fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
