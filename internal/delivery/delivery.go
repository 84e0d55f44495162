// Package delivery holds the process entry points that accept work from the outside.
package delivery

import "context"

// Delivery is a long-running server started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
