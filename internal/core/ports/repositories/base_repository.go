package repositories

import (
	"context"
)

// HealthChecker reports whether the durable store is reachable.
type HealthChecker interface {
	// Ping checks connectivity with the underlying store.
	Ping(ctx context.Context) error
}
