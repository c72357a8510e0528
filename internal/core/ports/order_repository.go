// Package ports defines the contracts between the application core and
// infrastructure adapters: repositories for each aggregate and the outbound
// event publisher. Implementations live under internal/adapters/out.
package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update enforces optimistic concurrency: the write succeeds only when the
// stored version matches the version the aggregate was loaded with, and the
// stored version is incremented on success. A mismatch is reported as a
// version conflict error.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by its
	// version. Returns a version conflict error when a concurrent writer won.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an object-not-found error when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
