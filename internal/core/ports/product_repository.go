package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Catalog listing is a read-side concern and queries the store directly; this
// interface covers the write side only.
type ProductRepository interface {
	// Add persists a new product aggregate.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns an object-not-found error when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
