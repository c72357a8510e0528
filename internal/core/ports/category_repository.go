package ports

import (
	"context"

	"commerce/internal/core/domain/model/category"
	"commerce/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for category aggregates.
// Name and slug uniqueness are enforced by the store; Add and Update surface a
// duplicate as a value-is-invalid error.
type CategoryRepository interface {
	// Add persists a new category aggregate.
	Add(ctx context.Context, aggregate *category.Category) error

	// Update persists changes to an existing category aggregate.
	Update(ctx context.Context, aggregate *category.Category) error

	// Delete removes a category by its unique identifier.
	// Returns an object-not-found error when no such category exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a category aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)
}
