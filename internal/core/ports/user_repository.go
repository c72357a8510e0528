package ports

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Email uniqueness is enforced by the store; Add surfaces a duplicate email
// as a value-is-invalid error.
type UserRepository interface {
	// Add persists a new user aggregate.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by normalized email.
	// Returns an object-not-found error when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetByResetToken retrieves the user holding the given pending reset token,
	// provided the token has not expired at the given instant.
	GetByResetToken(ctx context.Context, token string, now time.Time) (*user.User, error)

	// PurgeExpiredResetTokens clears reset tokens whose expiry lies before now.
	// Returns the number of users affected.
	PurgeExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}
