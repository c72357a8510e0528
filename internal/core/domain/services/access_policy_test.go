package services_test

import (
	"testing"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/services"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createActor(t *testing.T, role identity.Role) identity.Actor {
	t.Helper()
	actor, err := identity.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestAccessPolicy_AuthorizeOwner(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("owner is allowed", func(t *testing.T) {
		actor := createActor(t, identity.RoleUser)

		assert.NoError(t, policy.AuthorizeOwner(actor, actor.ID()))
	})

	t.Run("admin does not bypass strict ownership", func(t *testing.T) {
		admin := createActor(t, identity.RoleAdmin)

		err := policy.AuthorizeOwner(admin, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("non-owner user is forbidden", func(t *testing.T) {
		actor := createActor(t, identity.RoleUser)

		err := policy.AuthorizeOwner(actor, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unauthenticated actor is denied before ownership is considered", func(t *testing.T) {
		err := policy.AuthorizeOwner(identity.Actor{}, kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestAccessPolicy_AuthorizeOwnerOrAdmin(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("owner is allowed", func(t *testing.T) {
		actor := createActor(t, identity.RoleUser)

		assert.NoError(t, policy.AuthorizeOwnerOrAdmin(actor, actor.ID()))
	})

	t.Run("admin is allowed on any resource", func(t *testing.T) {
		admin := createActor(t, identity.RoleAdmin)

		assert.NoError(t, policy.AuthorizeOwnerOrAdmin(admin, kernel.NewUUID()))
	})

	t.Run("non-owner user is forbidden", func(t *testing.T) {
		err := policy.AuthorizeOwnerOrAdmin(createActor(t, identity.RoleUser), kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAccessPolicy_AuthorizeAdmin(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("admin is allowed", func(t *testing.T) {
		assert.NoError(t, policy.AuthorizeAdmin(createActor(t, identity.RoleAdmin)))
	})

	t.Run("user is forbidden", func(t *testing.T) {
		err := policy.AuthorizeAdmin(createActor(t, identity.RoleUser))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("unauthenticated actor is denied", func(t *testing.T) {
		err := policy.AuthorizeAdmin(identity.Actor{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestAccessPolicy_AuthorizeAuthenticated(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("any authenticated actor is allowed", func(t *testing.T) {
		assert.NoError(t, policy.AuthorizeAuthenticated(createActor(t, identity.RoleUser)))
	})

	t.Run("unauthenticated actor is denied", func(t *testing.T) {
		err := policy.AuthorizeAuthenticated(identity.Actor{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
