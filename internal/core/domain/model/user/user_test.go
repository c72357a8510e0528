package user_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T) *user.User {
	t.Helper()
	hash, err := user.HashPassword("secret-password")
	require.NoError(t, err)

	u, err := user.NewUser(
		kernel.NewUUID(),
		"Ada Lovelace",
		"ada@example.com",
		hash,
		identity.RoleUser,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return u
}

func TestHashPassword(t *testing.T) {
	t.Run("should produce a verifiable hash", func(t *testing.T) {
		hash, err := user.HashPassword("secret-password")

		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEqual(t, "secret-password", hash)
	})

	t.Run("should reject passwords shorter than six characters", func(t *testing.T) {
		_, err := user.HashPassword("short")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewUser(t *testing.T) {
	t.Run("should create unverified user", func(t *testing.T) {
		now := time.Now().UTC()
		id := kernel.NewUUID()
		hash, err := user.HashPassword("secret-password")
		require.NoError(t, err)

		u, err := user.NewUser(id, "Ada Lovelace", "Ada@Example.COM", hash, identity.RoleAdmin, now)

		require.NoError(t, err)
		assert.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Ada Lovelace", u.Name())
		assert.Equal(t, "ada@example.com", u.Email())
		assert.Equal(t, identity.RoleAdmin, u.Role())
		assert.False(t, u.IsVerified())
		assert.Empty(t, u.ResetToken())
		assert.Nil(t, u.ResetTokenExpiresAt())
		assert.Equal(t, now, u.CreatedAt())
	})

	t.Run("should reject invalid email", func(t *testing.T) {
		for _, email := range []string{"", "not-an-email", "a@b", "spaces in@example.com"} {
			_, err := user.NewUser(
				kernel.NewUUID(), "Ada", email, "hash", identity.RoleUser, time.Now().UTC(),
			)
			require.Error(t, err, "email: %q", email)
		}
	})

	t.Run("should reject name longer than fifty characters", func(t *testing.T) {
		longName := make([]byte, 51)
		for i := range longName {
			longName[i] = 'a'
		}

		_, err := user.NewUser(
			kernel.NewUUID(), string(longName), "ada@example.com", "hash",
			identity.RoleUser, time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := user.NewUser(
			kernel.NewUUID(), "Ada", "ada@example.com", "hash",
			identity.Role("superuser"), time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_ComparePassword(t *testing.T) {
	t.Run("should accept the original plaintext", func(t *testing.T) {
		u := createTestUser(t)

		assert.NoError(t, u.ComparePassword("secret-password"))
	})

	t.Run("should fail with a single credentials error on mismatch", func(t *testing.T) {
		u := createTestUser(t)

		err := u.ComparePassword("wrong-password")

		require.Error(t, err)
		assert.ErrorIs(t, err, user.ErrPasswordMismatch)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestUser_ChangePassword(t *testing.T) {
	u := createTestUser(t)
	newHash, err := user.HashPassword("another-password")
	require.NoError(t, err)
	now := time.Now().UTC().Add(time.Minute)

	require.NoError(t, u.ChangePassword(newHash, now))

	assert.NoError(t, u.ComparePassword("another-password"))
	assert.Error(t, u.ComparePassword("secret-password"))
	assert.Equal(t, now, u.UpdatedAt())
}

func TestUser_ResetTokenLifecycle(t *testing.T) {
	t.Run("issue then reset clears the token", func(t *testing.T) {
		u := createTestUser(t)
		now := time.Now().UTC()

		require.NoError(t, u.IssueResetToken("tok-1", now.Add(time.Hour), now))
		assert.Equal(t, "tok-1", u.ResetToken())
		require.NotNil(t, u.ResetTokenExpiresAt())

		newHash, err := user.HashPassword("another-password")
		require.NoError(t, err)
		require.NoError(t, u.ResetPassword(newHash, now.Add(time.Minute)))

		assert.Empty(t, u.ResetToken())
		assert.Nil(t, u.ResetTokenExpiresAt())
		assert.NoError(t, u.ComparePassword("another-password"))
	})

	t.Run("repeated request overwrites the previous token", func(t *testing.T) {
		u := createTestUser(t)
		now := time.Now().UTC()

		require.NoError(t, u.IssueResetToken("tok-1", now.Add(time.Hour), now))
		require.NoError(t, u.IssueResetToken("tok-2", now.Add(2*time.Hour), now))

		assert.Equal(t, "tok-2", u.ResetToken())
	})

	t.Run("reset fails when no token is pending", func(t *testing.T) {
		u := createTestUser(t)

		err := u.ResetPassword("hash", time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("reset fails when the token has expired", func(t *testing.T) {
		u := createTestUser(t)
		now := time.Now().UTC()
		require.NoError(t, u.IssueResetToken("tok-1", now.Add(time.Hour), now))

		err := u.ResetPassword("hash", now.Add(2*time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "tok-1", u.ResetToken())
	})

	t.Run("issue fails with a past expiry", func(t *testing.T) {
		u := createTestUser(t)
		now := time.Now().UTC()

		err := u.IssueResetToken("tok-1", now.Add(-time.Minute), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_MarkVerified(t *testing.T) {
	u := createTestUser(t)

	require.NoError(t, u.MarkVerified(time.Now().UTC()))

	assert.True(t, u.IsVerified())
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		now := time.Now().UTC()
		expiry := now.Add(time.Hour)

		u, err := user.RestoreUser(
			kernel.NewUUID(),
			"Ada Lovelace", "ada@example.com", "stored-hash",
			identity.RoleUser,
			true,
			"tok-1", &expiry,
			now.Add(-time.Hour), now,
		)

		require.NoError(t, err)
		assert.True(t, u.IsVerified())
		assert.Equal(t, "tok-1", u.ResetToken())
		assert.Equal(t, &expiry, u.ResetTokenExpiresAt())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var u user.User

		assert.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}
