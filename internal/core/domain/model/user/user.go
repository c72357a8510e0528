package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

const (
	maxNameLength     = 50
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

	// ErrPasswordMismatch is returned by ComparePassword when the plaintext does
	// not match the stored hash.
	ErrPasswordMismatch = errs.NewUnauthenticatedError("invalid credentials")
)

// User is the account aggregate. Email is the login identifier and is stored
// lowercased; the repository enforces its uniqueness with a unique index.
type User struct {
	id           kernel.UUID
	name         string
	email        string
	passwordHash string
	role         identity.Role
	verified     bool

	resetToken          string
	resetTokenExpiresAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// HashPassword validates password policy and returns a bcrypt hash of the
// plaintext. The plaintext is never stored.
func HashPassword(plaintext string) (string, error) {
	if len(plaintext) < minPasswordLength {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"password",
			fmt.Errorf("must be at least %d characters", minPasswordLength),
		)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	return string(hash), nil
}

// NewUser creates an unverified user with the given role.
// The email is normalized to lower case before validation.
func NewUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role identity.Role,
	now time.Time,
) (*User, error) {
	u := &User{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	name, email, passwordHash string,
	role identity.Role,
	verified bool,
	resetToken string,
	resetTokenExpiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		verified:            verified,
		resetToken:          resetToken,
		resetTokenExpiresAt: resetTokenExpiresAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the normalized login email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() identity.Role {
	return u.role
}

// IsVerified reports whether the account email has been verified.
func (u *User) IsVerified() bool {
	return u.verified
}

// ResetToken returns the pending password-reset token, empty when none.
func (u *User) ResetToken() string {
	return u.resetToken
}

// ResetTokenExpiresAt returns the reset token expiry, or nil when no token is pending.
func (u *User) ResetTokenExpiresAt() *time.Time {
	return u.resetTokenExpiresAt
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// ComparePassword checks the plaintext against the stored hash.
// Returns ErrPasswordMismatch on a mismatch so callers can map it to a single
// invalid-credentials response without leaking which check failed.
func (u *User) ComparePassword(plaintext string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plaintext)) != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// ChangePassword replaces the stored hash.
func (u *User) ChangePassword(passwordHash string, now time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := u.setPasswordHash(passwordHash); err != nil {
		return err
	}
	u.updatedAt = now
	return nil
}

// IssueResetToken stores a password-reset token valid until expiresAt.
// A repeated request overwrites the previous token.
func (u *User) IssueResetToken(token string, expiresAt time.Time, now time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if token == "" {
		return errs.NewValueIsRequiredError("reset token")
	}
	if !expiresAt.After(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"reset token expiry",
			fmt.Errorf("%s is not in the future", expiresAt),
		)
	}

	u.resetToken = token
	u.resetTokenExpiresAt = &expiresAt
	u.updatedAt = now
	return nil
}

// ResetPassword consumes a pending reset token: the new hash is stored and the
// token is cleared in the same step. Fails with an invalid-state error when no
// token is pending or the pending token has expired.
func (u *User) ResetPassword(passwordHash string, now time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.resetToken == "" || u.resetTokenExpiresAt == nil {
		return errs.NewInvalidStateError("no password reset is pending")
	}
	if !u.resetTokenExpiresAt.After(now) {
		return errs.NewInvalidStateError("password reset token has expired")
	}
	if err := u.setPasswordHash(passwordHash); err != nil {
		return err
	}

	u.resetToken = ""
	u.resetTokenExpiresAt = nil
	u.updatedAt = now
	return nil
}

// MarkVerified flags the account email as verified.
func (u *User) MarkVerified(now time.Time) error {
	if err := u.Validate(); err != nil {
		return err
	}
	u.verified = true
	u.updatedAt = now
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name",
			fmt.Errorf("cannot be more than %d characters", maxNameLength),
		)
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q is not a valid email address", email),
		)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role identity.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
