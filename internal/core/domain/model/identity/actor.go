// Package identity models the authenticated caller context. An Actor is the
// identity (id + role) established by the authentication boundary and carried
// into every operation that needs authorization decisions.
package identity

import (
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// ErrActorIsNotAuthenticated is returned when an operation requires an
// authenticated caller but the actor context is absent or was not constructed.
var ErrActorIsNotAuthenticated = errs.NewUnauthenticatedError("user is not authenticated")

// Role is the privilege level of an actor.
type Role string

const (
	// RoleUser is the default role for registered customers.
	RoleUser Role = "user"

	// RoleAdmin is the elevated role permitted to perform fulfillment and
	// catalog management actions regardless of ownership.
	RoleAdmin Role = "admin"
)

// RoleFromString parses a role from its persisted or transported form.
func RoleFromString(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	_, err := RoleFromString(string(r))
	return err
}

// String returns the textual form of the role.
func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated caller of an operation. The zero value represents
// an unauthenticated caller and fails Validate, which is how operations surface
// their Unauthenticated precondition.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates an authenticated actor context from a validated identity.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{id: id, role: role, isConstructed: true}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's privilege level.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds elevated privilege.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate returns ErrActorIsNotAuthenticated for an absent caller context.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotAuthenticated
	}
	return nil
}
