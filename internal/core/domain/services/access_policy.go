package services

import (
	"fmt"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

// AccessPolicy is a domain service answering one question: may this actor act
// on a resource owned by this user. An unauthenticated actor is always denied
// with Unauthenticated before any other rule is considered; every other denial
// is Forbidden.
//
// Cancellation is owner-only with no admin bypass, so AuthorizeOwner checks
// strict ownership. Read paths where admins may see anything use
// AuthorizeOwnerOrAdmin. Fulfillment actions use AuthorizeAdmin.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// AuthorizeOwner allows only the resource owner. Admin role does not bypass
// this check.
func (AccessPolicy) AuthorizeOwner(actor identity.Actor, ownerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := ownerID.Validate(); err != nil {
		return err
	}

	if actor.ID().IsEqual(ownerID) {
		return nil
	}
	return errs.NewForbiddenError("actor does not own this resource")
}

// AuthorizeOwnerOrAdmin allows the resource owner and any admin.
func (AccessPolicy) AuthorizeOwnerOrAdmin(actor identity.Actor, ownerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := ownerID.Validate(); err != nil {
		return err
	}

	if actor.IsAdmin() || actor.ID().IsEqual(ownerID) {
		return nil
	}
	return errs.NewForbiddenError("actor does not own this resource")
}

// AuthorizeAdmin allows only actors holding the admin role.
func (AccessPolicy) AuthorizeAdmin(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !actor.IsAdmin() {
		return errs.NewForbiddenError(fmt.Sprintf("role %s is not permitted to perform this action", actor.Role()))
	}
	return nil
}

// AuthorizeAuthenticated allows any authenticated actor.
func (AccessPolicy) AuthorizeAuthenticated(actor identity.Actor) error {
	return actor.Validate()
}
