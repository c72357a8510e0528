package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/guard"
)

var ErrUpdatePasswordCommandIsNotConstructed = errors.New(
	"UpdatePasswordCommand must be created via NewUpdatePasswordCommand constructor",
)

// UpdatePasswordCommand represents an authenticated password change. The
// current password must be re-proven even though the caller holds a session.
type UpdatePasswordCommand struct { //nolint:recvcheck //using for validation
	actor           identity.Actor
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewUpdatePasswordCommand creates a password change command.
func NewUpdatePasswordCommand(actor identity.Actor, currentPassword, newPassword string) (UpdatePasswordCommand, error) {
	cmd := UpdatePasswordCommand{
		actor:           actor,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireValue("current password", currentPassword),
		requireValue("new password", newPassword),
	); err != nil {
		return UpdatePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePasswordCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePasswordCommandIsNotConstructed)
}

// Actor returns the caller changing their password.
func (c UpdatePasswordCommand) Actor() identity.Actor { return c.actor }

// CurrentPassword returns the plaintext current password.
func (c UpdatePasswordCommand) CurrentPassword() string { return c.currentPassword }

// NewPassword returns the plaintext replacement password.
func (c UpdatePasswordCommand) NewPassword() string { return c.newPassword }

// UpdatePasswordCommandHandler changes the caller's own password.
type UpdatePasswordCommandHandler struct {
	userRepo ports.UserRepository
	policy   services.AccessPolicy
}

// NewUpdatePasswordCommandHandler creates a handler for password changes.
func NewUpdatePasswordCommandHandler(
	userRepo ports.UserRepository,
	policy services.AccessPolicy,
) UpdatePasswordCommandHandler {
	return UpdatePasswordCommandHandler{userRepo: userRepo, policy: policy}
}

// Handle verifies the current password, then rotates the hash.
func (h *UpdatePasswordCommandHandler) Handle(ctx context.Context, cmd UpdatePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.AuthorizeAuthenticated(cmd.Actor()); err != nil {
		return err
	}

	aggregate, err := h.userRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = aggregate.ComparePassword(cmd.CurrentPassword()); err != nil {
		return err
	}

	passwordHash, err := user.HashPassword(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = aggregate.ChangePassword(passwordHash, time.Now().UTC()); err != nil {
		return err
	}

	return h.userRepo.Update(ctx, aggregate)
}
