package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/user"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

// ResetPasswordCommand represents the redemption of a password-reset token.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	token       string
	newPassword string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a token redemption command.
func NewResetPasswordCommand(token, newPassword string) (ResetPasswordCommand, error) {
	cmd := ResetPasswordCommand{
		token:       token,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireValue("reset token", token),
		requireValue("new password", newPassword),
	); err != nil {
		return ResetPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

// Token returns the reset token being redeemed.
func (c ResetPasswordCommand) Token() string { return c.token }

// NewPassword returns the plaintext replacement password.
func (c ResetPasswordCommand) NewPassword() string { return c.newPassword }

// ResetPasswordCommandHandler redeems reset tokens. An unknown or expired
// token is reported as an invalid value, not a missing object, so the endpoint
// cannot be used to probe which tokens exist.
type ResetPasswordCommandHandler struct {
	userRepo ports.UserRepository
}

// NewResetPasswordCommandHandler creates a handler for token redemptions.
func NewResetPasswordCommandHandler(userRepo ports.UserRepository) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{userRepo: userRepo}
}

// Handle rotates the password and clears the token in one write.
func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	aggregate, err := h.userRepo.GetByResetToken(ctx, cmd.Token(), now)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewValueIsInvalidErrorWithCause("reset token", errors.New("invalid or expired"))
		}
		return err
	}

	passwordHash, err := user.HashPassword(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = aggregate.ResetPassword(passwordHash, now); err != nil {
		return err
	}

	return h.userRepo.Update(ctx, aggregate)
}
