package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"commerce/internal/core/ports"
	"commerce/internal/pkg/guard"
)

// resetTokenTTL is how long a password-reset token stays usable.
const resetTokenTTL = time.Hour

var ErrForgotPasswordCommandIsNotConstructed = errors.New(
	"ForgotPasswordCommand must be created via NewForgotPasswordCommand constructor",
)

// ForgotPasswordCommand represents a password-reset request for an email.
type ForgotPasswordCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewForgotPasswordCommand creates a reset request command.
func NewForgotPasswordCommand(email string) (ForgotPasswordCommand, error) {
	cmd := ForgotPasswordCommand{
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := requireValue("email", email); err != nil {
		return ForgotPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ForgotPasswordCommand) Validate() error {
	return c.guard.Validate(ErrForgotPasswordCommandIsNotConstructed)
}

// Email returns the account email requesting a reset.
func (c ForgotPasswordCommand) Email() string { return c.email }

// ForgotPasswordCommandHandler issues password-reset tokens. The token is
// returned to the caller; delivering it over email instead of the response
// body is a deployment concern outside this handler.
type ForgotPasswordCommandHandler struct {
	userRepo ports.UserRepository
}

// NewForgotPasswordCommandHandler creates a handler for reset requests.
func NewForgotPasswordCommandHandler(userRepo ports.UserRepository) ForgotPasswordCommandHandler {
	return ForgotPasswordCommandHandler{userRepo: userRepo}
}

// Handle issues a fresh reset token valid for one hour and returns it.
func (h *ForgotPasswordCommandHandler) Handle(ctx context.Context, cmd ForgotPasswordCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	aggregate, err := h.userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return "", err
	}

	token, err := newResetToken()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if err = aggregate.IssueResetToken(token, now.Add(resetTokenTTL), now); err != nil {
		return "", err
	}

	if err = h.userRepo.Update(ctx, aggregate); err != nil {
		return "", err
	}

	return token, nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
