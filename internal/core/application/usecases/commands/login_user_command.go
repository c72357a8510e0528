package commands

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/user"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand represents a credentials login attempt.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a login command.
func NewLoginUserCommand(email, password string) (LoginUserCommand, error) {
	cmd := LoginUserCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireValue("email", email),
		requireValue("password", password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginUserCommand) Email() string { return c.email }

// Password returns the plaintext password attempt.
func (c LoginUserCommand) Password() string { return c.password }

// LoginUserResult is a successful login: the session token and the account.
type LoginUserResult struct {
	Token string
	User  *user.User
}

// LoginUserCommandHandler authenticates credentials and mints a session token.
// An unknown email and a wrong password produce the same invalid-credentials
// error so the login endpoint does not reveal which accounts exist.
type LoginUserCommandHandler struct {
	userRepo ports.UserRepository
	tokens   TokenIssuer
}

// NewLoginUserCommandHandler creates a handler for logins.
func NewLoginUserCommandHandler(userRepo ports.UserRepository, tokens TokenIssuer) LoginUserCommandHandler {
	return LoginUserCommandHandler{userRepo: userRepo, tokens: tokens}
}

// Handle processes the login attempt.
func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (LoginUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginUserResult{}, err
	}

	aggregate, err := h.userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginUserResult{}, user.ErrPasswordMismatch
		}
		return LoginUserResult{}, err
	}

	if err = aggregate.ComparePassword(cmd.Password()); err != nil {
		return LoginUserResult{}, err
	}

	token, err := h.tokens.Issue(aggregate.ID(), aggregate.Role().String())
	if err != nil {
		return LoginUserResult{}, err
	}

	return LoginUserResult{Token: token, User: aggregate}, nil
}
