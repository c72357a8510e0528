package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// TokenIssuer mints signed access tokens for authenticated sessions.
type TokenIssuer interface {
	Issue(userID kernel.UUID, role string) (string, error)
}

// RegisterUserCommand represents a public signup request. The password is
// carried in plaintext only until the handler hashes it.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	name     string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a signup command.
func NewRegisterUserCommand(userID kernel.UUID, name, email, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:     name,
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		requireValue("name", name),
		requireValue("email", email),
		requireValue("password", password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new account.
func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }

// Name returns the requested display name.
func (c RegisterUserCommand) Name() string { return c.name }

// Email returns the requested login email.
func (c RegisterUserCommand) Email() string { return c.email }

// Password returns the plaintext password.
func (c RegisterUserCommand) Password() string { return c.password }

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func requireValue(field, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(field)
	}
	return nil
}

// RegisterUserResult is the signup outcome: the created account and a session
// token so the client is logged in immediately.
type RegisterUserResult struct {
	Token string
	User  *user.User
}

// RegisterUserCommandHandler handles public signups. New accounts always get
// the customer role; admins are provisioned out of band.
type RegisterUserCommandHandler struct {
	userRepo ports.UserRepository
	tokens   TokenIssuer
}

// NewRegisterUserCommandHandler creates a handler for signups.
func NewRegisterUserCommandHandler(userRepo ports.UserRepository, tokens TokenIssuer) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{userRepo: userRepo, tokens: tokens}
}

// Handle processes the signup. A duplicate email surfaces from the repository
// as a value-is-invalid error.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (RegisterUserResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterUserResult{}, err
	}

	passwordHash, err := user.HashPassword(cmd.Password())
	if err != nil {
		return RegisterUserResult{}, err
	}

	aggregate, err := user.NewUser(
		cmd.UserID(), cmd.Name(), cmd.Email(), passwordHash,
		identity.RoleUser, time.Now().UTC(),
	)
	if err != nil {
		return RegisterUserResult{}, err
	}

	if err = h.userRepo.Add(ctx, aggregate); err != nil {
		return RegisterUserResult{}, err
	}

	token, err := h.tokens.Issue(aggregate.ID(), aggregate.Role().String())
	if err != nil {
		return RegisterUserResult{}, err
	}

	return RegisterUserResult{Token: token, User: aggregate}, nil
}
