package commands_test

import (
	"errors"
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, "Ada Lovelace", "ada@example.com", "secret-password")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	mock.InOrder(
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		tokens.On("Issue", id, identity.RoleUser.String()).Return("signed-token", nil).Once(),
	)

	h := commands.NewRegisterUserCommandHandler(repo, tokens)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	require.NotNil(t, result.User)
	assert.Equal(t, "ada@example.com", result.User.Email())
	assert.Equal(t, identity.RoleUser, result.User.Role())
	assert.NoError(t, result.User.ComparePassword("secret-password"))
	repo.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Ada", "ada@example.com", "secret-password")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).
		Return(errs.NewValueIsInvalidErrorWithCause("email", errors.New("already registered"))).Once()

	h := commands.NewRegisterUserCommandHandler(repo, new(MockTokenIssuer))
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegisterUserCommandHandler_Handle_ShortPassword(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Ada", "ada@example.com", "short")
	require.NoError(t, err)

	repo := new(MockUserRepository)

	h := commands.NewRegisterUserCommandHandler(repo, new(MockTokenIssuer))
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestNewRegisterUserCommand_RequiresAllFields(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "", "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "password")
}

func TestRegisterUserCommand_Validate(t *testing.T) {
	cmd := commands.RegisterUserCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrRegisterUserCommandIsNotConstructed)
}
