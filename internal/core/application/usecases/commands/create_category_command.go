package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/category"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a catalog category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string
	parentID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(
	categoryID kernel.UUID,
	name, description string,
	parentID *kernel.UUID,
) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		name:        name,
		description: description,
		parentID:    parentID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setCategoryID(categoryID); err != nil {
		return CreateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identifier assigned to the new category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }

// Name returns the category name.
func (c CreateCategoryCommand) Name() string { return c.name }

// Description returns the category description.
func (c CreateCategoryCommand) Description() string { return c.description }

// ParentID returns the optional parent category identifier.
func (c CreateCategoryCommand) ParentID() *kernel.UUID { return c.parentID }

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

// CreateCategoryCommandHandler adds catalog categories. A duplicate name or
// slug surfaces from the repository as a value-is-invalid error.
type CreateCategoryCommandHandler struct {
	categoryRepo ports.CategoryRepository
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(categoryRepo ports.CategoryRepository) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{categoryRepo: categoryRepo}
}

// Handle processes the category creation and returns the new category.
func (h *CreateCategoryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCategoryCommand,
) (*category.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := category.NewCategory(
		cmd.CategoryID(), cmd.Name(), cmd.Description(), cmd.ParentID(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.categoryRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
