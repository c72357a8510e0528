package commands

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/guard"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

// DeleteCategoryCommand removes a category. Products referencing the category
// keep their reference; there is no cascading cleanup.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCategoryCommand creates a command to delete a category.
func NewDeleteCategoryCommand(categoryID kernel.UUID) (DeleteCategoryCommand, error) {
	cmd := DeleteCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCategoryID(categoryID); err != nil {
		return DeleteCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

// CategoryID returns the identifier of the category being deleted.
func (c DeleteCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }

func (c *DeleteCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

// DeleteCategoryCommandHandler deletes catalog categories.
type DeleteCategoryCommandHandler struct {
	categoryRepo ports.CategoryRepository
}

// NewDeleteCategoryCommandHandler creates a handler for category deletion.
func NewDeleteCategoryCommandHandler(categoryRepo ports.CategoryRepository) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{categoryRepo: categoryRepo}
}

// Handle processes the deletion.
func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.categoryRepo.Delete(ctx, cmd.CategoryID())
}
