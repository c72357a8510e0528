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

var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand replaces a category's fields. Renaming re-derives the
// slug.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string
	parentID    *kernel.UUID
	active      bool

	guard guard.ConstructorGuard
}

// NewUpdateCategoryCommand creates a command to update a category.
func NewUpdateCategoryCommand(
	categoryID kernel.UUID,
	name, description string,
	parentID *kernel.UUID,
	active bool,
) (UpdateCategoryCommand, error) {
	cmd := UpdateCategoryCommand{
		name:        name,
		description: description,
		parentID:    parentID,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setCategoryID(categoryID); err != nil {
		return UpdateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identifier of the category being updated.
func (c UpdateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }

func (c *UpdateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

// UpdateCategoryCommandHandler updates catalog categories.
type UpdateCategoryCommandHandler struct {
	categoryRepo ports.CategoryRepository
}

// NewUpdateCategoryCommandHandler creates a handler for category updates.
func NewUpdateCategoryCommandHandler(categoryRepo ports.CategoryRepository) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{categoryRepo: categoryRepo}
}

// Handle processes the category update and returns the updated category.
func (h *UpdateCategoryCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCategoryCommand,
) (*category.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.categoryRepo.Get(ctx, cmd.categoryID)
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(
		cmd.name, cmd.description, cmd.parentID, cmd.active,
		time.Now().UTC(),
	); err != nil {
		return nil, err
	}

	if err = h.categoryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
