package commands

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces a product's descriptive fields. Ratings and
// the derived average rating cannot be set through this operation.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       float64
	categoryID  kernel.UUID
	stock       int
	brand       string
	images      []string
	variants    []product.Variant
	active      bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name, description string,
	price float64,
	categoryID kernel.UUID,
	stock int,
	brand string,
	images []string,
	variants []product.Variant,
	active bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		brand:       brand,
		images:      images,
		variants:    variants,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setCategoryID(categoryID),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being updated.
func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

// UpdateProductCommandHandler updates catalog products.
type UpdateProductCommandHandler struct {
	productRepo ports.ProductRepository
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(productRepo ports.ProductRepository) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{productRepo: productRepo}
}

// Handle processes the product update and returns the updated product.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.productRepo.Get(ctx, cmd.productID)
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(
		cmd.name, cmd.description, cmd.price, cmd.categoryID,
		cmd.stock, cmd.brand, cmd.images, cmd.variants, cmd.active,
		time.Now().UTC(),
	); err != nil {
		return nil, err
	}

	if err = h.productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
