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

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
// Field-level validation (lengths, price and stock bounds, image formats)
// happens in the product aggregate; the command checks identity and presence.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       float64
	categoryID  kernel.UUID
	stock       int
	brand       string
	images      []string
	variants    []product.Variant

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, description string,
	price float64,
	categoryID kernel.UUID,
	stock int,
	brand string,
	images []string,
	variants []product.Variant,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		brand:       brand,
		images:      images,
		variants:    variants,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setCategoryID(categoryID),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// Description returns the product description.
func (c CreateProductCommand) Description() string { return c.description }

// Price returns the base price.
func (c CreateProductCommand) Price() float64 { return c.price }

// CategoryID returns the category the product belongs to.
func (c CreateProductCommand) CategoryID() kernel.UUID { return c.categoryID }

// Stock returns the initial stock quantity.
func (c CreateProductCommand) Stock() int { return c.stock }

// Brand returns the product brand.
func (c CreateProductCommand) Brand() string { return c.brand }

// Images returns the image URLs.
func (c CreateProductCommand) Images() []string { return c.images }

// Variants returns the sales variants.
func (c CreateProductCommand) Variants() []product.Variant { return c.variants }

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

// CreateProductCommandHandler adds products to the catalog.
type CreateProductCommandHandler struct {
	productRepo ports.ProductRepository
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(productRepo ports.ProductRepository) CreateProductCommandHandler {
	return CreateProductCommandHandler{productRepo: productRepo}
}

// Handle processes the product creation command and returns the new product.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(), cmd.Name(), cmd.Description(), cmd.Price(),
		cmd.CategoryID(), cmd.Stock(), cmd.Brand(), cmd.Images(), cmd.Variants(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.productRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
