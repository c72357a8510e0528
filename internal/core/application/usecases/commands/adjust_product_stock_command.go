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

var ErrAdjustProductStockCommandIsNotConstructed = errors.New(
	"AdjustProductStockCommand must be created via NewAdjustProductStockCommand constructor",
)

// AdjustProductStockCommand applies a signed stock delta to a product.
// A zero delta is accepted and leaves the stock unchanged.
type AdjustProductStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	delta     int

	guard guard.ConstructorGuard
}

// NewAdjustProductStockCommand creates a stock adjustment command.
func NewAdjustProductStockCommand(productID kernel.UUID, delta int) (AdjustProductStockCommand, error) {
	cmd := AdjustProductStockCommand{
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return AdjustProductStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustProductStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustProductStockCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being adjusted.
func (c AdjustProductStockCommand) ProductID() kernel.UUID { return c.productID }

// Delta returns the signed stock change.
func (c AdjustProductStockCommand) Delta() int { return c.delta }

func (c *AdjustProductStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

// AdjustProductStockCommandHandler applies stock deltas. A delta that would
// leave negative stock is rejected before any write.
type AdjustProductStockCommandHandler struct {
	productRepo ports.ProductRepository
}

// NewAdjustProductStockCommandHandler creates a handler for stock adjustments.
func NewAdjustProductStockCommandHandler(productRepo ports.ProductRepository) AdjustProductStockCommandHandler {
	return AdjustProductStockCommandHandler{productRepo: productRepo}
}

// Handle processes the stock adjustment and returns the updated product.
func (h *AdjustProductStockCommandHandler) Handle(
	ctx context.Context,
	cmd AdjustProductStockCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AdjustStock(cmd.Delta(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
