package commands

import (
	"errors"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
	"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
)

// MarkOrderDeliveredCommand represents a delivery confirmation for an order.
// Fulfillment is an elevated-privilege action regardless of ownership.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   identity.Actor

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates a command to confirm delivery.
func NewMarkOrderDeliveredCommand(orderID kernel.UUID, actor identity.Actor) (MarkOrderDeliveredCommand, error) {
	cmd := MarkOrderDeliveredCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the caller confirming delivery.
func (c MarkOrderDeliveredCommand) Actor() identity.Actor {
	return c.actor
}

func (c *MarkOrderDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
