package commands

import (
	"errors"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order. The item
// lines, address and amounts arrive pre-validated as domain values; the
// command only checks their presence and the caller context.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actor         identity.Actor
	items         []order.Item
	address       order.Address
	paymentMethod order.PaymentMethod

	taxAmount      float64
	shippingAmount float64
	totalAmount    float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor identity.Actor,
	items []order.Item,
	address order.Address,
	paymentMethod order.PaymentMethod,
	taxAmount, shippingAmount, totalAmount float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address:        address,
		paymentMethod:  paymentMethod,
		taxAmount:      taxAmount,
		shippingAmount: shippingAmount,
		totalAmount:    totalAmount,
		guard:          guard.NewConstructorGuard(),
	}

	// The actor is carried as-is: whether it is authenticated is an
	// authorization decision made by the handler's access policy.
	cmd.actor = actor

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated caller placing the order.
func (c CreateOrderCommand) Actor() identity.Actor {
	return c.actor
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Address returns the shipping destination.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// PaymentMethod returns the chosen payment instrument.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// TaxAmount returns the client-supplied tax amount.
func (c CreateOrderCommand) TaxAmount() float64 {
	return c.taxAmount
}

// ShippingAmount returns the client-supplied shipping amount.
func (c CreateOrderCommand) ShippingAmount() float64 {
	return c.shippingAmount
}

// TotalAmount returns the client-supplied order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	c.items = items
	return nil
}
