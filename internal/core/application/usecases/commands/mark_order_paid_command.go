package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents a payment gateway confirmation for an order.
// The operation carries no actor: the payment callback path performs no
// ownership or role check.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	paymentResult order.PaymentResult

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to record a payment confirmation.
func NewMarkOrderPaidCommand(orderID kernel.UUID, paymentResult order.PaymentResult) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentResult(paymentResult),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentResult returns the gateway confirmation record.
func (c MarkOrderPaidCommand) PaymentResult() order.PaymentResult {
	return c.paymentResult
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkOrderPaidCommand) setPaymentResult(paymentResult order.PaymentResult) error {
	if err := paymentResult.Validate(); err != nil {
		return err
	}

	c.paymentResult = paymentResult
	return nil
}
