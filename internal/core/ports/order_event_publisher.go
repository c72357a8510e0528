package ports

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// OrderEventKind names an order lifecycle event on the wire.
type OrderEventKind string

const (
	OrderCreated   OrderEventKind = "order.created"
	OrderPaid      OrderEventKind = "order.paid"
	OrderDelivered OrderEventKind = "order.delivered"
	OrderCancelled OrderEventKind = "order.cancelled"
)

// OrderEventPublisher announces committed order lifecycle changes to
// interested consumers. Publishing is best effort: command handlers call it
// after a successful write and log failures instead of failing the operation.
type OrderEventPublisher interface {
	// Publish emits one lifecycle event for the given order.
	Publish(ctx context.Context, kind OrderEventKind, aggregate *order.Order) error
}
