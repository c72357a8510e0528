package commands

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// CreateOrderCommandHandler handles order placement. Any authenticated caller
// may place an order; ownership is fixed to the caller and the monetary totals
// are persisted verbatim from the command.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	publisher ports.OrderEventPublisher
	policy    services.AccessPolicy
	logger    *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	orderRepo ports.OrderRepository,
	publisher ports.OrderEventPublisher,
	policy services.AccessPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo: orderRepo,
		publisher: publisher,
		policy:    policy,
		logger:    slog.With("component", "create_order"),
	}
}

// Handle processes the order placement command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeAuthenticated(cmd.Actor()); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Actor().ID(),
		cmd.Items(),
		cmd.Address(),
		cmd.PaymentMethod(),
		cmd.TaxAmount(),
		cmd.ShippingAmount(),
		cmd.TotalAmount(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.publisher.Publish(ctx, ports.OrderCreated, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"event", ports.OrderCreated, "order_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}
