package commands

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// CancelOrderCommandHandler cancels orders. The ownership check runs before
// the state check, so a non-owner probing someone else's paid order sees
// Forbidden, not the payment state.
type CancelOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	publisher ports.OrderEventPublisher
	policy    services.AccessPolicy
	logger    *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	orderRepo ports.OrderRepository,
	publisher ports.OrderEventPublisher,
	policy services.AccessPolicy,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		orderRepo: orderRepo,
		publisher: publisher,
		policy:    policy,
		logger:    slog.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation and returns the updated order.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeAuthenticated(cmd.Actor()); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeOwner(cmd.Actor(), aggregate.UserID()); err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.publisher.Publish(ctx, ports.OrderCancelled, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"event", ports.OrderCancelled, "order_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}
