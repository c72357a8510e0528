package commands

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/services"
	"commerce/internal/core/ports"
)

// MarkOrderDeliveredCommandHandler confirms order delivery. Only admins may
// confirm delivery; ownership is irrelevant on this path.
type MarkOrderDeliveredCommandHandler struct {
	orderRepo ports.OrderRepository
	publisher ports.OrderEventPublisher
	policy    services.AccessPolicy
	logger    *slog.Logger
}

// NewMarkOrderDeliveredCommandHandler creates a handler for delivery confirmations.
func NewMarkOrderDeliveredCommandHandler(
	orderRepo ports.OrderRepository,
	publisher ports.OrderEventPublisher,
	policy services.AccessPolicy,
) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		orderRepo: orderRepo,
		publisher: publisher,
		policy:    policy,
		logger:    slog.With("component", "mark_order_delivered"),
	}
}

// Handle processes the delivery confirmation and returns the updated order.
func (h *MarkOrderDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkOrderDeliveredCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeAdmin(cmd.Actor()); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkDelivered(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.publisher.Publish(ctx, ports.OrderDelivered, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"event", ports.OrderDelivered, "order_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}
