package commands

import (
	"context"
	"log/slog"
	"time"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// MarkOrderPaidCommandHandler records payment gateway confirmations.
//
// This path deliberately performs no ownership or role check and does not
// advance the status field; both behaviors are part of the payment contract.
// A repeated confirmation overwrites the stored gateway result.
type MarkOrderPaidCommandHandler struct {
	orderRepo ports.OrderRepository
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

// NewMarkOrderPaidCommandHandler creates a handler for payment confirmations.
func NewMarkOrderPaidCommandHandler(
	orderRepo ports.OrderRepository,
	publisher ports.OrderEventPublisher,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    slog.With("component", "mark_order_paid"),
	}
}

// Handle processes the payment confirmation and returns the updated order.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.MarkPaid(cmd.PaymentResult(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.publisher.Publish(ctx, ports.OrderPaid, aggregate); err != nil {
		h.logger.WarnContext(ctx, "failed to publish order event",
			"event", ports.OrderPaid, "order_id", aggregate.ID().String(), "error", err)
	}

	return aggregate, nil
}
