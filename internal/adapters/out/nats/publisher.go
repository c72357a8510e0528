// Package nats publishes order lifecycle events so downstream consumers
// (fulfillment, notifications, analytics) can react without being called
// inline from the command handlers.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

const (
	connectAttempts = 3
	publishAttempts = 3
	reconnectWait   = 2 * time.Second
	flushTimeout    = 2 * time.Second
)

// orderEvent is the wire shape of every order lifecycle event. The subject
// carries the event kind; the payload carries the order snapshot consumers
// usually need.
type orderEvent struct {
	OrderID     string  `json:"order_id"`
	UserID      string  `json:"user_id"`
	Status      string  `json:"status"`
	IsPaid      bool    `json:"is_paid"`
	IsDelivered bool    `json:"is_delivered"`
	TotalAmount float64 `json:"total_amount"`
	OccurredAt  string  `json:"occurred_at"`
}

// Publisher implements ports.OrderEventPublisher on a NATS connection.
type Publisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

// NewPublisher connects to NATS with a few retries so a broker that is still
// starting alongside the service does not fail the boot.
func NewPublisher(url string, logger *slog.Logger) (*Publisher, error) {
	logger = logger.With("component", "nats-publisher")

	var nc *nats.Conn
	var err error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		nc, err = nats.Connect(url,
			nats.Name("commerce"),
			nats.MaxReconnects(5),
			nats.ReconnectWait(reconnectWait),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				logger.Warn("NATS disconnected", "error", err)
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
			}),
		)
		if err == nil {
			logger.Info("connected to NATS", "url", url)
			return &Publisher{nc: nc, logger: logger}, nil
		}

		logger.Warn("failed to connect to NATS", "attempt", attempt, "error", err)
		time.Sleep(reconnectWait)
	}

	return nil, fmt.Errorf("failed to connect to NATS after retries: %w", err)
}

// Publish emits one lifecycle event, retrying transient publish failures.
func (p *Publisher) Publish(ctx context.Context, kind ports.OrderEventKind, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := orderEvent{
		OrderID:     aggregate.ID().String(),
		UserID:      aggregate.UserID().String(),
		Status:      aggregate.Status().String(),
		IsPaid:      aggregate.IsPaid(),
		IsDelivered: aggregate.IsDelivered(),
		TotalAmount: aggregate.TotalAmount(),
		OccurredAt:  aggregate.UpdatedAt().Format(time.RFC3339),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := string(kind)

	for attempt := 1; attempt <= publishAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err = p.nc.Publish(subject, data); err != nil {
			p.logger.Warn("failed to publish event", "subject", subject, "attempt", attempt, "error", err)
			time.Sleep(time.Second)
			continue
		}

		if err = p.nc.FlushTimeout(flushTimeout); err != nil {
			p.logger.Warn("failed to flush NATS connection", "error", err)
			continue
		}

		p.logger.Info("published event", "subject", subject, "order_id", event.OrderID)
		return nil
	}

	return fmt.Errorf("failed to publish %s event after retries: %w", subject, err)
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
		p.logger.Info("NATS connection closed")
	}
}
