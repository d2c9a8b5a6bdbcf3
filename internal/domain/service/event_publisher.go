package service

import "context"

// OrderEventCreated is published after the payment webhook persists an order.
const OrderEventCreated = "order.created"

// OrderEvent is the message published to downstream consumers (receipts,
// analytics) when an order is reconciled.
type OrderEvent struct {
	Type             string `json:"type"`
	OrderID          string `json:"order_id"`
	EventID          string `json:"event_id"`
	BuyerID          string `json:"buyer_id"`
	TotalAmount      string `json:"total_amount"`
	PaymentSessionID string `json:"payment_session_id"`
}

// EventPublisher publishes order events to a message broker.
type EventPublisher interface {
	// PublishOrderEvent publishes one event. Failures are logged by the
	// caller and never fail the webhook response; the order is already
	// persisted.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases broker resources.
	Close() error
}
