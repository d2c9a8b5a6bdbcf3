package usecase

import (
	"context"

	"evently/internal/domain/entity"
	"evently/internal/domain/service"

	"github.com/google/uuid"
)

// CheckoutOrderInput describes one purchase attempt: a single line item for
// the event at its listed price.
type CheckoutOrderInput struct {
	EventID    uuid.UUID
	EventTitle string
	Price      string
	IsFree     bool
	BuyerID    uuid.UUID
}

// CheckoutUsecase bridges the hosted-checkout flow and the webhook-driven
// order reconciliation.
type CheckoutUsecase interface {
	// CheckoutOrder creates a hosted payment session and returns the URL the
	// buyer is redirected to. No order is created here.
	CheckoutOrder(ctx context.Context, input *CheckoutOrderInput) (string, error)

	// HandlePaymentEvent reconciles a verified provider event. On a completed
	// checkout session it persists the order and publishes order.created;
	// any other event type is acknowledged with a nil order.
	HandlePaymentEvent(ctx context.Context, event *service.PaymentEvent) (*entity.Order, error)
}
