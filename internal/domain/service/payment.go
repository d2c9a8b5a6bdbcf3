// Package service defines domain-level interfaces for external collaborators.
// Concrete implementations live under internal/infra.
package service

import "context"

// CheckoutEventCompleted is the provider event type that confirms payment and
// triggers order persistence. Any other verified event type is acknowledged
// without side effects.
const CheckoutEventCompleted = "checkout.session.completed"

// CheckoutSessionSpec describes the single line item of a hosted checkout
// session. UnitAmount is in minor units (0 for free events).
type CheckoutSessionSpec struct {
	ProductName string
	UnitAmount  int64
	Currency    string
	Metadata    map[string]string
	SuccessURL  string
	CancelURL   string
}

// CheckoutSession is the provider's hosted session the buyer is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentEvent is a verified webhook notification from the payment provider.
// AmountTotal is in minor units.
type PaymentEvent struct {
	Type        string
	SessionID   string
	AmountTotal int64
	Metadata    map[string]string
}

// PaymentGateway creates hosted checkout sessions with the payment provider.
type PaymentGateway interface {
	// CreateCheckoutSession requests a hosted session for a single line
	// item. It never creates an order; control passes to the provider until
	// the webhook confirms completion.
	CreateCheckoutSession(ctx context.Context, spec *CheckoutSessionSpec) (*CheckoutSession, error)
}

// PaymentWebhookVerifier validates the signature of an inbound payment
// webhook and parses the payload into a PaymentEvent. No field of the payload
// may be trusted before verification succeeds.
type PaymentWebhookVerifier interface {
	VerifyEvent(payload []byte, signatureHeader string) (*PaymentEvent, error)
}
