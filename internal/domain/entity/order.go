package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a purchase record. Orders are created exclusively by the payment
// webhook after the provider confirms a completed checkout session, which
// keeps unpaid orders out of the store.
type Order struct {
	ID               uuid.UUID `json:"id"`
	PaymentSessionID string    `json:"payment_session_id"` // Provider session id, unique.
	TotalAmount      string    `json:"total_amount"`       // String-encoded decimal in major units.

	// EventID references the purchased Event. Nil only when the reference
	// was never recorded (the provider omitted the metadata).
	EventID *uuid.UUID `json:"event_id"`
	// BuyerID references the buying Account. Nil after the buyer's account
	// has been deleted and its references detached.
	BuyerID *uuid.UUID `json:"buyer_id"`

	// Event is populated on reads; on buyer listings its Organizer is
	// populated as well.
	Event *Event `json:"event,omitempty"`
	// Buyer is populated on reads with the buying account's public
	// projection.
	Buyer *Profile `json:"buyer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderRow is the flat projection returned by per-event order listings,
// joining the buyer's name and the event title into a single record.
type OrderRow struct {
	ID          uuid.UUID `json:"id"`
	TotalAmount string    `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	EventTitle  string    `json:"event_title"`
	EventID     uuid.UUID `json:"event_id"`
	BuyerName   string    `json:"buyer_name"` // First and last name concatenated.
}
