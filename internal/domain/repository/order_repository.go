package repository

import (
	"context"

	"evently/internal/domain/entity"
	"evently/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when the payment-session id has already been recorded.
	ErrDuplicateOrder = errors.New("order already recorded for payment session")
)

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists a new order. The payment-session id is enforced unique
	// by the store, which makes webhook redelivery idempotent at insert time.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByBuyer returns the buyer's orders ordered by creation time
	// descending with the total count, resolving each order's event and that
	// event's organizer.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error)

	// ListByEvent returns the flat order projection for one event, filtered
	// by a case-insensitive substring match on the buyer's full name.
	ListByEvent(ctx context.Context, eventID uuid.UUID, buyerName string) ([]*entity.OrderRow, error)

	// DetachBuyer clears the buyer reference on every order placed by the
	// given account. Used by the account-deletion cascade.
	DetachBuyer(ctx context.Context, buyerID uuid.UUID) error
}
