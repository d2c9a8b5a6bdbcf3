package usecase

import (
	"context"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput carries provider-confirmed purchase data. It is only ever
// assembled by the payment webhook path.
type CreateOrderInput struct {
	PaymentSessionID string
	TotalAmount      string
	EventID          uuid.UUID
	BuyerID          uuid.UUID
}

// OrderUsecase defines the order query and persistence use cases.
type OrderUsecase interface {
	// Create records a confirmed purchase. Fails with a conflict when the
	// payment-session id has already been recorded.
	Create(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// ListByEvent returns the flat order projection for one event, filtered
	// by a case-insensitive substring of the buyer's full name.
	ListByEvent(ctx context.Context, eventID uuid.UUID, buyerName string) ([]*entity.OrderRow, error)

	// ListByBuyer returns one page of the buyer's orders, newest first, with
	// each order's event and that event's organizer resolved.
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, page int) (*Paginated[*entity.Order], error)

	// TicketQR renders the PNG ticket QR code for a persisted order.
	TicketQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
