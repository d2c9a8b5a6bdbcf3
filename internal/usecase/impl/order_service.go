package impl

import (
	"context"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo     repository.OrderRepository
	qrcodeService service.QRCodeService
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	QRCodeService service.QRCodeService
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:     params.OrderRepo,
		qrcodeService: params.QRCodeService,
	}
}

// Create records a confirmed purchase. The payment-session id is unique, so
// a redelivered confirmation surfaces as a conflict instead of a second order.
func (s *orderService) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	eventID := input.EventID
	buyerID := input.BuyerID

	order := &entity.Order{
		PaymentSessionID: input.PaymentSessionID,
		TotalAmount:      input.TotalAmount,
		EventID:          &eventID,
		BuyerID:          &buyerID,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateOrder) {
			return nil, domainerrors.ErrOrderAlreadyRecorded
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	return order, nil
}

// ListByEvent returns the flat order projection for one event.
func (s *orderService) ListByEvent(ctx context.Context, eventID uuid.UUID, buyerName string) ([]*entity.OrderRow, error) {
	rows, err := s.orderRepo.ListByEvent(ctx, eventID, buyerName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by event")
	}

	return rows, nil
}

// ListByBuyer returns one page of the buyer's orders, newest first.
func (s *orderService) ListByBuyer(ctx context.Context, buyerID uuid.UUID, page int) (*usecase.Paginated[*entity.Order], error) {
	offset := usecase.Offset(page, usecase.OrderPageSize)

	orders, total, err := s.orderRepo.ListByBuyer(ctx, buyerID, offset, usecase.OrderPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by buyer")
	}

	return &usecase.Paginated[*entity.Order]{
		Items:      orders,
		TotalPages: usecase.TotalPages(total, usecase.OrderPageSize),
	}, nil
}

// TicketQR renders the PNG ticket QR code for a persisted order.
func (s *orderService) TicketQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	qrBytes, err := s.qrcodeService.GenerateTicketQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ticket QR code")
	}

	return qrBytes, nil
}
