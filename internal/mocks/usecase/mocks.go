// Package usecase provides testify mocks for the use-case interfaces,
// used by the delivery-layer tests.
package usecase

import (
	"context"

	"evently/internal/domain/entity"
	"evently/internal/domain/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AccountUsecase is a mock implementation of usecase.AccountUsecase.
type AccountUsecase struct {
	mock.Mock
}

func (m *AccountUsecase) Create(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountUsecase) UpdateByIdentityID(ctx context.Context, identityID string, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	args := m.Called(ctx, identityID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *AccountUsecase) DeleteByIdentityID(ctx context.Context, identityID string) (*entity.Account, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

// CategoryUsecase is a mock implementation of usecase.CategoryUsecase.
type CategoryUsecase struct {
	mock.Mock
}

func (m *CategoryUsecase) Create(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *CategoryUsecase) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Category), args.Error(1)
}

// EventUsecase is a mock implementation of usecase.EventUsecase.
type EventUsecase struct {
	mock.Mock
}

func (m *EventUsecase) Create(ctx context.Context, organizerID uuid.UUID, input *usecase.EventInput, path string) (*entity.Event, error) {
	args := m.Called(ctx, organizerID, input, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *EventUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *EventUsecase) Update(ctx context.Context, requesterID, eventID uuid.UUID, input *usecase.EventInput, path string) (*entity.Event, error) {
	args := m.Called(ctx, requesterID, eventID, input, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Event), args.Error(1)
}

func (m *EventUsecase) List(ctx context.Context, query usecase.ListEventsQuery) (*usecase.Paginated[*entity.Event], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.Paginated[*entity.Event]), args.Error(1)
}

func (m *EventUsecase) ListByOrganizer(ctx context.Context, organizerID uuid.UUID, page int) (*usecase.Paginated[*entity.Event], error) {
	args := m.Called(ctx, organizerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.Paginated[*entity.Event]), args.Error(1)
}

func (m *EventUsecase) ListRelated(ctx context.Context, categoryID, excludeEventID uuid.UUID, page int) (*usecase.Paginated[*entity.Event], error) {
	args := m.Called(ctx, categoryID, excludeEventID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.Paginated[*entity.Event]), args.Error(1)
}

func (m *EventUsecase) Delete(ctx context.Context, id uuid.UUID, path string) error {
	args := m.Called(ctx, id, path)

	return args.Error(0)
}

// OrderUsecase is a mock implementation of usecase.OrderUsecase.
type OrderUsecase struct {
	mock.Mock
}

func (m *OrderUsecase) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *OrderUsecase) ListByEvent(ctx context.Context, eventID uuid.UUID, buyerName string) ([]*entity.OrderRow, error) {
	args := m.Called(ctx, eventID, buyerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderRow), args.Error(1)
}

func (m *OrderUsecase) ListByBuyer(ctx context.Context, buyerID uuid.UUID, page int) (*usecase.Paginated[*entity.Order], error) {
	args := m.Called(ctx, buyerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.Paginated[*entity.Order]), args.Error(1)
}

func (m *OrderUsecase) TicketQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}

// CheckoutUsecase is a mock implementation of usecase.CheckoutUsecase.
type CheckoutUsecase struct {
	mock.Mock
}

func (m *CheckoutUsecase) CheckoutOrder(ctx context.Context, input *usecase.CheckoutOrderInput) (string, error) {
	args := m.Called(ctx, input)

	return args.String(0), args.Error(1)
}

func (m *CheckoutUsecase) HandlePaymentEvent(ctx context.Context, event *service.PaymentEvent) (*entity.Order, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}
