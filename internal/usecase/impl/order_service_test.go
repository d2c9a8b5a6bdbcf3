package impl

import (
	"context"
	"testing"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	mockRepo "evently/internal/mocks/repository"
	mockSvc "evently/internal/mocks/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderService() (*orderService, *mockRepo.OrderRepository, *mockSvc.QRCodeService) {
	orderRepo := &mockRepo.OrderRepository{}
	qrcodeService := &mockSvc.QRCodeService{}

	service := NewOrderService(OrderServiceParams{
		OrderRepo:     orderRepo,
		QRCodeService: qrcodeService,
	})

	return service.(*orderService), orderRepo, qrcodeService
}

func TestOrderService_Create_Success(t *testing.T) {
	service, orderRepo, _ := createTestOrderService()
	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		PaymentSessionID: "cs_test_123",
		TotalAmount:      "25",
		EventID:          uuid.New(),
		BuyerID:          uuid.New(),
	}

	orderRepo.On("Create", ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.PaymentSessionID == input.PaymentSessionID &&
			o.TotalAmount == "25" &&
			o.EventID != nil && *o.EventID == input.EventID &&
			o.BuyerID != nil && *o.BuyerID == input.BuyerID
	})).Return(nil)

	order, err := service.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", order.PaymentSessionID)

	orderRepo.AssertExpectations(t)
}

func TestOrderService_Create_DuplicateSession(t *testing.T) {
	service, orderRepo, _ := createTestOrderService()
	ctx := context.Background()

	orderRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateOrder)

	_, err := service.Create(ctx, &usecase.CreateOrderInput{
		PaymentSessionID: "cs_test_123",
		TotalAmount:      "25",
		EventID:          uuid.New(),
		BuyerID:          uuid.New(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyRecorded)
}

func TestOrderService_ListByBuyer_Pagination(t *testing.T) {
	service, orderRepo, _ := createTestOrderService()
	ctx := context.Background()
	buyerID := uuid.New()

	orderRepo.On("ListByBuyer", ctx, buyerID, usecase.OrderPageSize, usecase.OrderPageSize).
		Return([]*entity.Order{{TotalAmount: "25"}}, int64(7), nil)

	page, err := service.ListByBuyer(ctx, buyerID, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	// ceil(7 / 3) = 3
	assert.Equal(t, 3, page.TotalPages)
}

func TestOrderService_ListByEvent(t *testing.T) {
	service, orderRepo, _ := createTestOrderService()
	ctx := context.Background()
	eventID := uuid.New()

	rows := []*entity.OrderRow{{EventTitle: "Go Conference", BuyerName: "Jane Doe"}}
	orderRepo.On("ListByEvent", ctx, eventID, "jane").Return(rows, nil)

	result, err := service.ListByEvent(ctx, eventID, "jane")
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Jane Doe", result[0].BuyerName)
}

func TestOrderService_TicketQR_Success(t *testing.T) {
	service, orderRepo, qrcodeService := createTestOrderService()
	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.On("FindByID", ctx, orderID).Return(&entity.Order{ID: orderID}, nil)
	qrcodeService.On("GenerateTicketQR", orderID).Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	qrBytes, err := service.TicketQR(ctx, orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestOrderService_TicketQR_OrderMissing(t *testing.T) {
	service, orderRepo, qrcodeService := createTestOrderService()
	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.On("FindByID", ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	_, err := service.TicketQR(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	qrcodeService.AssertNotCalled(t, "GenerateTicketQR", mock.Anything)
}
