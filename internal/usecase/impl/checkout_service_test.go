package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"evently/config"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
	mockSvc "evently/internal/mocks/service"
	mockUC "evently/internal/mocks/usecase"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCheckoutService() (*checkoutService, *mockSvc.PaymentGateway, *mockUC.OrderUsecase, *mockSvc.EventPublisher) {
	gateway := &mockSvc.PaymentGateway{}
	orderUsecase := &mockUC.OrderUsecase{}
	publisher := &mockSvc.EventPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Payment: &config.PaymentConfig{
			Currency:   "usd",
			SuccessURL: "https://app.example.com/profile",
			CancelURL:  "https://app.example.com/",
		},
	}

	svc := NewCheckoutService(CheckoutServiceParams{
		Gateway:      gateway,
		OrderUsecase: orderUsecase,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       logger,
	})

	return svc.(*checkoutService), gateway, orderUsecase, publisher
}

func TestCheckoutService_CheckoutOrder_PaidEvent(t *testing.T) {
	svc, gateway, _, _ := createTestCheckoutService()
	ctx := context.Background()
	eventID := uuid.New()
	buyerID := uuid.New()

	gateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(spec *service.CheckoutSessionSpec) bool {
		return spec.UnitAmount == 2500 &&
			spec.Currency == "usd" &&
			spec.ProductName == "Go Conference" &&
			spec.Metadata["eventId"] == eventID.String() &&
			spec.Metadata["buyerId"] == buyerID.String()
	})).Return(&service.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil)

	url, err := svc.CheckoutOrder(ctx, &usecase.CheckoutOrderInput{
		EventID:    eventID,
		EventTitle: "Go Conference",
		Price:      "25",
		IsFree:     false,
		BuyerID:    buyerID,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_1", url)

	gateway.AssertExpectations(t)
}

func TestCheckoutService_CheckoutOrder_FreeEventChargesZero(t *testing.T) {
	svc, gateway, _, _ := createTestCheckoutService()
	ctx := context.Background()

	gateway.On("CreateCheckoutSession", ctx, mock.MatchedBy(func(spec *service.CheckoutSessionSpec) bool {
		return spec.UnitAmount == 0
	})).Return(&service.CheckoutSession{ID: "cs_2", URL: "https://pay.example.com/cs_2"}, nil)

	// A free event ignores whatever price string is stored.
	_, err := svc.CheckoutOrder(ctx, &usecase.CheckoutOrderInput{
		EventID:    uuid.New(),
		EventTitle: "Meetup",
		Price:      "999",
		IsFree:     true,
		BuyerID:    uuid.New(),
	})
	require.NoError(t, err)
}

func TestCheckoutService_CheckoutOrder_InvalidPrice(t *testing.T) {
	svc, gateway, _, _ := createTestCheckoutService()

	_, err := svc.CheckoutOrder(context.Background(), &usecase.CheckoutOrderInput{
		EventID:    uuid.New(),
		EventTitle: "Go Conference",
		Price:      "twenty five",
		BuyerID:    uuid.New(),
	})
	assert.Error(t, err)

	gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCheckoutService_HandlePaymentEvent_Completed(t *testing.T) {
	svc, _, orderUsecase, publisher := createTestCheckoutService()
	ctx := context.Background()
	eventID := uuid.New()
	buyerID := uuid.New()
	orderID := uuid.New()

	orderUsecase.On("Create", ctx, mock.MatchedBy(func(input *usecase.CreateOrderInput) bool {
		// 2500 minor units are stored as the decimal string "25".
		return input.PaymentSessionID == "cs_1" &&
			input.TotalAmount == "25" &&
			input.EventID == eventID &&
			input.BuyerID == buyerID
	})).Return(&entity.Order{
		ID:               orderID,
		PaymentSessionID: "cs_1",
		TotalAmount:      "25",
		EventID:          &eventID,
		BuyerID:          &buyerID,
	}, nil)

	publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
		return e.Type == service.OrderEventCreated && e.OrderID == orderID.String()
	})).Return(nil)

	order, err := svc.HandlePaymentEvent(ctx, &service.PaymentEvent{
		Type:        service.CheckoutEventCompleted,
		SessionID:   "cs_1",
		AmountTotal: 2500,
		Metadata: map[string]string{
			"eventId": eventID.String(),
			"buyerId": buyerID.String(),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)

	publisher.AssertExpectations(t)
}

func TestCheckoutService_HandlePaymentEvent_IgnoresOtherTypes(t *testing.T) {
	svc, _, orderUsecase, publisher := createTestCheckoutService()

	order, err := svc.HandlePaymentEvent(context.Background(), &service.PaymentEvent{
		Type:      "checkout.session.expired",
		SessionID: "cs_1",
	})
	require.NoError(t, err)
	assert.Nil(t, order)

	orderUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestCheckoutService_HandlePaymentEvent_InvalidMetadata(t *testing.T) {
	svc, _, orderUsecase, _ := createTestCheckoutService()

	_, err := svc.HandlePaymentEvent(context.Background(), &service.PaymentEvent{
		Type:        service.CheckoutEventCompleted,
		SessionID:   "cs_1",
		AmountTotal: 2500,
		Metadata:    map[string]string{"eventId": "not-a-uuid"},
	})
	assert.Error(t, err)

	orderUsecase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_HandlePaymentEvent_DuplicateDelivery(t *testing.T) {
	svc, _, orderUsecase, publisher := createTestCheckoutService()
	ctx := context.Background()
	eventID := uuid.New()
	buyerID := uuid.New()

	orderUsecase.On("Create", ctx, mock.Anything).Return(nil, domainerrors.ErrOrderAlreadyRecorded)

	_, err := svc.HandlePaymentEvent(ctx, &service.PaymentEvent{
		Type:        service.CheckoutEventCompleted,
		SessionID:   "cs_1",
		AmountTotal: 2500,
		Metadata: map[string]string{
			"eventId": eventID.String(),
			"buyerId": buyerID.String(),
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderAlreadyRecorded)

	// No event is published for a replayed confirmation.
	publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestCheckoutService_HandlePaymentEvent_PublishFailureIsNotFatal(t *testing.T) {
	svc, _, orderUsecase, publisher := createTestCheckoutService()
	ctx := context.Background()
	eventID := uuid.New()
	buyerID := uuid.New()

	orderUsecase.On("Create", ctx, mock.Anything).Return(&entity.Order{
		ID:               uuid.New(),
		PaymentSessionID: "cs_1",
		TotalAmount:      "25",
		EventID:          &eventID,
		BuyerID:          &buyerID,
	}, nil)
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(errors.New("broker down"))

	// The order is already persisted, so the webhook still succeeds.
	order, err := svc.HandlePaymentEvent(ctx, &service.PaymentEvent{
		Type:        service.CheckoutEventCompleted,
		SessionID:   "cs_1",
		AmountTotal: 2500,
		Metadata: map[string]string{
			"eventId": eventID.String(),
			"buyerId": buyerID.String(),
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}
