package impl

import (
	"context"
	"log/slog"

	"evently/config"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Metadata keys carried through the payment provider and back on the webhook.
const (
	metadataEventID = "eventId"
	metadataBuyerID = "buyerId"
)

type checkoutService struct {
	gateway      service.PaymentGateway
	orderUsecase usecase.OrderUsecase
	publisher    service.EventPublisher
	config       *config.Config
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Gateway      service.PaymentGateway
	OrderUsecase usecase.OrderUsecase
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		gateway:      params.Gateway,
		orderUsecase: params.OrderUsecase,
		publisher:    params.Publisher,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// CheckoutOrder creates a hosted payment session for one event at its listed
// price and returns the redirect URL. No order exists until the provider's
// webhook confirms completion.
func (s *checkoutService) CheckoutOrder(ctx context.Context, input *usecase.CheckoutOrderInput) (string, error) {
	unitAmount, err := toMinorUnits(input.Price, input.IsFree)
	if err != nil {
		return "", domainerrors.ErrInvalidPrice.WrapMessage(err.Error())
	}

	spec := &service.CheckoutSessionSpec{
		ProductName: input.EventTitle,
		UnitAmount:  unitAmount,
		Currency:    s.config.Payment.Currency,
		Metadata: map[string]string{
			metadataEventID: input.EventID.String(),
			metadataBuyerID: input.BuyerID.String(),
		},
		SuccessURL: s.config.Payment.SuccessURL,
		CancelURL:  s.config.Payment.CancelURL,
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, spec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create checkout session")
	}

	return session.URL, nil
}

// HandlePaymentEvent reconciles a verified provider event. Only a completed
// checkout session persists an order; every other event type is acknowledged
// without side effects.
func (s *checkoutService) HandlePaymentEvent(ctx context.Context, event *service.PaymentEvent) (*entity.Order, error) {
	if event.Type != service.CheckoutEventCompleted {
		return nil, nil
	}

	eventID, err := uuid.Parse(event.Metadata[metadataEventID])
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment event carries no valid event id")
	}

	buyerID, err := uuid.Parse(event.Metadata[metadataBuyerID])
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment event carries no valid buyer id")
	}

	order, err := s.orderUsecase.Create(ctx, &usecase.CreateOrderInput{
		PaymentSessionID: event.SessionID,
		TotalAmount:      fromMinorUnits(event.AmountTotal),
		EventID:          eventID,
		BuyerID:          buyerID,
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderCreated(ctx, order)

	return order, nil
}

// publishOrderCreated notifies downstream consumers. The order is already
// persisted, so a broker failure is logged and the webhook still succeeds.
func (s *checkoutService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	orderEvent := &service.OrderEvent{
		Type:             service.OrderEventCreated,
		OrderID:          order.ID.String(),
		TotalAmount:      order.TotalAmount,
		PaymentSessionID: order.PaymentSessionID,
	}
	if order.EventID != nil {
		orderEvent.EventID = order.EventID.String()
	}
	if order.BuyerID != nil {
		orderEvent.BuyerID = order.BuyerID.String()
	}

	if err := s.publisher.PublishOrderEvent(ctx, orderEvent); err != nil && s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "Failed to publish order event",
			slog.String("orderID", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// toMinorUnits converts a decimal price string to the provider's minor units.
// Free events always charge zero regardless of the stored price string.
func toMinorUnits(price string, isFree bool) (int64, error) {
	if isFree {
		return 0, nil
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return 0, errors.Wrap(err, "price is not a decimal amount")
	}

	return amount.Shift(2).IntPart(), nil
}

// fromMinorUnits renders the provider's minor-unit amount as the decimal
// string stored on orders, trimming trailing zeros ("2500" becomes "25").
func fromMinorUnits(amountTotal int64) string {
	return decimal.NewFromInt(amountTotal).Shift(-2).String()
}
