package handler

import (
	"io"
	"log/slog"
	"net/http"

	"evently/internal/delivery/http/response"
	"evently/internal/domain/service"
	"evently/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Webhook signature headers.
const (
	identityWebhookIDHeader        = "webhook-id"
	identityWebhookTimestampHeader = "webhook-timestamp"
	identityWebhookSignatureHeader = "webhook-signature"

	paymentSignatureHeader = "Payment-Signature"
)

// WebhookHandler receives the identity-provider and payment-provider
// callbacks. Both paths verify the payload signature before trusting any
// field of the body.
type WebhookHandler struct {
	identityVerifier service.IdentityWebhookVerifier
	paymentVerifier  service.PaymentWebhookVerifier
	accountUsecase   usecase.AccountUsecase
	checkoutUsecase  usecase.CheckoutUsecase
	logger           *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(
	identityVerifier service.IdentityWebhookVerifier,
	paymentVerifier service.PaymentWebhookVerifier,
	accountUsecase usecase.AccountUsecase,
	checkoutUsecase usecase.CheckoutUsecase,
	logger *slog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		identityVerifier: identityVerifier,
		paymentVerifier:  paymentVerifier,
		accountUsecase:   accountUsecase,
		checkoutUsecase:  checkoutUsecase,
		logger:           logger,
	}
}

// HandleIdentityWebhook consumes account lifecycle events pushed by the
// identity provider.
func (h *WebhookHandler) HandleIdentityWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook payload")
	}

	headers := service.IdentityWebhookHeaders{
		ID:        c.Request().Header.Get(identityWebhookIDHeader),
		Timestamp: c.Request().Header.Get(identityWebhookTimestampHeader),
		Signature: c.Request().Header.Get(identityWebhookSignatureHeader),
	}

	event, err := h.identityVerifier.Verify(payload, headers)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	switch event.Type {
	case service.IdentityEventUserCreated:
		account, err := h.accountUsecase.Create(ctx, &usecase.CreateAccountInput{
			IdentityID: event.Data.ID,
			Email:      event.Data.Email,
			Username:   event.Data.Username,
			FirstName:  event.Data.FirstName,
			LastName:   event.Data.LastName,
			PhotoURL:   event.Data.PhotoURL,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, account, "Account created")

	case service.IdentityEventUserUpdated:
		account, err := h.accountUsecase.UpdateByIdentityID(ctx, event.Data.ID, &usecase.UpdateAccountInput{
			Username:  event.Data.Username,
			FirstName: event.Data.FirstName,
			LastName:  event.Data.LastName,
			PhotoURL:  event.Data.PhotoURL,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, account, "Account updated")

	case service.IdentityEventUserDeleted:
		account, err := h.accountUsecase.DeleteByIdentityID(ctx, event.Data.ID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, account, "Account deleted")

	default:
		// Unknown event types are acknowledged so the provider stops
		// redelivering them.
		h.logger.Info("Ignoring unhandled identity event",
			slog.String("type", event.Type),
		)

		return response.Success(c, http.StatusOK, nil, "Event ignored")
	}
}

// HandlePaymentWebhook consumes checkout notifications pushed by the payment
// provider and reconciles completed sessions into orders.
func (h *WebhookHandler) HandlePaymentWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read webhook payload")
	}

	event, err := h.paymentVerifier.VerifyEvent(payload, c.Request().Header.Get(paymentSignatureHeader))
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.checkoutUsecase.HandlePaymentEvent(c.Request().Context(), event)
	if err != nil {
		return errors.WithStack(err)
	}

	if order == nil {
		return response.Success(c, http.StatusOK, nil, "Event ignored")
	}

	return response.Success(c, http.StatusOK, order, "Order recorded")
}
