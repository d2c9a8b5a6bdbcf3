package handler

import (
	"net/http"

	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/response"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the checkout flow.
type CheckoutHandler struct {
	uc usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// CheckoutRequest is the payload for starting a hosted checkout session.
type CheckoutRequest struct {
	EventID    uuid.UUID `json:"event_id" validate:"required"`
	EventTitle string    `json:"event_title" validate:"required"`
	Price      string    `json:"price"`
	IsFree     bool      `json:"is_free"`
}

// CheckoutResponse carries the hosted session URL the buyer is redirected to.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// Checkout creates a hosted payment session for one event. No order exists
// until the provider's webhook confirms completion.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	buyerID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	url, err := h.uc.CheckoutOrder(c.Request().Context(), &usecase.CheckoutOrderInput{
		EventID:    req.EventID,
		EventTitle: req.EventTitle,
		Price:      req.Price,
		IsFree:     req.IsFree,
		BuyerID:    buyerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CheckoutResponse{URL: url}, "Checkout session created")
}
