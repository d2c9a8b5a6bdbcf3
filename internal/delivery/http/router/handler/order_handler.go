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

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// ListOrdersByEvent returns the flat order projection for one event,
// optionally filtered by a substring of the buyer's name.
func (h *OrderHandler) ListOrdersByEvent(c echo.Context) error {
	if _, ok := middleware.AccountID(c); !ok {
		return domainerrors.ErrUnauthorized
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	rows, err := h.uc.ListByEvent(c.Request().Context(), eventID, c.QueryParam("buyer"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// ListMyOrders returns one page of the caller's order history.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	buyerID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	page, err := h.uc.ListByBuyer(c.Request().Context(), buyerID, pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// GetTicketQR renders the PNG ticket QR code for one order.
func (h *OrderHandler) GetTicketQR(c echo.Context) error {
	if _, ok := middleware.AccountID(c); !ok {
		return domainerrors.ErrUnauthorized
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	qrBytes, err := h.uc.TicketQR(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", qrBytes)
}
