package handler

import (
	"net/http"
	"strconv"

	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/response"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event-related handlers.
type EventHandler struct {
	uc usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

// CreateEvent handles the event creation request. The caller's account
// becomes the event's organizer.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	organizerID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.uc.Create(c.Request().Context(), organizerID, &input, revalidationPath(c, "/events"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// GetEvent returns one event with its organizer and category resolved.
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	event, err := h.uc.GetByID(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// UpdateEvent handles the full-update request for an event the caller
// organizes.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	requesterID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.uc.Update(c.Request().Context(), requesterID, eventID, &input, revalidationPath(c, "/events/"+eventID.String()))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// DeleteEvent removes an event. Deleting an absent event still succeeds.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if _, ok := middleware.AccountID(c); !ok {
		return domainerrors.ErrUnauthorized
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	if err := h.uc.Delete(c.Request().Context(), eventID, revalidationPath(c, "/events")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}

// ListEvents returns one page of the public event listing.
func (h *EventHandler) ListEvents(c echo.Context) error {
	query := usecase.ListEventsQuery{
		Text:     c.QueryParam("query"),
		Category: c.QueryParam("category"),
		Page:     pageParam(c),
	}

	page, err := h.uc.List(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// ListRelatedEvents returns events sharing the viewed event's category.
func (h *EventHandler) ListRelatedEvents(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	event, err := h.uc.GetByID(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	// An uncategorized event has no related listing.
	if event.CategoryID == nil {
		return response.Success(c, http.StatusOK, &usecase.Paginated[any]{Items: []any{}}, "")
	}

	page, err := h.uc.ListRelated(c.Request().Context(), *event.CategoryID, eventID, pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// ListMyEvents returns one page of the caller's own events.
func (h *EventHandler) ListMyEvents(c echo.Context) error {
	organizerID, ok := middleware.AccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	page, err := h.uc.ListByOrganizer(c.Request().Context(), organizerID, pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// pageParam reads the 1-based page query parameter, defaulting to the first
// page on absence or garbage.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// revalidationPath names the cached rendering a mutation invalidates. The
// client may pass the page it mutated from; otherwise the default applies.
func revalidationPath(c echo.Context, fallback string) string {
	if path := c.QueryParam("path"); path != "" {
		return path
	}

	return fallback
}
