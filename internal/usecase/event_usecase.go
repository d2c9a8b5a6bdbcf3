package usecase

import (
	"context"
	"time"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// EventInput carries the organizer-supplied fields of an event, used both
// for creation and for full updates.
type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Price       string    `json:"price"`
	IsFree      bool      `json:"is_free"`
	URL         string    `json:"url"`
	CategoryID  uuid.UUID `json:"category_id"`
}

// ListEventsQuery describes the public event listing: an optional
// case-insensitive title substring, an optional category name and a 1-based
// page number.
type ListEventsQuery struct {
	Text     string
	Category string
	Page     int
}

// EventUsecase defines the event management use cases. Mutations take a
// logical presentation path whose cached rendering is invalidated on success.
type EventUsecase interface {
	// Create inserts a new event owned by the organizer account. Fails when
	// the organizer does not exist.
	Create(ctx context.Context, organizerID uuid.UUID, input *EventInput, path string) (*entity.Event, error)

	// GetByID returns one event with organizer and category resolved.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// Update applies the full patch to an existing event. Fails when the
	// requester is not the stored organizer or the event does not exist,
	// without mutating the stored record.
	Update(ctx context.Context, requesterID, eventID uuid.UUID, input *EventInput, path string) (*entity.Event, error)

	// List returns one page of events matching the query, newest first.
	List(ctx context.Context, query ListEventsQuery) (*Paginated[*entity.Event], error)

	// ListByOrganizer returns one page of the organizer's own events.
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID, page int) (*Paginated[*entity.Event], error)

	// ListRelated returns one page of events sharing a category, excluding
	// the event being viewed.
	ListRelated(ctx context.Context, categoryID, excludeEventID uuid.UUID, page int) (*Paginated[*entity.Event], error)

	// Delete removes an event if present; deleting an absent event is a
	// no-op and does not trigger revalidation.
	Delete(ctx context.Context, id uuid.UUID, path string) error
}
