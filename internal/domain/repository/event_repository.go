package repository

import (
	"context"

	"evently/internal/domain/entity"
	"evently/internal/errors"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventFilter describes the conjunctive conditions of an event listing.
// Zero-valued fields are not applied.
type EventFilter struct {
	// TitleContains matches the title case-insensitively as a substring.
	TitleContains string
	// CategoryID restricts to events of one category.
	CategoryID *uuid.UUID
	// OrganizerID restricts to events owned by one account.
	OrganizerID *uuid.UUID
	// ExcludeID drops a single event from the result (related-events listing).
	ExcludeID *uuid.UUID

	Offset int
	Limit  int
}

// EventRepository defines the operations for event persistence. Reads resolve
// the category (id, name) and organizer (id, first name, last name) references.
type EventRepository interface {
	// Create persists a new event entity.
	Create(ctx context.Context, event *entity.Event) error

	// FindByID retrieves a single event with its references resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// Update saves the modified event fields, including category reassignment.
	Update(ctx context.Context, event *entity.Event) error

	// Delete removes an event. It reports whether a record was actually
	// deleted; deleting an absent event is not an error.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns the filtered events ordered by creation time descending,
	// along with the total match count before offset/limit.
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, int64, error)

	// DetachOrganizer clears the organizer reference on every event owned by
	// the given account. Used by the account-deletion cascade.
	DetachOrganizer(ctx context.Context, organizerID uuid.UUID) error
}
