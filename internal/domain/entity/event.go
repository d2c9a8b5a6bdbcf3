package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is the sellable item of the system. It references its Category and
// its organizer Account by identifier; both references are resolved into the
// nested pointers at read time by the repository layer.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`       // Required.
	Description string    `json:"description"` // Optional free text.
	Location    string    `json:"location"`    // Optional venue description.
	ImageURL    string    `json:"image_url"`   // Required cover image.
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	Price       string    `json:"price"`   // String-encoded decimal, e.g. "25.50".
	IsFree      bool      `json:"is_free"` // When true the price is ignored at checkout.
	URL         string    `json:"url"`     // Optional external info URL.

	// CategoryID references a Category. Nil when the event has no category.
	CategoryID *uuid.UUID `json:"category_id"`
	// OrganizerID references the owning Account. Nil after the organizer's
	// account has been deleted and its references detached.
	OrganizerID *uuid.UUID `json:"organizer_id"`

	// Category is populated on reads with the referenced category (id, name).
	Category *Category `json:"category,omitempty"`
	// Organizer is populated on reads with the owning account's public
	// projection (id, first name, last name).
	Organizer *Profile `json:"organizer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOrganizedBy reports whether the given account owns this event.
// Events whose organizer reference has been detached have no owner.
func (e *Event) IsOrganizedBy(accountID uuid.UUID) bool {
	return e.OrganizerID != nil && *e.OrganizerID == accountID
}
