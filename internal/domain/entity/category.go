package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named tag attached to events. Categories are created on
// demand by organizers and are never updated or deleted.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"` // Unique display name.
	CreatedAt time.Time `json:"created_at"`
}
