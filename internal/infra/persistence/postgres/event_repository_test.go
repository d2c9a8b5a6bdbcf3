package postgres

import (
	"encoding/json"
	"testing"
	"time"

	"evently/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToEventDomain_OrganizerProjection(t *testing.T) {
	organizerID := uuid.New()
	eventM := &model.EventModel{
		ID:          uuid.New(),
		Title:       "Music Fest",
		ImageURL:    "https://cdn.example.com/fest.jpg",
		OrganizerID: &organizerID,
		Organizer: &model.AccountModel{
			ID:         organizerID,
			IdentityID: "user_abc",
			Email:      "organizer@example.com",
			Username:   "jdoe",
			FirstName:  "Jane",
			LastName:   "Doe",
			PhotoURL:   "https://cdn.example.com/jane.jpg",
			CreatedAt:  time.Now(),
		},
	}

	event := toEventDomain(eventM)

	require.NotNil(t, event.Organizer)
	assert.Equal(t, organizerID, event.Organizer.ID)
	assert.Equal(t, "Jane", event.Organizer.FirstName)
	assert.Equal(t, "Doe", event.Organizer.LastName)

	// The public listing serializes the event as-is, so the organizer's
	// private account fields must not survive the mapping.
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "user_abc")
	assert.NotContains(t, string(payload), "organizer@example.com")
	assert.NotContains(t, string(payload), "jdoe")
	assert.NotContains(t, string(payload), "jane.jpg")
}

func TestToEventDomain_DetachedOrganizer(t *testing.T) {
	event := toEventDomain(&model.EventModel{
		ID:       uuid.New(),
		Title:    "Orphaned Event",
		ImageURL: "https://cdn.example.com/orphan.jpg",
	})

	assert.Nil(t, event.OrganizerID)
	assert.Nil(t, event.Organizer)
}
