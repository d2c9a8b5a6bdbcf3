// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is an internal user record linked to an external identity provider.
// Accounts are created and removed exclusively through identity-provider
// webhook notifications, never through a local registration flow.
type Account struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the account.
	IdentityID string    `json:"identity_id"` // The external identity-provider id, unique per account.
	Email      string    `json:"email"`       // The account's email address, unique.
	Username   string    `json:"username"`    // The account's handle, unique.
	FirstName  string    `json:"first_name"`  // The account holder's first name.
	LastName   string    `json:"last_name"`   // The account holder's last name.
	PhotoURL   string    `json:"photo_url"`   // URL of the profile photo hosted by the identity provider.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this account was created.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

// FullName returns the display name used in order projections.
func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Profile is the public projection of an Account, nested into event and
// order reads. Contact and identity-provider fields stay out of it; they
// never appear outside account-lifecycle responses.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// Profile returns the account's public projection.
func (a *Account) Profile() *Profile {
	if a == nil {
		return nil
	}

	return &Profile{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}
