package service

import (
	"context"

	"github.com/google/uuid"
)

// Identity-provider event types consumed by the identity webhook.
const (
	IdentityEventUserCreated = "user.created"
	IdentityEventUserUpdated = "user.updated"
	IdentityEventUserDeleted = "user.deleted"
)

// IdentityWebhookHeaders carries the three signature headers the identity
// provider attaches to every webhook delivery.
type IdentityWebhookHeaders struct {
	ID        string
	Timestamp string
	Signature string
}

// IdentityEvent is a verified webhook notification from the identity provider.
type IdentityEvent struct {
	Type string
	Data IdentityEventData
}

// IdentityEventData carries the subject account's attributes. Only ID is set
// on deletion events.
type IdentityEventData struct {
	ID        string
	Email     string
	Username  string
	FirstName string
	LastName  string
	PhotoURL  string
}

// IdentityWebhookVerifier validates the signed payload of an inbound
// identity webhook before any field is trusted.
type IdentityWebhookVerifier interface {
	Verify(payload []byte, headers IdentityWebhookHeaders) (*IdentityEvent, error)
}

// IdentityProvider is the outbound client to the identity provider's API.
type IdentityProvider interface {
	// SetAccountMetadata pushes the internal account id back to the identity
	// provider as public metadata after account creation, so session tokens
	// can carry it.
	SetAccountMetadata(ctx context.Context, identityID string, accountID uuid.UUID) error
}

// SessionVerifier validates an identity-provider session token and returns
// the internal account id embedded in its claims.
type SessionVerifier interface {
	Verify(token string) (uuid.UUID, error)
}
