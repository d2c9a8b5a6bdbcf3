package usecase

import (
	"context"

	"evently/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput carries the identity-provider attributes of a new account.
type CreateAccountInput struct {
	IdentityID string
	Email      string
	Username   string
	FirstName  string
	LastName   string
	PhotoURL   string
}

// UpdateAccountInput carries the mutable profile attributes pushed by the
// identity provider on profile changes.
type UpdateAccountInput struct {
	Username  string
	FirstName string
	LastName  string
	PhotoURL  string
}

// AccountUsecase defines the account lifecycle use cases, driven by
// identity-provider webhook notifications.
type AccountUsecase interface {
	// Create inserts an account on first sign-up and pushes the internal id
	// back to the identity provider as public metadata.
	Create(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)

	// GetByID returns one account.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// UpdateByIdentityID patches the profile attributes of the account
	// linked to the given external identity.
	UpdateByIdentityID(ctx context.Context, identityID string, input *UpdateAccountInput) (*entity.Account, error)

	// DeleteByIdentityID detaches the account's references from its events
	// and orders, removes the account record atomically, then invalidates
	// all cached pages. The events and orders themselves survive.
	DeleteByIdentityID(ctx context.Context, identityID string) (*entity.Account, error)
}
