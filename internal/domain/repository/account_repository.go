// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"evently/internal/domain/entity"
	"evently/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when an identity id, email or username is already taken.
	ErrDuplicateAccount = errors.New("account already exists")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIdentityID retrieves a single account by its external identity-provider id.
	FindByIdentityID(ctx context.Context, identityID string) (*entity.Account, error)

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account record. Detaching references held by events
	// and orders is the caller's responsibility (see TransactionManager).
	Delete(ctx context.Context, id uuid.UUID) error
}
