package repository

import (
	"context"

	"evently/internal/domain/entity"
	"evently/internal/errors"
)

// Domain-specific errors for category persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category name is already taken.
	ErrDuplicateCategory = errors.New("category already exists")
)

// CategoryRepository defines the operations for category persistence.
type CategoryRepository interface {
	// Create persists a new category. The name is enforced unique by the store.
	Create(ctx context.Context, category *entity.Category) error

	// FindAll returns every category in natural store order.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByName retrieves a category by name, matched case-insensitively.
	FindByName(ctx context.Context, name string) (*entity.Category, error)
}
