package usecase

import (
	"context"

	"evently/internal/domain/entity"
)

// CategoryUsecase defines the category management use cases.
type CategoryUsecase interface {
	// Create inserts a new category; fails with a conflict when the name is taken.
	Create(ctx context.Context, name string) (*entity.Category, error)

	// List returns all categories in natural store order.
	List(ctx context.Context) ([]*entity.Category, error)
}
