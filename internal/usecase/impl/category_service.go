// Package impl contains the concrete use-case implementations wired by Fx.
package impl

import (
	"context"
	"strings"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
	}
}

// Create inserts a new category with a unique name.
func (s *categoryService) Create(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category name is required")
	}

	category := &entity.Category{Name: name}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

// List returns all categories.
func (s *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
