package service

import (
	"context"
	"fmt"
	"strings"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type CategoryService struct {
	store      ports.Store
	transactor ports.Transactor
}

var _ ports.CategoryService = (*CategoryService)(nil)

func NewCategoryService(store ports.Store, transactor ports.Transactor) *CategoryService {
	return &CategoryService{store: store, transactor: transactor}
}

func (s *CategoryService) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	category := domain.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Color:       strings.TrimSpace(input.Color),
		CreatedAt:   defaultClock(),
	}
	if category.Name == "" {
		return domain.Category{}, fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	if category.Color == "" {
		category.Color = domain.DefaultCategoryColor
	}
	if !domain.ValidColor(category.Color) {
		return domain.Category{}, fmt.Errorf("%w: invalid color %q", domain.ErrInvalidInput, category.Color)
	}

	id, err := s.store.CreateCategory(ctx, category)
	if err != nil {
		return domain.Category{}, err
	}
	category.ID = id
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.store.ListCategories(ctx)
}

// DeleteCategory removes the category; tasks referencing it keep existing
// without a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint64) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context, store ports.Store) error {
		return store.DeleteCategory(ctx, id)
	})
}
