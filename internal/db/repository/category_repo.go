package repository

import (
	"context"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error)
}

// CategoryRepository exposes read access to trivia categories.
type CategoryRepository struct {
	store categoryStore
}

// NewCategoryRepository wraps sqlc Queries for category lookups.
func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]sqlcgen.Category, error) {
	return r.store.ListCategories(ctx)
}

// Get fetches one category, returning ErrNotFound when the id has no row.
func (r *CategoryRepository) Get(ctx context.Context, id int32) (sqlcgen.Category, error) {
	category, err := r.store.GetCategory(ctx, id)
	if err != nil {
		return sqlcgen.Category{}, translate(err)
	}
	return category, nil
}
