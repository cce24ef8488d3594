package category

import (
	"context"
	"errors"

	"github.com/ArnoutVos/Firedrive/internal/model"
	"github.com/ArnoutVos/Firedrive/internal/store"
)

const extension = "com_firedrive"

// Resolver validates category ids and creates categories on the fly from
// free-text labels. The hierarchy itself is owned elsewhere.
type Resolver interface {
	// Resolve returns the id when the category exists, 0 when it does not.
	Resolve(ctx context.Context, id uint) (uint, error)
	// Create inserts a new published top-level category and returns its id.
	Create(ctx context.Context, title, language string) (uint, error)
}

var _ Resolver = (*StoreResolver)(nil)

type StoreResolver struct {
	store store.CategoryStore
}

func NewStoreResolver(store store.CategoryStore) *StoreResolver {
	return &StoreResolver{
		store: store,
	}
}

func (r *StoreResolver) Resolve(ctx context.Context, id uint) (uint, error) {
	category, err := r.store.GetCategory(ctx, id)
	if errors.Is(err, store.ErrCategoryNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return category.ID, nil
}

func (r *StoreResolver) Create(ctx context.Context, title, language string) (uint, error) {
	category := &model.Category{
		Title:     title,
		ParentID:  1,
		Extension: extension,
		Language:  language,
		Published: 1,
	}

	if err := r.store.CreateCategory(ctx, category); err != nil {
		return 0, err
	}

	return category.ID, nil
}
