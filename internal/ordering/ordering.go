package ordering

import (
	"context"

	"github.com/ArnoutVos/Firedrive/internal/store"
)

// Allocator computes the ordering position for a new document. Positions
// are only meaningful among non-trashed rows of the same category, but
// allocation itself is a plain max+1 over the whole table.
type Allocator struct {
	store store.DocumentStore
}

func NewAllocator(store store.DocumentStore) *Allocator {
	return &Allocator{
		store: store,
	}
}

// Next returns the position for a new record, 1 for an empty table.
func (a *Allocator) Next(ctx context.Context) (int, error) {
	max, err := a.store.MaxOrdering(ctx)
	if err != nil {
		return 0, err
	}

	return max + 1, nil
}
