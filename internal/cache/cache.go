package cache

import "context"

// Invalidator drops cached listings for a record group after a mutating
// batch or delete completes.
type Invalidator interface {
	Invalidate(ctx context.Context, group string) error
}

var _ Invalidator = (*Nop)(nil)

// Nop is used when no cache backend is configured.
type Nop struct{}

func NewNop() *Nop {
	return &Nop{}
}

func (Nop) Invalidate(ctx context.Context, group string) error {
	return nil
}
