// Package cartrepo provides an in-process CartRepository. The cart is
// session state, not durable history, so a mutex-guarded snapshot of the
// lines is all the persistence it needs. Use the redis implementation when
// the session must survive process restarts.
package cartrepo

import (
	"context"
	"sync"

	"foodorder/internal/core/domain/model/cart"
)

// MemoryCartRepository implements CartRepository with an in-process snapshot
// of the active session's cart lines. Safe for concurrent use.
type MemoryCartRepository struct {
	mu    sync.Mutex
	lines []cart.Line
}

// NewMemoryCartRepository creates an empty in-memory cart store.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{}
}

// Get returns the active session's cart, empty if nothing has been saved.
// The returned aggregate is rebuilt from the stored line snapshot so callers
// can never mutate repository state through it.
func (r *MemoryCartRepository) Get(_ context.Context) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.lines) == 0 {
		return cart.NewCart(), nil
	}

	return cart.RestoreCart(r.lines)
}

// Save persists the cart's current line snapshot.
func (r *MemoryCartRepository) Save(_ context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = aggregate.Lines()
	return nil
}

// Clear empties the stored cart.
func (r *MemoryCartRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = nil
	return nil
}
