package ports

import (
	"context"

	"foodorder/internal/core/domain/model/cart"
)

// CartRepository stores the cart of the active ordering session.
// The engine models a single active session, so the repository holds one
// cart; implementations may keep it in process memory or in an external
// store such as redis.
type CartRepository interface {
	// Get returns the active session's cart, creating an empty one if none
	// exists yet.
	Get(ctx context.Context) (*cart.Cart, error)

	// Save persists the cart after mutation.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Clear empties the stored cart. Called atomically with successful order
	// placement.
	Clear(ctx context.Context) error
}
