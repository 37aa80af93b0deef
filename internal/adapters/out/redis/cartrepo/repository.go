// Package cartrepo provides a redis-backed CartRepository, keeping the
// active session's cart outside the process so it survives restarts. Lines
// are stored as a JSON document under a single key.
package cartrepo

import (
	"context"
	"encoding/json"
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// cartKey is the redis key holding the active session's cart.
const cartKey = "foodorder:cart"

// lineDocument represents one cart line in the stored JSON document.
type lineDocument struct {
	ItemName       string `json:"itemName"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// RedisCartRepository implements CartRepository on top of a redis client.
type RedisCartRepository struct {
	client *redis.Client
}

// NewRedisCartRepository creates a cart store using the given redis client.
func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

// Get returns the active session's cart, empty when the key is absent.
func (r *RedisCartRepository) Get(ctx context.Context) (*cart.Cart, error) {
	payload, err := r.client.Get(ctx, cartKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.NewCart(), nil
		}
		return nil, err
	}

	var documents []lineDocument
	if err = json.Unmarshal(payload, &documents); err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(documents))
	for _, doc := range documents {
		unitPrice, priceErr := kernel.NewMoney(doc.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := cart.NewLine(doc.ItemName, unitPrice, doc.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return cart.NewCart(), nil
	}

	return cart.RestoreCart(lines)
}

// Save persists the cart's current line snapshot as a JSON document.
// The key has no TTL: the cart lives until placement clears it.
func (r *RedisCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	lines := aggregate.Lines()
	documents := make([]lineDocument, 0, len(lines))
	for _, line := range lines {
		documents = append(documents, lineDocument{
			ItemName:       line.ItemName(),
			UnitPriceCents: line.UnitPrice().Cents(),
			Quantity:       line.Quantity(),
		})
	}

	payload, err := json.Marshal(documents)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, cartKey, payload, 0).Err()
}

// Clear empties the stored cart by deleting the key.
func (r *RedisCartRepository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, cartKey).Err()
}
