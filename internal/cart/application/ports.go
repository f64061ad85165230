package application

import (
	"context"

	"pawmart/internal/cart/domain"
)

type CartRepository interface {
	// Get returns ErrCartNotFound when the session has no cart yet.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	// Upsert replaces the session's cart, creating it when absent.
	Upsert(ctx context.Context, cart *domain.Cart) error
	// Reset empties the session's cart in place, creating an empty one
	// when none exists. Never fails on a missing cart.
	Reset(ctx context.Context, sessionID string) error
}
