package application

import (
	"context"

	cartdomain "pawmart/internal/cart/domain"
	"pawmart/internal/order/domain"
)

type OrderRepository interface {
	Insert(ctx context.Context, o *domain.Order) error
	ListBySession(ctx context.Context, sessionID string, limit int64) ([]domain.Order, error)
	// GetByID is scoped to the session; GetByNumber is not (customer
	// service looks orders up across sessions).
	GetByID(ctx context.Context, id, sessionID string) (*domain.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	SetStatus(ctx context.Context, id, sessionID string, status domain.Status) error
	SetPaymentStatus(ctx context.Context, id, sessionID string, status domain.PaymentStatus) error
}

// CartStore is the slice of the cart context the order creator needs:
// read the cart to snapshot it, reset it after the order is persisted.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*cartdomain.Cart, error)
	Reset(ctx context.Context, sessionID string) error
}
