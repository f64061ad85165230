package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	cartapp "pawmart/internal/cart/application"
	catalog "pawmart/internal/catalog/application"
	"pawmart/internal/order/domain"
)

var (
	ErrCartEmpty            = errors.New("cart is empty")
	ErrProductUnavailable   = errors.New("product no longer available")
	ErrOutOfStock           = errors.New("product is out of stock")
	ErrPriceMismatch        = errors.New("price mismatch detected")
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// subtotalTolerance absorbs floating-point accumulation between client and
// server; it is not a business allowance.
const subtotalTolerance = 0.01

const listLimit = 100

type CreateOrderInput struct {
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	Subtotal        float64                `json:"subtotal"`
	Shipping        float64                `json:"shipping"`
	Tax             float64                `json:"tax"`
	Total           float64                `json:"total"`
}

type Service struct {
	log      *slog.Logger
	orders   OrderRepository
	carts    CartStore
	products catalog.ProductFinder
}

func NewService(log *slog.Logger, orders OrderRepository, carts CartStore, products catalog.ProductFinder) *Service {
	return &Service{log: log, orders: orders, carts: carts, products: products}
}

// CreateOrder snapshots the session's cart into an immutable order.
// Unlike cart mutation, resolution is strict: every line must resolve to
// an in-stock product, none may be silently dropped.
//
// The order insert and the cart reset are two separate writes with no
// transaction across them. A crash in between leaves the order recorded
// and the cart stale, which is recoverable (the cart gets overwritten or
// re-cleared later) but lets a naive client retry place a duplicate order;
// the idempotency guard on the route blunts that for cooperating clients.
func (s *Service) CreateOrder(ctx context.Context, sessionID string, in CreateOrderInput) (*domain.Order, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if errors.Is(err, cartapp.ErrCartNotFound) {
		return nil, ErrCartEmpty
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]domain.OrderItem, 0, len(cart.Items))
	var subtotal float64
	for _, line := range cart.Items {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, line.ProductID)
		}
		if err != nil {
			return nil, err
		}
		if !product.InStock {
			return nil, fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
		}

		items = append(items, domain.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: product.Image,
			Price:        product.Price,
			Quantity:     line.Quantity,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	if math.Abs(subtotal-in.Subtotal) > subtotalTolerance {
		return nil, ErrPriceMismatch
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:              uuid.NewString(),
		OrderNumber:     newOrderNumber(),
		SessionID:       sessionID,
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		Subtotal:        in.Subtotal,
		Shipping:        in.Shipping,
		Tax:             in.Tax,
		Total:           in.Total,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	if err := s.carts.Reset(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("order %s persisted but cart reset failed: %w", order.ID, err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	return s.orders.ListBySession(ctx, sessionID, listLimit)
}

func (s *Service) GetOrder(ctx context.Context, id, sessionID string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id, sessionID)
}

func (s *Service) GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return s.orders.GetByNumber(ctx, orderNumber)
}

// UpdateStatus accepts any member of the status set regardless of the
// current value; only non-members are rejected.
func (s *Service) UpdateStatus(ctx context.Context, id, sessionID, status string) error {
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.orders.SetStatus(ctx, id, sessionID, domain.Status(status))
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id, sessionID, status string) error {
	if !domain.ValidPaymentStatus(status) {
		return ErrInvalidPaymentStatus
	}
	return s.orders.SetPaymentStatus(ctx, id, sessionID, domain.PaymentStatus(status))
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
