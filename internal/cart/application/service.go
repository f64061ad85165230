package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/cart/domain"
	catalog "pawmart/internal/catalog/application"
	catalogdomain "pawmart/internal/catalog/domain"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
	ErrOutOfStock   = errors.New("product is out of stock")
)

// Totals reports the cart aggregates returned by every mutation.
type Totals struct {
	Total     float64 `json:"cart_total"`
	ItemCount int     `json:"cart_items"`
}

// ItemDetail is a cart line joined with its current catalog entry.
type ItemDetail struct {
	catalogdomain.Product
	Quantity int `json:"quantity"`
}

type Service struct {
	log      *slog.Logger
	carts    CartRepository
	products catalog.ProductFinder
}

func NewService(log *slog.Logger, carts CartRepository, products catalog.ProductFinder) *Service {
	return &Service{log: log, carts: carts, products: products}
}

// GetCart returns the session's cart, persisting a fresh empty one on
// first access.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	cart = emptyCart(sessionID)
	if err := s.carts.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem appends a line or bumps an existing one. Stock is only checked
// here; an item already in a cart that later goes out of stock stays until
// order creation rechecks it.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string, quantity int) (Totals, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return Totals{}, err
	}
	if !product.InStock {
		return Totals{}, fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
	}
	if quantity <= 0 {
		quantity = 1
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		cart = emptyCart(sessionID)
	} else if err != nil {
		return Totals{}, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}

	return s.recomputeAndSave(ctx, cart)
}

// UpdateItem sets an absolute quantity; zero or negative removes the line.
func (s *Service) UpdateItem(ctx context.Context, sessionID, productID string, quantity int) (Totals, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return Totals{}, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Totals{}, ErrItemNotFound
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
	}

	return s.recomputeAndSave(ctx, cart)
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (Totals, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return Totals{}, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart.Items) {
		return Totals{}, ErrItemNotFound
	}
	cart.Items = kept

	return s.recomputeAndSave(ctx, cart)
}

// ClearCart is idempotent: the cart ends up empty whether or not it
// existed before.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.carts.Reset(ctx, sessionID)
}

// ItemsWithProducts joins each line with its current catalog entry. Lines
// whose product no longer resolves are dropped from the result, not
// reported as errors.
func (s *Service) ItemsWithProducts(ctx context.Context, sessionID string) ([]ItemDetail, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if errors.Is(err, ErrCartNotFound) {
		return []ItemDetail{}, nil
	}
	if err != nil {
		return nil, err
	}

	details := []ItemDetail{}
	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		details = append(details, ItemDetail{Product: *product, Quantity: item.Quantity})
	}
	return details, nil
}

// recomputeAndSave rebuilds Total and ItemCount from current catalog
// prices and upserts the cart. Lines whose product no longer resolves
// contribute nothing but are left in place.
func (s *Service) recomputeAndSave(ctx context.Context, cart *domain.Cart) (Totals, error) {
	var total float64
	var count int
	for _, item := range cart.Items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return Totals{}, err
		}
		total += product.Price * float64(item.Quantity)
		count += item.Quantity
	}

	cart.Total = total
	cart.ItemCount = count
	cart.UpdatedAt = time.Now().UTC()

	if err := s.carts.Upsert(ctx, cart); err != nil {
		return Totals{}, err
	}
	return Totals{Total: total, ItemCount: count}, nil
}

func emptyCart(sessionID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
