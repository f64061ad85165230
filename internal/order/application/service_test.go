package application

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "pawmart/internal/cart/application"
	cartdomain "pawmart/internal/cart/domain"
	catalog "pawmart/internal/catalog/application"
	catalogdomain "pawmart/internal/catalog/domain"
	"pawmart/internal/order/domain"
)

type stubFinder struct {
	products map[string]*catalogdomain.Product
}

func (f *stubFinder) FindByID(_ context.Context, id string) (*catalogdomain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

type memCartStore struct {
	carts  map[string]*cartdomain.Cart
	resets int
}

func (s *memCartStore) Get(_ context.Context, sessionID string) (*cartdomain.Cart, error) {
	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, cartapp.ErrCartNotFound
	}
	return cart, nil
}

func (s *memCartStore) Reset(_ context.Context, sessionID string) error {
	s.resets++
	if cart, ok := s.carts[sessionID]; ok {
		cart.Items = []cartdomain.CartItem{}
		cart.Total = 0
		cart.ItemCount = 0
	}
	return nil
}

type memOrderRepo struct {
	orders []*domain.Order
}

func (r *memOrderRepo) Insert(_ context.Context, o *domain.Order) error {
	r.orders = append(r.orders, o)
	return nil
}

func (r *memOrderRepo) ListBySession(_ context.Context, sessionID string, _ int64) ([]domain.Order, error) {
	out := []domain.Order{}
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id, sessionID string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id && o.SessionID == sessionID {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *memOrderRepo) GetByNumber(_ context.Context, orderNumber string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *memOrderRepo) SetStatus(_ context.Context, id, sessionID string, status domain.Status) error {
	o, err := r.GetByID(context.Background(), id, sessionID)
	if err != nil {
		return err
	}
	o.Status = status
	return nil
}

func (r *memOrderRepo) SetPaymentStatus(_ context.Context, id, sessionID string, status domain.PaymentStatus) error {
	o, err := r.GetByID(context.Background(), id, sessionID)
	if err != nil {
		return err
	}
	o.PaymentStatus = status
	return nil
}

func fixtureProducts() map[string]*catalogdomain.Product {
	return map[string]*catalogdomain.Product{
		"feeder": {
			ID: "feeder", Name: "Interactive Puzzle Feeder",
			Image: "feeder.jpg", Price: 29.99, InStock: true,
		},
		"wand": {
			ID: "wand", Name: "Feather Wand Deluxe",
			Image: "wand.jpg", Price: 12.99, InStock: true,
		},
	}
}

func cartWith(items ...cartdomain.CartItem) *memCartStore {
	return &memCartStore{carts: map[string]*cartdomain.Cart{
		"s1": {SessionID: "s1", Items: items},
	}}
}

func newTestService(orders *memOrderRepo, carts *memCartStore, products map[string]*catalogdomain.Product) *Service {
	log := slog.New(slog.DiscardHandler)
	return NewService(log, orders, carts, &stubFinder{products: products})
}

func validInput(subtotal float64) CreateOrderInput {
	return CreateOrderInput{
		ShippingAddress: domain.ShippingAddress{
			FirstName: "Sam", LastName: "Porter", Email: "sam@example.com",
			Address: "1 Delivery Way", City: "Portland", State: "OR",
			ZipCode: "97201", Country: "USA",
		},
		Subtotal: subtotal,
		Shipping: 5.99,
		Tax:      2.40,
		Total:    subtotal + 5.99 + 2.40,
	}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	svc := newTestService(&memOrderRepo{}, cartWith(), fixtureProducts())

	_, err := svc.CreateOrder(context.Background(), "s1", validInput(0))
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCreateOrder_MissingCart(t *testing.T) {
	carts := &memCartStore{carts: map[string]*cartdomain.Cart{}}
	svc := newTestService(&memOrderRepo{}, carts, fixtureProducts())

	_, err := svc.CreateOrder(context.Background(), "nobody", validInput(0))
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCreateOrder_ProductVanished(t *testing.T) {
	carts := cartWith(cartdomain.CartItem{ProductID: "ghost", Quantity: 1})
	orders := &memOrderRepo{}
	svc := newTestService(orders, carts, fixtureProducts())

	_, err := svc.CreateOrder(context.Background(), "s1", validInput(29.99))
	assert.ErrorIs(t, err, ErrProductUnavailable)
	assert.Empty(t, orders.orders)
	assert.Zero(t, carts.resets)
}

func TestCreateOrder_OutOfStockLine(t *testing.T) {
	products := fixtureProducts()
	products["feeder"].InStock = false
	carts := cartWith(cartdomain.CartItem{ProductID: "feeder", Quantity: 1})
	svc := newTestService(&memOrderRepo{}, carts, products)

	_, err := svc.CreateOrder(context.Background(), "s1", validInput(29.99))
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Contains(t, err.Error(), "Interactive Puzzle Feeder")
}

func TestCreateOrder_SubtotalMismatchBeyondTolerance(t *testing.T) {
	carts := cartWith(cartdomain.CartItem{ProductID: "feeder", Quantity: 2})
	svc := newTestService(&memOrderRepo{}, carts, fixtureProducts())

	// Server computes 59.98; client claims 59.00.
	_, err := svc.CreateOrder(context.Background(), "s1", validInput(59.00))
	assert.ErrorIs(t, err, ErrPriceMismatch)
}

func TestCreateOrder_SubtotalWithinToleranceAccepted(t *testing.T) {
	carts := cartWith(cartdomain.CartItem{ProductID: "feeder", Quantity: 2})
	svc := newTestService(&memOrderRepo{}, carts, fixtureProducts())

	_, err := svc.CreateOrder(context.Background(), "s1", validInput(59.985))
	assert.NoError(t, err)
}

func TestCreateOrder_SnapshotsCartAndResetsIt(t *testing.T) {
	carts := cartWith(
		cartdomain.CartItem{ProductID: "feeder", Quantity: 2},
		cartdomain.CartItem{ProductID: "wand", Quantity: 1},
	)
	orders := &memOrderRepo{}
	svc := newTestService(orders, carts, fixtureProducts())

	order, err := svc.CreateOrder(context.Background(), "s1", validInput(72.97))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Len(t, order.OrderNumber, 12)
	assert.Equal(t, order.OrderNumber, strings.ToUpper(order.OrderNumber))

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Interactive Puzzle Feeder", order.Items[0].ProductName)
	assert.Equal(t, "feeder.jpg", order.Items[0].ProductImage)
	assert.InDelta(t, 29.99, order.Items[0].Price, 0.001)
	assert.Equal(t, 2, order.Items[0].Quantity)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)

	assert.Equal(t, 1, carts.resets)
	assert.Empty(t, carts.carts["s1"].Items)
}

func TestCreateOrder_SnapshotSurvivesCatalogChanges(t *testing.T) {
	products := fixtureProducts()
	carts := cartWith(cartdomain.CartItem{ProductID: "feeder", Quantity: 1})
	orders := &memOrderRepo{}
	svc := newTestService(orders, carts, products)

	order, err := svc.CreateOrder(context.Background(), "s1", validInput(29.99))
	require.NoError(t, err)

	products["feeder"].Price = 99.99
	products["feeder"].Name = "Renamed"

	got, err := svc.GetOrder(context.Background(), order.ID, "s1")
	require.NoError(t, err)
	assert.InDelta(t, 29.99, got.Items[0].Price, 0.001)
	assert.Equal(t, "Interactive Puzzle Feeder", got.Items[0].ProductName)
}

func TestUpdateStatus_MembershipOnly(t *testing.T) {
	carts := cartWith(cartdomain.CartItem{ProductID: "feeder", Quantity: 1})
	orders := &memOrderRepo{}
	svc := newTestService(orders, carts, fixtureProducts())

	order, err := svc.CreateOrder(context.Background(), "s1", validInput(29.99))
	require.NoError(t, err)

	// Any member may replace any other, including regressions.
	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, "s1", "delivered"))
	require.NoError(t, svc.UpdateStatus(context.Background(), order.ID, "s1", "pending"))

	err = svc.UpdateStatus(context.Background(), order.ID, "s1", "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdatePaymentStatus(t *testing.T) {
	carts := cartWith(cartdomain.CartItem{ProductID: "feeder", Quantity: 1})
	orders := &memOrderRepo{}
	svc := newTestService(orders, carts, fixtureProducts())

	order, err := svc.CreateOrder(context.Background(), "s1", validInput(29.99))
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePaymentStatus(context.Background(), order.ID, "s1", "paid"))

	got, err := svc.GetOrder(context.Background(), order.ID, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)

	err = svc.UpdatePaymentStatus(context.Background(), order.ID, "s1", "chargeback")
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}

func TestGetOrder_ScopedToSession(t *testing.T) {
	carts := cartWith(cartdomain.CartItem{ProductID: "feeder", Quantity: 1})
	orders := &memOrderRepo{}
	svc := newTestService(orders, carts, fixtureProducts())

	order, err := svc.CreateOrder(context.Background(), "s1", validInput(29.99))
	require.NoError(t, err)

	_, err = svc.GetOrder(context.Background(), order.ID, "someone-else")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Lookup by number is deliberately cross-session.
	got, err := svc.GetOrderByNumber(context.Background(), order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}
