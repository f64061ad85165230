package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmart/internal/cart/application"
	"pawmart/internal/cart/domain"
	catalog "pawmart/internal/catalog/application"
	catalogdomain "pawmart/internal/catalog/domain"
	"pawmart/pkg/session"
)

type fakeCartRepo struct {
	carts map[string]*domain.Cart
}

func (r *fakeCartRepo) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, application.ErrCartNotFound
	}
	return cart, nil
}

func (r *fakeCartRepo) Upsert(_ context.Context, cart *domain.Cart) error {
	r.carts[cart.SessionID] = cart
	return nil
}

func (r *fakeCartRepo) Reset(_ context.Context, sessionID string) error {
	r.carts[sessionID] = &domain.Cart{SessionID: sessionID, Items: []domain.CartItem{}}
	return nil
}

type fakeFinder struct {
	products map[string]*catalogdomain.Product
}

func (f *fakeFinder) FindByID(_ context.Context, id string) (*catalogdomain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return p, nil
}

func newTestServer() *httptest.Server {
	log := slog.New(slog.DiscardHandler)
	repo := &fakeCartRepo{carts: map[string]*domain.Cart{}}
	finder := &fakeFinder{products: map[string]*catalogdomain.Product{
		"feeder": {ID: "feeder", Name: "Interactive Puzzle Feeder", Price: 29.99, InStock: true},
		"cave":   {ID: "cave", Name: "Floating Fish Cave", Price: 22.99, InStock: false},
	}}
	svc := application.NewService(log, repo, finder)
	return httptest.NewServer(NewHandler(log, svc).Routes())
}

func do(t *testing.T, srv *httptest.Server, method, path string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set(session.Header, "test-session")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestAddItem_ReturnsTotals(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, body := do(t, srv, http.MethodPost, "/add/feeder?quantity=2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product added to cart", body["message"])
	assert.InDelta(t, 59.98, body["cart_total"].(float64), 0.001)
	assert.EqualValues(t, 2, body["cart_items"])
}

func TestAddItem_UnknownProductIs404(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, body := do(t, srv, http.MethodPost, "/add/ghost")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "product_not_found", body["code"])
}

func TestAddItem_OutOfStockIs400(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, body := do(t, srv, http.MethodPost, "/add/cave")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "out_of_stock", body["code"])
}

func TestAddItem_BadQuantityIs400(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, body := do(t, srv, http.MethodPost, "/add/feeder?quantity=lots")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_quantity", body["code"])
}

func TestUpdateItem_RequiresQuantity(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, body := do(t, srv, http.MethodPut, "/update/feeder")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_quantity", body["code"])
}

func TestUpdateItem_MissingLineIs404(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	_, _ = do(t, srv, http.MethodPost, "/add/feeder")

	resp, body := do(t, srv, http.MethodPut, "/update/ghost?quantity=2")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "item_not_found", body["code"])
}

func TestRemoveItem_ThenCartIsEmpty(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	_, _ = do(t, srv, http.MethodPost, "/add/feeder")

	resp, body := do(t, srv, http.MethodDelete, "/remove/feeder")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, body["cart_items"])

	resp, cart := do(t, srv, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart["items"])
}

func TestGetCart_CreatesEmptyCartForNewSession(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp, cart := do(t, srv, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test-session", cart["session_id"])
	assert.Empty(t, cart["items"])
}

func TestClearCart(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	_, _ = do(t, srv, http.MethodPost, "/add/feeder?quantity=3")

	resp, body := do(t, srv, http.MethodDelete, "/clear")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Cart cleared", body["message"])

	_, cart := do(t, srv, http.MethodGet, "/")
	assert.Empty(t, cart["items"])
}
