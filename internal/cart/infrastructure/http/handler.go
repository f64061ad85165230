package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"pawmart/internal/cart/application"
	catalog "pawmart/internal/catalog/application"
	"pawmart/pkg/httpx"
	"pawmart/pkg/session"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("cart-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.getCart)
	r.Get("/items", h.getItems)
	r.Post("/add/{productID}", h.addItem)
	r.Put("/update/{productID}", h.updateItem)
	r.Delete("/remove/{productID}", h.removeItem)
	r.Delete("/clear", h.clearCart)
	return r
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)

	cart, err := h.service.GetCart(r.Context(), sessionID)
	if err != nil {
		h.log.Error("failed to fetch cart", "session_id", sessionID, "err", err)
		httpx.RespondInternal(w, "error fetching cart")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, cart)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AddCartItem")
	defer span.End()

	sessionID := session.FromRequest(r)
	productID := chi.URLParam(r, "productID")

	quantity := 1
	if v := r.URL.Query().Get("quantity"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be an integer")
			return
		}
		quantity = q
	}

	totals, err := h.service.AddItem(ctx, sessionID, productID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			httpx.RespondError(w, http.StatusNotFound, "product_not_found", "Product not found")
		case errors.Is(err, application.ErrOutOfStock):
			httpx.RespondError(w, http.StatusBadRequest, "out_of_stock", "Product is out of stock")
		default:
			h.log.Error("failed to add to cart", "session_id", sessionID, "product_id", productID, "err", err)
			httpx.RespondInternal(w, "error adding to cart")
		}
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]any{
		"message":    "Product added to cart",
		"cart_total": totals.Total,
		"cart_items": totals.ItemCount,
	})
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)
	productID := chi.URLParam(r, "productID")

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be an integer")
		return
	}

	totals, err := h.service.UpdateItem(r.Context(), sessionID, productID, quantity)
	if err != nil {
		h.respondCartError(w, err, sessionID, productID, "error updating cart")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]any{
		"message":    "Cart updated",
		"cart_total": totals.Total,
		"cart_items": totals.ItemCount,
	})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)
	productID := chi.URLParam(r, "productID")

	totals, err := h.service.RemoveItem(r.Context(), sessionID, productID)
	if err != nil {
		h.respondCartError(w, err, sessionID, productID, "error removing from cart")
		return
	}

	httpx.RespondJSON(w, http.StatusOK, map[string]any{
		"message":    "Item removed from cart",
		"cart_total": totals.Total,
		"cart_items": totals.ItemCount,
	})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)

	if err := h.service.ClearCart(r.Context(), sessionID); err != nil {
		h.log.Error("failed to clear cart", "session_id", sessionID, "err", err)
		httpx.RespondInternal(w, "error clearing cart")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)

	items, err := h.service.ItemsWithProducts(r.Context(), sessionID)
	if err != nil {
		h.log.Error("failed to fetch cart items", "session_id", sessionID, "err", err)
		httpx.RespondInternal(w, "error fetching cart items")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) respondCartError(w http.ResponseWriter, err error, sessionID, productID, fallback string) {
	switch {
	case errors.Is(err, application.ErrCartNotFound):
		httpx.RespondError(w, http.StatusNotFound, "cart_not_found", "Cart not found")
	case errors.Is(err, application.ErrItemNotFound):
		httpx.RespondError(w, http.StatusNotFound, "item_not_found", "Item not found in cart")
	default:
		h.log.Error(fallback, "session_id", sessionID, "product_id", productID, "err", err)
		httpx.RespondInternal(w, fallback)
	}
}
