package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"pawmart/internal/order/application"
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
		tracer:  otel.Tracer("order-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.createOrder)
	r.Get("/", h.listOrders)
	r.Get("/by-number/{orderNumber}", h.getOrderByNumber)
	r.Get("/{orderID}", h.getOrder)
	r.Put("/{orderID}/status", h.updateStatus)
	r.Put("/{orderID}/payment-status", h.updatePaymentStatus)
	return r
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	sessionID := session.FromRequest(r)

	var in application.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.service.CreateOrder(ctx, sessionID, in)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCartEmpty):
			httpx.RespondError(w, http.StatusBadRequest, "cart_empty", "Cart is empty")
		case errors.Is(err, application.ErrProductUnavailable),
			errors.Is(err, application.ErrOutOfStock):
			httpx.RespondError(w, http.StatusBadRequest, "product_unavailable", err.Error())
		case errors.Is(err, application.ErrPriceMismatch):
			httpx.RespondError(w, http.StatusBadRequest, "price_mismatch", "Price mismatch detected")
		default:
			h.log.Error("failed to create order", "session_id", sessionID, "err", err)
			httpx.RespondInternal(w, "error creating order")
		}
		return
	}

	httpx.RespondJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)

	orders, err := h.service.ListOrders(r.Context(), sessionID)
	if err != nil {
		h.log.Error("failed to list orders", "session_id", sessionID, "err", err)
		httpx.RespondInternal(w, "error fetching orders")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)
	id := chi.URLParam(r, "orderID")

	order, err := h.service.GetOrder(r.Context(), id, sessionID)
	if err != nil {
		if errors.Is(err, application.ErrOrderNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "order_not_found", "Order not found")
			return
		}
		h.log.Error("failed to fetch order", "order_id", id, "err", err)
		httpx.RespondInternal(w, "error fetching order")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderByNumber(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	order, err := h.service.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, application.ErrOrderNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "order_not_found", "Order not found")
			return
		}
		h.log.Error("failed to fetch order by number", "order_number", orderNumber, "err", err)
		httpx.RespondInternal(w, "error fetching order")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, order)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)
	id := chi.URLParam(r, "orderID")
	status := r.URL.Query().Get("status")

	if err := h.service.UpdateStatus(r.Context(), id, sessionID, status); err != nil {
		h.respondUpdateError(w, err, id, "error updating order status")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"message": "Order status updated to " + status})
}

func (h *Handler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := session.FromRequest(r)
	id := chi.URLParam(r, "orderID")
	status := r.URL.Query().Get("payment_status")

	if err := h.service.UpdatePaymentStatus(r.Context(), id, sessionID, status); err != nil {
		h.respondUpdateError(w, err, id, "error updating payment status")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"message": "Payment status updated to " + status})
}

func (h *Handler) respondUpdateError(w http.ResponseWriter, err error, orderID, fallback string) {
	switch {
	case errors.Is(err, application.ErrInvalidStatus):
		httpx.RespondError(w, http.StatusBadRequest, "invalid_status", "Invalid status")
	case errors.Is(err, application.ErrInvalidPaymentStatus):
		httpx.RespondError(w, http.StatusBadRequest, "invalid_payment_status", "Invalid payment status")
	case errors.Is(err, application.ErrOrderNotFound):
		httpx.RespondError(w, http.StatusNotFound, "order_not_found", "Order not found")
	default:
		h.log.Error(fallback, "order_id", orderID, "err", err)
		httpx.RespondInternal(w, fallback)
	}
}
