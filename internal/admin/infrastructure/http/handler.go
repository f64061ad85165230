package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pawmart/internal/admin/application"
	"pawmart/pkg/httpx"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{log: log, service: service}
}

// AuthRoutes are the unauthenticated register/login endpoints.
func (h *Handler) AuthRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	return r
}

func (h *Handler) StatsRoutes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.stats)
	return r
}

// RequireAuth rejects requests without a valid admin bearer token.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpx.RespondError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			return
		}

		admin, err := h.service.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, application.ErrInvalidToken):
				httpx.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid token")
			case errors.Is(err, application.ErrAccountDisabled):
				httpx.RespondError(w, http.StatusUnauthorized, "unauthorized", "Admin not found or inactive")
			default:
				h.log.Error("failed to authenticate admin", "err", err)
				httpx.RespondInternal(w, "authentication error")
			}
			return
		}

		h.log.Debug("admin authenticated", "admin_id", admin.ID, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in application.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "username, email and password are required")
		return
	}

	admin, err := h.service.Register(r.Context(), in)
	if err != nil {
		if errors.Is(err, application.ErrAdminExists) {
			httpx.RespondError(w, http.StatusBadRequest, "admin_exists", "Admin with this username or email already exists")
			return
		}
		h.log.Error("failed to register admin", "err", err)
		httpx.RespondInternal(w, "error creating admin")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]string{
		"message":  "Admin created successfully",
		"admin_id": admin.ID,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.service.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			httpx.RespondError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
		case errors.Is(err, application.ErrAccountDisabled):
			httpx.RespondError(w, http.StatusUnauthorized, "account_disabled", "Account is disabled")
		default:
			h.log.Error("failed to log admin in", "username", in.Username, "err", err)
			httpx.RespondInternal(w, "login error")
		}
		return
	}
	httpx.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		h.log.Error("failed to collect dashboard stats", "err", err)
		httpx.RespondInternal(w, "error fetching stats")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, stats)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}
