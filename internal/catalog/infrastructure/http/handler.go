package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pawmart/internal/catalog/application"
	"pawmart/pkg/httpx"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{log: log, service: service}
}

// ProductRoutes are the public storefront endpoints.
func (h *Handler) ProductRoutes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.listProducts)
	r.Get("/search", h.searchProducts)
	r.Get("/featured/bestsellers", h.bestSellers)
	r.Get("/category/{categoryID}", h.productsByCategory)
	r.Get("/{productID}", h.getProduct)
	return r
}

func (h *Handler) CategoryRoutes() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.listCategories)
	r.Get("/{categoryID}", h.getCategory)
	return r
}

// AdminProductRoutes and AdminCategoryRoutes are mounted behind the admin
// auth middleware.
func (h *Handler) AdminProductRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.createProduct)
	r.Put("/{productID}", h.updateProduct)
	r.Delete("/{productID}", h.deleteProduct)
	return r
}

func (h *Handler) AdminCategoryRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.createCategory)
	r.Delete("/{categoryID}", h.deleteCategory)
	return r
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := application.ProductQuery{
		Search:          r.URL.Query().Get("search"),
		InStockOnly:     boolParam(r, "in_stock_only"),
		BestSellersOnly: boolParam(r, "best_sellers_only"),
		SortBy:          r.URL.Query().Get("sort_by"),
		Limit:           int64Param(r, "limit"),
		Skip:            int64Param(r, "skip"),
	}
	if v := r.URL.Query().Get("category_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "invalid_category_id", "category_id must be an integer")
			return
		}
		q.CategoryID = &id
	}
	if v := r.URL.Query().Get("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "invalid_min_price", "min_price must be a number")
			return
		}
		q.MinPrice = &p
	}
	if v := r.URL.Query().Get("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "invalid_max_price", "max_price must be a number")
			return
		}
		q.MaxPrice = &p
	}

	products, err := h.service.ListProducts(r.Context(), q)
	if err != nil {
		h.log.Error("failed to list products", "err", err)
		httpx.RespondInternal(w, "error fetching products")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, products)
}

func (h *Handler) searchProducts(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		httpx.RespondError(w, http.StatusBadRequest, "missing_query", "q parameter is required")
		return
	}

	products, err := h.service.SearchProducts(r.Context(), term, int64Param(r, "limit"))
	if err != nil {
		h.log.Error("failed to search products", "term", term, "err", err)
		httpx.RespondInternal(w, "error searching products")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "product_not_found", "Product not found")
			return
		}
		h.log.Error("failed to fetch product", "product_id", id, "err", err)
		httpx.RespondInternal(w, "error fetching product")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) productsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_category_id", "category ID must be an integer")
		return
	}

	products, err := h.service.ProductsByCategory(r.Context(), categoryID)
	if err != nil {
		h.log.Error("failed to fetch products by category", "category_id", categoryID, "err", err)
		httpx.RespondInternal(w, "error fetching products")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, products)
}

func (h *Handler) bestSellers(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.BestSellers(r.Context())
	if err != nil {
		h.log.Error("failed to fetch best sellers", "err", err)
		httpx.RespondInternal(w, "error fetching bestsellers")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in application.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.service.CreateProduct(r.Context(), in)
	if err != nil {
		if errors.Is(err, application.ErrCategoryNotFound) {
			httpx.RespondError(w, http.StatusBadRequest, "invalid_category", "Category not found")
			return
		}
		h.log.Error("failed to create product", "err", err)
		httpx.RespondInternal(w, "error creating product")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	var u application.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, u)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProductNotFound):
			httpx.RespondError(w, http.StatusNotFound, "product_not_found", "Product not found")
		case errors.Is(err, application.ErrCategoryNotFound):
			httpx.RespondError(w, http.StatusBadRequest, "invalid_category", "Category not found")
		default:
			h.log.Error("failed to update product", "product_id", id, "err", err)
			httpx.RespondInternal(w, "error updating product")
		}
		return
	}
	httpx.RespondJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "product_not_found", "Product not found")
			return
		}
		h.log.Error("failed to delete product", "product_id", id, "err", err)
		httpx.RespondInternal(w, "error deleting product")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.log.Error("failed to list categories", "err", err)
		httpx.RespondInternal(w, "error fetching categories")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_category_id", "category ID must be an integer")
		return
	}

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrCategoryNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "category_not_found", "Category not found")
			return
		}
		h.log.Error("failed to fetch category", "category_id", id, "err", err)
		httpx.RespondInternal(w, "error fetching category")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, category)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in application.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	category, err := h.service.CreateCategory(r.Context(), in)
	if err != nil {
		if errors.Is(err, application.ErrCategoryExists) {
			httpx.RespondError(w, http.StatusBadRequest, "category_exists", "Category ID already exists")
			return
		}
		h.log.Error("failed to create category", "err", err)
		httpx.RespondInternal(w, "error creating category")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_category_id", "category ID must be an integer")
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, application.ErrCategoryNotFound):
			httpx.RespondError(w, http.StatusNotFound, "category_not_found", "Category not found")
		case errors.Is(err, application.ErrCategoryInUse):
			httpx.RespondError(w, http.StatusBadRequest, "category_in_use", "Cannot delete category with products")
		default:
			h.log.Error("failed to delete category", "category_id", id, "err", err)
			httpx.RespondInternal(w, "error deleting category")
		}
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

func boolParam(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

func int64Param(r *http.Request, name string) int64 {
	v, _ := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	return v
}
