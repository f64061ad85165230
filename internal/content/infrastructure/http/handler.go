package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pawmart/internal/content/application"
	"pawmart/pkg/httpx"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{log: log, service: service}
}

// HealthRoutes serve the pet-health content pages: articles, testimonials
// and the static benefits blurbs.
func (h *Handler) HealthRoutes() http.Handler {
	r := chi.NewRouter()
	r.Get("/articles", h.listArticles)
	r.Get("/articles/category/{category}", h.articlesByCategory)
	r.Get("/articles/{articleID}", h.getArticle)
	r.Get("/testimonials", h.listTestimonials)
	r.Post("/testimonials", h.createTestimonial)
	r.Get("/benefits", h.healthBenefits)
	r.Get("/categories", h.articleCategories)
	return r
}

func (h *Handler) BlogRoutes() http.Handler {
	r := chi.NewRouter()
	r.Get("/posts", h.listPosts)
	r.Get("/posts/slug/{slug}", h.getPostBySlug)
	r.Get("/posts/{postID}", h.getPost)
	return r
}

// AdminHealthRoutes and AdminBlogRoutes are mounted behind the admin
// auth middleware.
func (h *Handler) AdminHealthRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/articles", h.createArticle)
	return r
}

func (h *Handler) AdminBlogRoutes() http.Handler {
	r := chi.NewRouter()
	r.Post("/posts", h.createPost)
	r.Put("/posts/{postID}", h.updatePost)
	r.Delete("/posts/{postID}", h.deletePost)
	return r
}

func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	q := application.ArticleQuery{
		Category:     r.URL.Query().Get("category"),
		FeaturedOnly: boolParam(r, "featured_only"),
		Limit:        int64Param(r, "limit"),
		Skip:         int64Param(r, "skip"),
	}

	articles, err := h.service.ListArticles(r.Context(), q)
	if err != nil {
		h.log.Error("failed to list articles", "err", err)
		httpx.RespondInternal(w, "error fetching articles")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, articles)
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleID")

	article, err := h.service.GetArticle(r.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrArticleNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "article_not_found", "Article not found")
			return
		}
		h.log.Error("failed to fetch article", "article_id", id, "err", err)
		httpx.RespondInternal(w, "error fetching article")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, article)
}

func (h *Handler) articlesByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	articles, err := h.service.ArticlesByCategory(r.Context(), category)
	if err != nil {
		h.log.Error("failed to fetch articles by category", "category", category, "err", err)
		httpx.RespondInternal(w, "error fetching articles")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, articles)
}

func (h *Handler) createArticle(w http.ResponseWriter, r *http.Request) {
	var in application.ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	article, err := h.service.CreateArticle(r.Context(), in)
	if err != nil {
		h.log.Error("failed to create article", "err", err)
		httpx.RespondInternal(w, "error creating article")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, article)
}

func (h *Handler) articleCategories(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ArticleCategories(r.Context())
	if err != nil {
		h.log.Error("failed to fetch article categories", "err", err)
		httpx.RespondInternal(w, "error fetching categories")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]any{"categories": summaries})
}

func (h *Handler) listTestimonials(w http.ResponseWriter, r *http.Request) {
	verifiedOnly := true
	if v := r.URL.Query().Get("verified_only"); v != "" {
		verifiedOnly, _ = strconv.ParseBool(v)
	}

	testimonials, err := h.service.ListTestimonials(r.Context(), verifiedOnly, int64Param(r, "limit"))
	if err != nil {
		h.log.Error("failed to list testimonials", "err", err)
		httpx.RespondInternal(w, "error fetching testimonials")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, testimonials)
}

func (h *Handler) createTestimonial(w http.ResponseWriter, r *http.Request) {
	var in application.TestimonialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	testimonial, err := h.service.CreateTestimonial(r.Context(), in)
	if err != nil {
		h.log.Error("failed to create testimonial", "err", err)
		httpx.RespondInternal(w, "error creating testimonial")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, testimonial)
}

type benefit struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *Handler) healthBenefits(w http.ResponseWriter, r *http.Request) {
	benefits := []benefit{
		{
			Icon:        "🧠",
			Title:       "Mental Stimulation",
			Description: "Our toys are designed to challenge your pets mentally, preventing boredom and destructive behavior.",
		},
		{
			Icon:        "💪",
			Title:       "Physical Exercise",
			Description: "Promote healthy activity levels with toys that encourage movement and play.",
		},
		{
			Icon:        "❤️",
			Title:       "Emotional Wellbeing",
			Description: "Reduce stress and anxiety through engaging, species-appropriate enrichment activities.",
		},
		{
			Icon:        "🏥",
			Title:       "Health Benefits",
			Description: "Many of our toys support dental health, weight management, and natural behaviors.",
		},
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]any{"benefits": benefits})
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	q := application.BlogQuery{
		Published: true,
		Limit:     int64Param(r, "limit"),
		Skip:      int64Param(r, "skip"),
	}
	if v := r.URL.Query().Get("published"); v != "" {
		q.Published, _ = strconv.ParseBool(v)
	}
	if v := r.URL.Query().Get("category_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			httpx.RespondError(w, http.StatusBadRequest, "invalid_category_id", "category_id must be an integer")
			return
		}
		q.CategoryID = &id
	}
	if v := r.URL.Query().Get("featured"); v != "" {
		f, _ := strconv.ParseBool(v)
		q.Featured = &f
	}

	posts, err := h.service.ListPosts(r.Context(), q)
	if err != nil {
		h.log.Error("failed to list blog posts", "err", err)
		httpx.RespondInternal(w, "error fetching blog posts")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, posts)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postID")

	post, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "post_not_found", "Blog post not found")
			return
		}
		h.log.Error("failed to fetch blog post", "post_id", id, "err", err)
		httpx.RespondInternal(w, "error fetching blog post")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, post)
}

func (h *Handler) getPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.service.GetPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "post_not_found", "Blog post not found")
			return
		}
		h.log.Error("failed to fetch blog post", "slug", slug, "err", err)
		httpx.RespondInternal(w, "error fetching blog post")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, post)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var in application.BlogPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	post, err := h.service.CreatePost(r.Context(), in)
	if err != nil {
		if errors.Is(err, application.ErrSlugExists) {
			httpx.RespondError(w, http.StatusBadRequest, "slug_exists", "A post with this slug already exists")
			return
		}
		h.log.Error("failed to create blog post", "err", err)
		httpx.RespondInternal(w, "error creating blog post")
		return
	}
	httpx.RespondJSON(w, http.StatusCreated, post)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postID")

	var in application.BlogPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	post, err := h.service.UpdatePost(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPostNotFound):
			httpx.RespondError(w, http.StatusNotFound, "post_not_found", "Blog post not found")
		case errors.Is(err, application.ErrSlugExists):
			httpx.RespondError(w, http.StatusBadRequest, "slug_exists", "A post with this slug already exists")
		default:
			h.log.Error("failed to update blog post", "post_id", id, "err", err)
			httpx.RespondInternal(w, "error updating blog post")
		}
		return
	}
	httpx.RespondJSON(w, http.StatusOK, post)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postID")

	if err := h.service.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			httpx.RespondError(w, http.StatusNotFound, "post_not_found", "Blog post not found")
			return
		}
		h.log.Error("failed to delete blog post", "post_id", id, "err", err)
		httpx.RespondInternal(w, "error deleting blog post")
		return
	}
	httpx.RespondJSON(w, http.StatusOK, map[string]string{"message": "Blog post deleted successfully"})
}

func boolParam(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

func int64Param(r *http.Request, name string) int64 {
	v, _ := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	return v
}
