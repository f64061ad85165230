package application

import (
	"context"

	"pawmart/internal/content/domain"
)

type ArticleQuery struct {
	Category     string
	FeaturedOnly bool
	Limit        int64
	Skip         int64
}

type ArticleRepository interface {
	Find(ctx context.Context, q ArticleQuery) ([]domain.HealthArticle, error)
	FindByID(ctx context.Context, id string) (*domain.HealthArticle, error)
	FindByCategory(ctx context.Context, category string, limit int64) ([]domain.HealthArticle, error)
	Insert(ctx context.Context, a *domain.HealthArticle) error
	// CategorySummaries groups articles by category with counts, most
	// populous first.
	CategorySummaries(ctx context.Context) ([]domain.CategorySummary, error)
}

type TestimonialRepository interface {
	Find(ctx context.Context, verifiedOnly bool, limit int64) ([]domain.Testimonial, error)
	Insert(ctx context.Context, t *domain.Testimonial) error
}

type BlogQuery struct {
	Published  bool
	CategoryID *int
	Featured   *bool
	Limit      int64
	Skip       int64
}

type BlogRepository interface {
	Find(ctx context.Context, q BlogQuery) ([]domain.BlogPost, error)
	// FindByID and FindBySlug only return published posts when
	// publishedOnly is set; the admin paths pass false.
	FindByID(ctx context.Context, id string, publishedOnly bool) (*domain.BlogPost, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error)
	Insert(ctx context.Context, p *domain.BlogPost) error
	Replace(ctx context.Context, p *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
}

// CategoryNamer resolves a catalog category's display name for
// denormalization onto blog posts.
type CategoryNamer interface {
	CategoryName(ctx context.Context, id int) (string, error)
}
