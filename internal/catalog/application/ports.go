package application

import (
	"context"

	"pawmart/internal/catalog/domain"
)

// Sort keys accepted by ProductQuery. "featured" is the default: best
// sellers first, then by rating.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
	SortName      = "name"
	SortNewest    = "newest"
)

type ProductQuery struct {
	CategoryID      *int
	Search          string
	MinPrice        *float64
	MaxPrice        *float64
	InStockOnly     bool
	BestSellersOnly bool
	SortBy          string
	Limit           int64
	Skip            int64
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name           *string   `json:"name"`
	Category       *string   `json:"-"`
	CategoryID     *int      `json:"category_id"`
	Price          *float64  `json:"price"`
	OriginalPrice  *float64  `json:"original_price"`
	Image          *string   `json:"image"`
	Rating         *float64  `json:"rating"`
	Reviews        *int      `json:"reviews"`
	Description    *string   `json:"description"`
	Features       *[]string `json:"features"`
	HealthBenefits *string   `json:"health_benefits"`
	InStock        *bool     `json:"in_stock"`
	BestSeller     *bool     `json:"best_seller"`
}

// ProductFinder is the slice of the catalog the cart and order contexts
// consume: resolve a single product by its ID.
type ProductFinder interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type ProductRepository interface {
	ProductFinder
	Find(ctx context.Context, q ProductQuery) ([]domain.Product, error)
	FindByCategory(ctx context.Context, categoryID int, limit int64) ([]domain.Product, error)
	FindBestSellers(ctx context.Context, limit int64) ([]domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, id string, u ProductUpdate) error
	Delete(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID int) (int64, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	Insert(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int) error
	IncrementCount(ctx context.Context, id, delta int) error
}
