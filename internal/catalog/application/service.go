package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/catalog/domain"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category ID already exists")
	ErrCategoryInUse    = errors.New("cannot delete category with products")
)

const (
	defaultListLimit   = 50
	defaultSearchLimit = 20
)

type Service struct {
	log        *slog.Logger
	products   ProductRepository
	categories CategoryRepository
}

func NewService(log *slog.Logger, products ProductRepository, categories CategoryRepository) *Service {
	return &Service{log: log, products: products, categories: categories}
}

func (s *Service) ListProducts(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	if q.Limit <= 0 {
		q.Limit = defaultListLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.SortBy == "" {
		q.SortBy = SortFeatured
	}
	return s.products.Find(ctx, q)
}

func (s *Service) SearchProducts(ctx context.Context, term string, limit int64) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.products.Find(ctx, ProductQuery{Search: term, SortBy: SortFeatured, Limit: limit})
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *Service) ProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	return s.products.FindByCategory(ctx, categoryID, 100)
}

func (s *Service) BestSellers(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindBestSellers(ctx, 20)
}

type ProductInput struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	CategoryID     int      `json:"category_id"`
	Price          float64  `json:"price"`
	OriginalPrice  *float64 `json:"original_price"`
	Image          string   `json:"image"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	HealthBenefits string   `json:"health_benefits"`
	InStock        bool     `json:"in_stock"`
	BestSeller     bool     `json:"best_seller"`
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	category, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	p := &domain.Product{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Category:       category.Name,
		CategoryID:     in.CategoryID,
		Price:          in.Price,
		OriginalPrice:  in.OriginalPrice,
		Image:          in.Image,
		Rating:         in.Rating,
		Reviews:        in.Reviews,
		Description:    in.Description,
		Features:       in.Features,
		HealthBenefits: in.HealthBenefits,
		InStock:        in.InStock,
		BestSeller:     in.BestSeller,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.products.Insert(ctx, p); err != nil {
		return nil, err
	}

	if err := s.categories.IncrementCount(ctx, in.CategoryID, 1); err != nil {
		s.log.Error("failed to bump category count", "category_id", in.CategoryID, "err", err)
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, u ProductUpdate) (*domain.Product, error) {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return nil, err
	}

	if u.CategoryID != nil {
		category, err := s.categories.FindByID(ctx, *u.CategoryID)
		if err != nil {
			return nil, err
		}
		u.Category = &category.Name
	}

	if err := s.products.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, id)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

// ListCategories recomputes every count from the products collection; the
// stored count is never trusted on reads.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		n, err := s.products.CountByCategory(ctx, categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].Count = int(n)
	}
	return categories, nil
}

func (s *Service) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Count = int(n)
	return category, nil
}

type CategoryInput struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if _, err := s.categories.FindByID(ctx, in.ID); err == nil {
		return nil, ErrCategoryExists
	} else if !errors.Is(err, ErrCategoryNotFound) {
		return nil, err
	}

	c := &domain.Category{ID: in.ID, Name: in.Name, Icon: in.Icon, Count: 0}
	if err := s.categories.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCategoryInUse
	}
	return s.categories.Delete(ctx, id)
}
