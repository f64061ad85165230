package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/content/domain"
)

func (s *Service) ListArticles(ctx context.Context, q ArticleQuery) ([]domain.HealthArticle, error) {
	if q.Limit <= 0 {
		q.Limit = defaultArticleLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	return s.articles.Find(ctx, q)
}

func (s *Service) GetArticle(ctx context.Context, id string) (*domain.HealthArticle, error) {
	return s.articles.FindByID(ctx, id)
}

func (s *Service) ArticlesByCategory(ctx context.Context, category string) ([]domain.HealthArticle, error) {
	return s.articles.FindByCategory(ctx, category, 50)
}

type ArticleInput struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	ReadTime string `json:"read_time"`
	Category string `json:"category"`
	Featured bool   `json:"featured"`
}

func (s *Service) CreateArticle(ctx context.Context, in ArticleInput) (*domain.HealthArticle, error) {
	a := &domain.HealthArticle{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Image:       in.Image,
		ReadTime:    in.ReadTime,
		Category:    in.Category,
		PublishDate: time.Now().UTC(),
		Featured:    in.Featured,
	}
	if err := s.articles.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ArticleCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	return s.articles.CategorySummaries(ctx)
}
