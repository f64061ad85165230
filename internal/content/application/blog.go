package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/content/domain"
)

func (s *Service) ListPosts(ctx context.Context, q BlogQuery) ([]domain.BlogPost, error) {
	if q.Limit <= 0 {
		q.Limit = defaultBlogLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	return s.blog.Find(ctx, q)
}

func (s *Service) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.blog.FindByID(ctx, id, true)
}

func (s *Service) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return s.blog.FindBySlug(ctx, slug, true)
}

type BlogPostInput struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt"`
	Author          string   `json:"author"`
	CategoryID      *int     `json:"category_id"`
	Tags            []string `json:"tags"`
	IsPublished     bool     `json:"is_published"`
	IsFeatured      bool     `json:"is_featured"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
}

func (s *Service) CreatePost(ctx context.Context, in BlogPostInput) (*domain.BlogPost, error) {
	if _, err := s.blog.FindBySlug(ctx, in.Slug, false); err == nil {
		return nil, ErrSlugExists
	} else if !errors.Is(err, ErrPostNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.BlogPost{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Slug:            in.Slug,
		Content:         in.Content,
		Excerpt:         in.Excerpt,
		Author:          in.Author,
		CategoryID:      in.CategoryID,
		CategoryName:    s.categoryName(ctx, in.CategoryID),
		Tags:            in.Tags,
		IsPublished:     in.IsPublished,
		IsFeatured:      in.IsFeatured,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.IsPublished {
		p.PublishedAt = &now
	}

	if err := s.blog.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePost(ctx context.Context, id string, in BlogPostInput) (*domain.BlogPost, error) {
	existing, err := s.blog.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if in.Slug != existing.Slug {
		if _, err := s.blog.FindBySlug(ctx, in.Slug, false); err == nil {
			return nil, ErrSlugExists
		} else if !errors.Is(err, ErrPostNotFound) {
			return nil, err
		}
	}

	now := time.Now().UTC()
	p := &domain.BlogPost{
		ID:              id,
		Title:           in.Title,
		Slug:            in.Slug,
		Content:         in.Content,
		Excerpt:         in.Excerpt,
		Author:          in.Author,
		CategoryID:      in.CategoryID,
		CategoryName:    s.categoryName(ctx, in.CategoryID),
		Tags:            in.Tags,
		IsPublished:     in.IsPublished,
		IsFeatured:      in.IsFeatured,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       now,
		PublishedAt:     existing.PublishedAt,
	}
	// published_at is stamped once, on the first transition to published.
	if in.IsPublished && existing.PublishedAt == nil {
		p.PublishedAt = &now
	}

	if err := s.blog.Replace(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	if _, err := s.blog.FindByID(ctx, id, false); err != nil {
		return err
	}
	return s.blog.Delete(ctx, id)
}

// categoryName tolerates missing categories: a post may reference a
// category that was deleted, in which case the denormalized name is
// simply left empty.
func (s *Service) categoryName(ctx context.Context, id *int) string {
	if id == nil {
		return ""
	}
	name, err := s.categories.CategoryName(ctx, *id)
	if err != nil {
		return ""
	}
	return name
}
