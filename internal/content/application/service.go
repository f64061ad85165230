package application

import (
	"errors"
	"log/slog"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrPostNotFound    = errors.New("blog post not found")
	ErrSlugExists      = errors.New("slug already exists")
)

const (
	defaultArticleLimit     = 10
	defaultTestimonialLimit = 10
	defaultBlogLimit        = 20
)

type Service struct {
	log          *slog.Logger
	articles     ArticleRepository
	testimonials TestimonialRepository
	blog         BlogRepository
	categories   CategoryNamer
}

func NewService(
	log *slog.Logger,
	articles ArticleRepository,
	testimonials TestimonialRepository,
	blog BlogRepository,
	categories CategoryNamer,
) *Service {
	return &Service{
		log:          log,
		articles:     articles,
		testimonials: testimonials,
		blog:         blog,
		categories:   categories,
	}
}
