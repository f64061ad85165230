package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pawmart/internal/content/domain"
)

func (s *Service) ListTestimonials(ctx context.Context, verifiedOnly bool, limit int64) ([]domain.Testimonial, error) {
	if limit <= 0 {
		limit = defaultTestimonialLimit
	}
	return s.testimonials.Find(ctx, verifiedOnly, limit)
}

type TestimonialInput struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	PetName  string `json:"pet_name"`
	Verified bool   `json:"verified"`
}

func (s *Service) CreateTestimonial(ctx context.Context, in TestimonialInput) (*domain.Testimonial, error) {
	t := &domain.Testimonial{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Avatar:    in.Avatar,
		Rating:    in.Rating,
		Text:      in.Text,
		PetName:   in.PetName,
		Verified:  in.Verified,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.testimonials.Insert(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
