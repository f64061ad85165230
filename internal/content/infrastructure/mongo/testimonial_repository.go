package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawmart/internal/content/domain"
)

type TestimonialRepository struct {
	collection *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{collection: db.Collection("testimonials")}
}

func (r *TestimonialRepository) Find(ctx context.Context, verifiedOnly bool, limit int64) ([]domain.Testimonial, error) {
	filter := bson.M{}
	if verifiedOnly {
		filter["verified"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	testimonials := []domain.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}
	return testimonials, nil
}

func (r *TestimonialRepository) Insert(ctx context.Context, t *domain.Testimonial) error {
	if _, err := r.collection.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return nil
}
