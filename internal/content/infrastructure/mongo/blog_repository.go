package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawmart/internal/content/application"
	"pawmart/internal/content/domain"
)

type BlogRepository struct {
	collection *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{collection: db.Collection("blog_posts")}
}

func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create blog indexes: %w", err)
	}
	return nil
}

func (r *BlogRepository) Find(ctx context.Context, q application.BlogQuery) ([]domain.BlogPost, error) {
	// The published flag always filters: false means drafts only, never a
	// mixed listing.
	filter := bson.M{"is_published": q.Published}
	if q.CategoryID != nil {
		filter["category_id"] = *q.CategoryID
	}
	if q.Featured != nil {
		filter["is_featured"] = *q.Featured
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetSkip(q.Skip).
		SetLimit(q.Limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []domain.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string, publishedOnly bool) (*domain.BlogPost, error) {
	filter := bson.M{"id": id}
	if publishedOnly {
		filter["is_published"] = true
	}
	return r.findOne(ctx, filter)
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	filter := bson.M{"slug": slug}
	if publishedOnly {
		filter["is_published"] = true
	}
	return r.findOne(ctx, filter)
}

func (r *BlogRepository) findOne(ctx context.Context, filter bson.M) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.collection.FindOne(ctx, filter).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find blog post: %w", err)
	}
	return &p, nil
}

func (r *BlogRepository) Insert(ctx context.Context, p *domain.BlogPost) error {
	if _, err := r.collection.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) Replace(ctx context.Context, p *domain.BlogPost) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("failed to replace blog post: %w", err)
	}
	if result.MatchedCount == 0 {
		return application.ErrPostNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if result.DeletedCount == 0 {
		return application.ErrPostNotFound
	}
	return nil
}
