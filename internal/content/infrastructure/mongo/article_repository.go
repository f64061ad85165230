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

type ArticleRepository struct {
	collection *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{collection: db.Collection("health_articles")}
}

func (r *ArticleRepository) Find(ctx context.Context, q application.ArticleQuery) ([]domain.HealthArticle, error) {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = bson.M{"$regex": q.Category, "$options": "i"}
	}
	if q.FeaturedOnly {
		filter["featured"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "publish_date", Value: -1}}).
		SetSkip(q.Skip).
		SetLimit(q.Limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer cursor.Close(ctx)

	articles := []domain.HealthArticle{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.HealthArticle, error) {
	var a domain.HealthArticle
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return &a, nil
}

func (r *ArticleRepository) FindByCategory(ctx context.Context, category string, limit int64) ([]domain.HealthArticle, error) {
	filter := bson.M{"category": bson.M{"$regex": category, "$options": "i"}}
	opts := options.Find().
		SetSort(bson.D{{Key: "publish_date", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles by category: %w", err)
	}
	defer cursor.Close(ctx)

	articles := []domain.HealthArticle{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepository) Insert(ctx context.Context, a *domain.HealthArticle) error {
	if _, err := r.collection.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) CategorySummaries(ctx context.Context) ([]domain.CategorySummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate article categories: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []domain.CategorySummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode category summaries: %w", err)
	}

	// Drop the null bucket from documents with no category set.
	kept := summaries[:0]
	for _, s := range summaries {
		if s.Name != "" {
			kept = append(kept, s)
		}
	}
	return kept, nil
}
