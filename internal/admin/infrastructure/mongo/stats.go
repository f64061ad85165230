package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pawmart/internal/admin/domain"
)

// StatsRepository counts documents across the store's collections for
// the admin dashboard.
type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	var (
		stats domain.Stats
		err   error
	)

	if stats.TotalProducts, err = r.count(ctx, "products", bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalCategories, err = r.count(ctx, "categories", bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = r.count(ctx, "orders", bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalBlogPosts, err = r.count(ctx, "blog_posts", bson.M{"is_published": true}); err != nil {
		return nil, err
	}
	if stats.BestSellerProducts, err = r.count(ctx, "products", bson.M{"best_seller": true}); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepository) count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	n, err := r.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}
