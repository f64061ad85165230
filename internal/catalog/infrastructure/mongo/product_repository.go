package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawmart/internal/catalog/application"
	"pawmart/internal/catalog/domain"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{collection: db.Collection("products")}
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) Find(ctx context.Context, q application.ProductQuery) ([]domain.Product, error) {
	filter := bson.M{}
	if q.CategoryID != nil {
		filter["category_id"] = *q.CategoryID
	}
	if q.Search != "" {
		pattern := bson.M{"$regex": q.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
			bson.M{"category": pattern},
		}
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}
	if q.InStockOnly {
		filter["in_stock"] = true
	}
	if q.BestSellersOnly {
		filter["best_seller"] = true
	}

	opts := options.Find().SetSort(sortFor(q.SortBy)).SetSkip(q.Skip).SetLimit(q.Limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func sortFor(key string) bson.D {
	switch key {
	case application.SortPriceLow:
		return bson.D{{Key: "price", Value: 1}}
	case application.SortPriceHigh:
		return bson.D{{Key: "price", Value: -1}}
	case application.SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	case application.SortName:
		return bson.D{{Key: "name", Value: 1}}
	case application.SortNewest:
		return bson.D{{Key: "created_at", Value: -1}}
	default:
		return bson.D{{Key: "best_seller", Value: -1}, {Key: "rating", Value: -1}}
	}
}

func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID int, limit int64) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category_id": categoryID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindBestSellers(ctx context.Context, limit int64) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"best_seller": true}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query best sellers: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Insert(ctx context.Context, p *domain.Product) error {
	if _, err := r.collection.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, u application.ProductUpdate) error {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.CategoryID != nil {
		set["category_id"] = *u.CategoryID
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.OriginalPrice != nil {
		set["original_price"] = *u.OriginalPrice
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.Rating != nil {
		set["rating"] = *u.Rating
	}
	if u.Reviews != nil {
		set["reviews"] = *u.Reviews
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Features != nil {
		set["features"] = *u.Features
	}
	if u.HealthBenefits != nil {
		set["health_benefits"] = *u.HealthBenefits
	}
	if u.InStock != nil {
		set["in_stock"] = *u.InStock
	}
	if u.BestSeller != nil {
		set["best_seller"] = *u.BestSeller
	}
	if len(set) == 0 {
		return nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return application.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return application.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) CountByCategory(ctx context.Context, categoryID int) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}
