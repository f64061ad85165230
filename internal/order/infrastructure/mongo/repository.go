package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pawmart/internal/order/application"
	"pawmart/internal/order/domain"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("orders")}
}

func (r *Repository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{
			Keys:    bson.D{{Key: "order_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}
	return nil
}

func (r *Repository) Insert(ctx context.Context, o *domain.Order) error {
	if _, err := r.collection.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *Repository) ListBySession(ctx context.Context, sessionID string, limit int64) ([]domain.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (r *Repository) GetByID(ctx context.Context, id, sessionID string) (*domain.Order, error) {
	return r.findOne(ctx, bson.M{"id": id, "session_id": sessionID})
}

func (r *Repository) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return r.findOne(ctx, bson.M{"order_number": orderNumber})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*domain.Order, error) {
	var o domain.Order
	err := r.collection.FindOne(ctx, filter).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &o, nil
}

func (r *Repository) SetStatus(ctx context.Context, id, sessionID string, status domain.Status) error {
	return r.setField(ctx, id, sessionID, "status", string(status))
}

func (r *Repository) SetPaymentStatus(ctx context.Context, id, sessionID string, status domain.PaymentStatus) error {
	return r.setField(ctx, id, sessionID, "payment_status", string(status))
}

func (r *Repository) setField(ctx context.Context, id, sessionID, field, value string) error {
	update := bson.M{"$set": bson.M{field: value, "updated_at": time.Now().UTC()}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id, "session_id": sessionID}, update)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", field, err)
	}
	if result.MatchedCount == 0 {
		return application.ErrOrderNotFound
	}
	return nil
}
