package domain

import "time"

type Product struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Category       string    `bson:"category" json:"category"`
	CategoryID     int       `bson:"category_id" json:"category_id"`
	Price          float64   `bson:"price" json:"price"`
	OriginalPrice  *float64  `bson:"original_price" json:"original_price"`
	Image          string    `bson:"image" json:"image"`
	Rating         float64   `bson:"rating" json:"rating"`
	Reviews        int       `bson:"reviews" json:"reviews"`
	Description    string    `bson:"description" json:"description"`
	Features       []string  `bson:"features" json:"features"`
	HealthBenefits string    `bson:"health_benefits" json:"health_benefits"`
	InStock        bool      `bson:"in_stock" json:"in_stock"`
	BestSeller     bool      `bson:"best_seller" json:"best_seller"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
