package domain

import "time"

// Cart is keyed by session: there is never more than one cart per session,
// enforced by a unique index and upsert writes. Total and ItemCount are
// derived values; every mutation recomputes them from live catalog prices,
// so stored values are never trusted across time.
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	SessionID string     `bson:"session_id" json:"session_id"`
	Items     []CartItem `bson:"items" json:"items"`
	Total     float64    `bson:"total" json:"total"`
	ItemCount int        `bson:"item_count" json:"item_count"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

type CartItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}
