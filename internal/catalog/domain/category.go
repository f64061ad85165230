package domain

// Category counts are denormalized: the stored count is bumped on product
// creation, but reads recompute it from the products collection.
type Category struct {
	ID    int    `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Icon  string `bson:"icon" json:"icon"`
	Count int    `bson:"count" json:"count"`
}
