package domain

import "time"

// Admin is a back-office account. PasswordHash never leaves the
// persistence layer; API responses use AdminResponse.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

type AdminResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Admin) Response() AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

// Stats are the dashboard counters.
type Stats struct {
	TotalProducts      int64 `json:"total_products"`
	TotalCategories    int64 `json:"total_categories"`
	TotalOrders        int64 `json:"total_orders"`
	TotalBlogPosts     int64 `json:"total_blog_posts"`
	BestSellerProducts int64 `json:"best_seller_products"`
}
