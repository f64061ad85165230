package domain

import "time"

type HealthArticle struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Excerpt     string    `bson:"excerpt" json:"excerpt"`
	Content     string    `bson:"content" json:"content"`
	Image       string    `bson:"image" json:"image"`
	ReadTime    string    `bson:"read_time" json:"read_time"`
	Category    string    `bson:"category" json:"category"`
	PublishDate time.Time `bson:"publish_date" json:"publish_date"`
	Featured    bool      `bson:"featured" json:"featured"`
}

type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Avatar    string    `bson:"avatar" json:"avatar"`
	Rating    int       `bson:"rating" json:"rating"`
	Text      string    `bson:"text" json:"text"`
	PetName   string    `bson:"pet_name" json:"pet_name"`
	Verified  bool      `bson:"verified" json:"verified"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BlogPost slugs are unique; uniqueness is checked at the application
// layer before inserts and updates.
type BlogPost struct {
	ID              string     `bson:"id" json:"id"`
	Title           string     `bson:"title" json:"title"`
	Slug            string     `bson:"slug" json:"slug"`
	Content         string     `bson:"content" json:"content"`
	Excerpt         string     `bson:"excerpt" json:"excerpt"`
	Author          string     `bson:"author" json:"author"`
	CategoryID      *int       `bson:"category_id" json:"category_id"`
	CategoryName    string     `bson:"category_name,omitempty" json:"category_name,omitempty"`
	Tags            []string   `bson:"tags" json:"tags"`
	IsPublished     bool       `bson:"is_published" json:"is_published"`
	IsFeatured      bool       `bson:"is_featured" json:"is_featured"`
	MetaTitle       string     `bson:"meta_title,omitempty" json:"meta_title,omitempty"`
	MetaDescription string     `bson:"meta_description,omitempty" json:"meta_description,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updated_at"`
	PublishedAt     *time.Time `bson:"published_at" json:"published_at"`
}

// CategorySummary is an aggregation result: article category with its
// document count.
type CategorySummary struct {
	Name  string `bson:"_id" json:"name"`
	Count int    `bson:"count" json:"count"`
}
