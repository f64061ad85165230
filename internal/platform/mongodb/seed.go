package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	catalogdomain "pawmart/internal/catalog/domain"
	contentdomain "pawmart/internal/content/domain"
)

// Seeder populates empty collections with the starter catalog and
// content. Collections that already hold documents are left alone, so
// seeding on every boot is safe.
type Seeder struct {
	log *slog.Logger
	db  *mongo.Database
}

func NewSeeder(log *slog.Logger, db *mongo.Database) *Seeder {
	return &Seeder{log: log, db: db}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedCollection(ctx, "categories", asDocs(seedCategories())); err != nil {
		return err
	}
	if err := s.seedCollection(ctx, "products", asDocs(seedProducts())); err != nil {
		return err
	}
	if err := s.seedCollection(ctx, "health_articles", asDocs(seedArticles())); err != nil {
		return err
	}
	if err := s.seedCollection(ctx, "testimonials", asDocs(seedTestimonials())); err != nil {
		return err
	}
	return nil
}

func (s *Seeder) seedCollection(ctx context.Context, name string, docs []any) error {
	collection := s.db.Collection(name)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", name, err)
	}
	if count > 0 {
		return nil
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed %s: %w", name, err)
	}
	s.log.Info("seeded collection", "collection", name, "documents", len(docs))
	return nil
}

func asDocs[T any](items []T) []any {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}

func floatPtr(v float64) *float64 { return &v }

func seedCategories() []catalogdomain.Category {
	return []catalogdomain.Category{
		{ID: 1, Name: "Dog Toys", Icon: "🐕", Count: 24},
		{ID: 2, Name: "Cat Toys", Icon: "🐱", Count: 18},
		{ID: 3, Name: "Bird Toys", Icon: "🦜", Count: 12},
		{ID: 4, Name: "Small Animal", Icon: "🐹", Count: 15},
		{ID: 5, Name: "Aquatic Toys", Icon: "🐠", Count: 9},
		{ID: 6, Name: "Reptile Toys", Icon: "🦎", Count: 6},
	}
}

func seedProducts() []catalogdomain.Product {
	now := time.Now().UTC()
	return []catalogdomain.Product{
		{
			ID: "1", Name: "Interactive Puzzle Feeder", Category: "Dog Toys", CategoryID: 1,
			Price: 29.99, OriginalPrice: floatPtr(39.99),
			Image:  "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=500&h=500&fit=crop",
			Rating: 4.8, Reviews: 124,
			Description:    "Slow feeding puzzle toy that challenges your dog mentally while eating. Made from durable, food-safe materials.",
			Features:       []string{"Mental stimulation", "Slow feeding", "Durable plastic", "Easy to clean"},
			HealthBenefits: "Promotes healthy eating habits and prevents bloating",
			InStock:        true, BestSeller: true, CreatedAt: now,
		},
		{
			ID: "2", Name: "Laser Pointer Pro", Category: "Cat Toys", CategoryID: 2,
			Price: 19.99, OriginalPrice: floatPtr(24.99),
			Image:  "https://images.unsplash.com/photo-1574158622682-e40e69881006?w=500&h=500&fit=crop",
			Rating: 4.6, Reviews: 89,
			Description:    "Automatic laser pointer with multiple patterns and timer settings. Safe LED technology.",
			Features:       []string{"Auto mode", "5 patterns", "Timer function", "USB rechargeable"},
			HealthBenefits: "Encourages exercise and hunting instincts",
			InStock:        true, BestSeller: false, CreatedAt: now,
		},
		{
			ID: "3", Name: "Rope Swing Perch", Category: "Bird Toys", CategoryID: 3,
			Price:  15.99,
			Image:  "https://images.unsplash.com/photo-1552728089-57bdde30beb3?w=500&h=500&fit=crop",
			Rating: 4.7, Reviews: 56,
			Description:    "Natural rope swing perch for birds. Helps maintain beak and nail health.",
			Features:       []string{"Natural materials", "Swing motion", "Multiple sizes", "Easy installation"},
			HealthBenefits: "Promotes foot health and natural perching behavior",
			InStock:        true, BestSeller: false, CreatedAt: now,
		},
		{
			ID: "4", Name: "Hamster Adventure Wheel", Category: "Small Animal", CategoryID: 4,
			Price: 34.99, OriginalPrice: floatPtr(44.99),
			Image:  "https://images.unsplash.com/photo-1425082661705-1834bfd09dca?w=500&h=500&fit=crop",
			Rating: 4.9, Reviews: 143,
			Description:    "Silent spinning wheel with adjustable height. Safe running surface prevents injuries.",
			Features:       []string{"Silent operation", "Adjustable height", "Easy cleaning", "Safety design"},
			HealthBenefits: "Essential for exercise and prevents obesity",
			InStock:        true, BestSeller: true, CreatedAt: now,
		},
		{
			ID: "5", Name: "Floating Fish Cave", Category: "Aquatic Toys", CategoryID: 5,
			Price:  22.99,
			Image:  "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=500&h=500&fit=crop",
			Rating: 4.5, Reviews: 67,
			Description:    "Decorative cave that provides hiding spots for fish. Made from aquarium-safe materials.",
			Features:       []string{"Aquarium safe", "Natural design", "Multiple entrances", "Easy to clean"},
			HealthBenefits: "Reduces stress and provides natural hiding behavior",
			InStock:        false, BestSeller: false, CreatedAt: now,
		},
		{
			ID: "6", Name: "Climbing Branch Set", Category: "Reptile Toys", CategoryID: 6,
			Price: 27.99, OriginalPrice: floatPtr(32.99),
			Image:  "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&h=500&fit=crop",
			Rating: 4.4, Reviews: 34,
			Description:    "Natural wood climbing branches for reptiles. Promotes natural climbing behavior.",
			Features:       []string{"Natural wood", "Multiple branches", "Easy mounting", "Various sizes"},
			HealthBenefits: "Encourages natural climbing and exploration",
			InStock:        true, BestSeller: false, CreatedAt: now,
		},
		{
			ID: "7", Name: "Squeaky Duck Collection", Category: "Dog Toys", CategoryID: 1,
			Price:  16.99,
			Image:  "https://images.unsplash.com/photo-1552053831-71594a27632d?w=500&h=500&fit=crop",
			Rating: 4.3, Reviews: 91,
			Description:    "Set of 3 squeaky rubber ducks in different sizes. Perfect for water play.",
			Features:       []string{"Set of 3", "Water safe", "Squeaky sound", "Durable rubber"},
			HealthBenefits: "Encourages play and exercise",
			InStock:        true, BestSeller: false, CreatedAt: now,
		},
		{
			ID: "8", Name: "Feather Wand Deluxe", Category: "Cat Toys", CategoryID: 2,
			Price: 12.99, OriginalPrice: floatPtr(18.99),
			Image:  "https://images.unsplash.com/photo-1548681528-6a5c45b66b42?w=500&h=500&fit=crop",
			Rating: 4.7, Reviews: 156,
			Description:    "Interactive feather wand with replaceable feathers. Extends up to 3 feet.",
			Features:       []string{"Extendable wand", "Replaceable feathers", "Natural materials", "Interactive play"},
			HealthBenefits: "Promotes hunting instincts and exercise",
			InStock:        true, BestSeller: true, CreatedAt: now,
		},
	}
}

func seedArticles() []contentdomain.HealthArticle {
	now := time.Now().UTC()
	return []contentdomain.HealthArticle{
		{
			ID:          "1",
			Title:       "The Importance of Mental Stimulation for Dogs",
			Excerpt:     "Learn why puzzle toys and interactive feeders are essential for your dog's mental health and how they prevent behavioral issues.",
			Content:     "Mental stimulation is crucial for dogs of all ages and breeds. Without adequate mental exercise, dogs can develop destructive behaviors, anxiety, and depression. Interactive puzzle toys and feeders provide the perfect solution by engaging your dog's natural problem-solving abilities while making mealtime more enriching.",
			Image:       "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=400&h=250&fit=crop",
			ReadTime:    "5 min read",
			Category:    "Dog Health",
			PublishDate: now,
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Safe Toys for Small Animals: A Complete Guide",
			Excerpt:     "Discover which toys are safe for hamsters, guinea pigs, and rabbits, and learn about materials to avoid.",
			Content:     "Small animals have unique needs when it comes to toys and enrichment. Understanding which materials are safe and which to avoid can mean the difference between a healthy, happy pet and costly veterinary bills. This comprehensive guide covers everything from wheel selection to chew toy safety.",
			Image:       "https://images.unsplash.com/photo-1425082661705-1834bfd09dca?w=400&h=250&fit=crop",
			ReadTime:    "7 min read",
			Category:    "Small Animal Health",
			PublishDate: now,
		},
		{
			ID:          "3",
			Title:       "Creating an Enriching Environment for Indoor Cats",
			Excerpt:     "Tips on selecting the right toys and activities to keep your indoor cat happy, healthy, and mentally stimulated.",
			Content:     "Indoor cats require special attention to their environmental enrichment needs. Without proper stimulation, they can become overweight, stressed, or develop behavioral problems. Learn how to create a stimulating environment that promotes natural behaviors and keeps your feline friend engaged.",
			Image:       "https://images.unsplash.com/photo-1574158622682-e40e69881006?w=400&h=250&fit=crop",
			ReadTime:    "6 min read",
			Category:    "Cat Health",
			PublishDate: now,
		},
		{
			ID:          "4",
			Title:       "Bird Toy Safety: What Every Owner Should Know",
			Excerpt:     "Essential safety guidelines for choosing bird toys and creating a safe, engaging environment for your feathered friends.",
			Content:     "Birds are intelligent creatures that require mental and physical stimulation to thrive. However, not all toys marketed for birds are safe. Learn how to identify potential hazards and choose toys that will keep your feathered friend happy and healthy.",
			Image:       "https://images.unsplash.com/photo-1552728089-57bdde30beb3?w=400&h=250&fit=crop",
			ReadTime:    "4 min read",
			Category:    "Bird Health",
			PublishDate: now,
		},
	}
}

func seedTestimonials() []contentdomain.Testimonial {
	now := time.Now().UTC()
	return []contentdomain.Testimonial{
		{
			ID:        "1",
			Name:      "Sarah Johnson",
			Avatar:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=100&h=100&fit=crop&crop=face",
			Rating:    5,
			Text:      "The puzzle feeder has been amazing for my dog Max! He loves the challenge and it's helped with his eating speed.",
			PetName:   "Max (Golden Retriever)",
			Verified:  true,
			CreatedAt: now,
		},
		{
			ID:        "2",
			Name:      "Mike Chen",
			Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			Rating:    5,
			Text:      "Excellent quality toys and fast shipping. My cats absolutely love the feather wand - it's their new favorite!",
			PetName:   "Luna & Shadow (Maine Coons)",
			Verified:  true,
			CreatedAt: now,
		},
		{
			ID:        "3",
			Name:      "Emily Rodriguez",
			Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
			Rating:    5,
			Text:      "The hamster wheel is so quiet! My little Peanut runs on it all night without disturbing anyone.",
			PetName:   "Peanut (Syrian Hamster)",
			Verified:  true,
			CreatedAt: now,
		},
	}
}
