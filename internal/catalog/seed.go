package catalog

import "context"

// Writer is the seeding side of a catalog store.
type Writer interface {
	PutProduct(ctx context.Context, p Product) error
	PutInventory(ctx context.Context, inv Inventory) error
	PutReviews(ctx context.Context, rs ReviewSummary) error
}

// Seed loads the demo catalog into the given store. Embeddings are attached
// separately by the offline batch job; demo deployments without one fall back
// to keyword search.
func Seed(ctx context.Context, w Writer) error {
	for _, p := range SampleProducts() {
		if err := w.PutProduct(ctx, p); err != nil {
			return err
		}
	}
	for _, inv := range sampleInventory {
		if err := w.PutInventory(ctx, inv); err != nil {
			return err
		}
	}
	for _, rs := range sampleReviews {
		if err := w.PutReviews(ctx, rs); err != nil {
			return err
		}
	}
	return nil
}

// SampleProducts returns the demo catalog entries.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          "PROD-001",
			Name:        "ProBook Laptop 15",
			Price:       999.99,
			Category:    "Electronics",
			Description: "High-performance laptop with Intel i7",
			Keywords:    []string{"laptop", "computer", "notebook", "probook"},
			Warranty:    "2 years",
			Rating:      4.5,
		},
		{
			ID:          "PROD-002",
			Name:        "Wireless Headphones Pro",
			Price:       199.99,
			Category:    "Electronics",
			Description: "Premium noise-canceling wireless headphones",
			Keywords:    []string{"headphones", "audio", "wireless", "bluetooth"},
			Warranty:    "1 year",
			Rating:      4.7,
		},
		{
			ID:          "PROD-003",
			Name:        "Mechanical Gaming Keyboard",
			Price:       149.99,
			Category:    "Electronics",
			Description: "RGB mechanical keyboard with Cherry MX switches",
			Keywords:    []string{"keyboard", "gaming", "mechanical", "rgb"},
			Warranty:    "2 years",
			Rating:      4.6,
		},
		{
			ID:          "PROD-004",
			Name:        "Ergonomic Office Chair",
			Price:       449.99,
			Category:    "Furniture",
			Description: "Premium ergonomic chair with lumbar support",
			Keywords:    []string{"chair", "office", "ergonomic", "furniture"},
			Warranty:    "5 years",
			Rating:      4.4,
		},
		{
			ID:          "PROD-005",
			Name:        "Standing Desk Pro",
			Price:       599.99,
			Category:    "Furniture",
			Description: "Electric sit-stand desk with memory presets",
			Keywords:    []string{"desk", "standing", "office", "furniture"},
			Warranty:    "10 years",
			Rating:      4.8,
		},
		{
			ID:          "PROD-006",
			Name:        "ROG Gaming Laptop",
			Price:       1499.99,
			Category:    "Electronics",
			Description: "High-performance gaming laptop with RTX 4060 graphics card",
			Keywords:    []string{"laptop", "gaming", "computer", "notebook", "rog", "gaming laptop"},
			Warranty:    "2 years",
			Rating:      4.8,
		},
	}
}

var sampleInventory = []Inventory{
	{ProductID: "PROD-001", TotalStock: 45, Warehouses: map[string]int{"US-West": 20, "US-East": 15, "EU": 10}},
	{ProductID: "PROD-002", TotalStock: 120, Warehouses: map[string]int{"US-West": 50, "US-East": 40, "EU": 30}},
	{ProductID: "PROD-003", TotalStock: 78, Warehouses: map[string]int{"US-West": 30, "US-East": 28, "EU": 20}},
	{ProductID: "PROD-004", TotalStock: 23, Warehouses: map[string]int{"US-West": 10, "US-East": 8, "EU": 5}},
	{ProductID: "PROD-005", TotalStock: 15, Warehouses: map[string]int{"US-West": 8, "US-East": 5, "EU": 2}},
	{ProductID: "PROD-006", TotalStock: 32, Warehouses: map[string]int{"US-West": 15, "US-East": 12, "EU": 5}},
}

var sampleReviews = []ReviewSummary{
	{
		ProductID: "PROD-001", AvgRating: 4.5, TotalReviews: 234,
		RecentReviews: []Review{
			{User: "TechFan", Rating: 5, Comment: "Excellent performance!"},
			{User: "Student123", Rating: 4, Comment: "Great for coding."},
		},
	},
	{
		ProductID: "PROD-002", AvgRating: 4.7, TotalReviews: 512,
		RecentReviews: []Review{
			{User: "MusicLover", Rating: 5, Comment: "Best noise canceling!"},
			{User: "Commuter", Rating: 5, Comment: "Perfect for travel."},
		},
	},
	{
		ProductID: "PROD-006", AvgRating: 4.8, TotalReviews: 189,
		RecentReviews: []Review{
			{User: "GamerPro", Rating: 5, Comment: "Runs all games smoothly at high settings!"},
			{User: "Streamer99", Rating: 5, Comment: "Perfect for streaming and gaming!"},
		},
	},
}
