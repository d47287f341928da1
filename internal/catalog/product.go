package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a catalog record does not exist.
var ErrNotFound = errors.New("catalog: not found")

// Product is a catalog entry. The embedding vector is computed offline by a
// batch job and attached once; every product in the catalog that carries one
// uses the same embedding model, so vector dimensions are uniform.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Keywords    []string  `json:"keywords,omitempty"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating,omitempty"`
	Warranty    string    `json:"warranty,omitempty"`
	Embedding   []float64 `json:"embedding,omitempty"`
}

// HasEmbedding reports whether the product can participate in vector search.
func (p Product) HasEmbedding() bool {
	return len(p.Embedding) > 0
}

// Inventory describes stock levels per warehouse for one product.
type Inventory struct {
	ProductID  string         `json:"product_id"`
	TotalStock int            `json:"total_stock"`
	Warehouses map[string]int `json:"warehouses,omitempty"`
}

// Review is a single customer review.
type Review struct {
	User    string  `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// ReviewSummary aggregates customer reviews for one product.
type ReviewSummary struct {
	ProductID     string   `json:"product_id"`
	AvgRating     float64  `json:"avg_rating"`
	TotalReviews  int      `json:"total_reviews"`
	RecentReviews []Review `json:"recent_reviews,omitempty"`
}

// Store is the read interface the search engine and product tools consume.
// The catalog is seeded externally and read-only from this side.
type Store interface {
	// Products returns every catalog entry, including embeddings.
	Products(ctx context.Context) ([]Product, error)

	// Product returns a single entry by id, or ErrNotFound.
	Product(ctx context.Context, id string) (Product, error)

	// Inventory returns stock levels for a product, or ErrNotFound.
	Inventory(ctx context.Context, id string) (Inventory, error)

	// Reviews returns the review summary for a product, or ErrNotFound.
	Reviews(ctx context.Context, id string) (ReviewSummary, error)
}
