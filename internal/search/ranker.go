package search

import (
	"math"
	"sort"

	"github.com/storefront-support/server/internal/catalog"
)

// Candidate is one scored search result. It exists only for the duration of
// a single search call.
type Candidate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"-"`
	Price       float64 `json:"price"`
	Similarity  float64 `json:"similarity"`
	MatchScore  int     `json:"match_score,omitempty"`
}

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched dimensions or a zero-magnitude vector yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankBySimilarity scores every catalog product that carries an embedding
// against the query vector and returns candidates in descending similarity
// order. Products without embeddings are excluded from the pool entirely.
func RankBySimilarity(products []catalog.Product, queryVec []float64) []Candidate {
	candidates := make([]Candidate, 0, len(products))
	for _, p := range products {
		if !p.HasEmbedding() {
			continue
		}
		candidates = append(candidates, Candidate{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Price:       p.Price,
			Similarity:  CosineSimilarity(queryVec, p.Embedding),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})
	return candidates
}
