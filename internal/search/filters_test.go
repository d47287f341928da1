package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryMatchScore(t *testing.T) {
	c := Candidate{
		Name:        "ProBook Laptop 15",
		Description: "High-performance laptop with Intel i7",
		Category:    "Electronics",
	}

	// name and description both contain "laptop": 3 + 2
	assert.Equal(t, 5, categoryMatchScore(c, []string{"laptop"}))
	// no field contains "chair"
	assert.Equal(t, 0, categoryMatchScore(c, []string{"chair"}))
	// keywords accumulate across the set
	assert.Equal(t, 5, categoryMatchScore(c, []string{"laptop", "chair"}))
}

func TestCategoryMatchScoreCategoryField(t *testing.T) {
	c := Candidate{Name: "Throne X", Description: "Lumbar support", Category: "Chairs"}
	assert.Equal(t, 1, categoryMatchScore(c, []string{"chair"}))
}

func TestFilterByCategory(t *testing.T) {
	candidates := []Candidate{
		{ID: "A", Name: "Ergonomic Office Chair", Description: "Premium chair", Category: "Furniture", Similarity: 0.9},
		{ID: "B", Name: "Standing Desk Pro", Description: "Electric desk", Category: "Furniture", Similarity: 0.8},
		{ID: "C", Name: "Seat Cushion", Description: "For chairs", Category: "Accessories", Similarity: 0.95},
	}

	filtered := FilterByCategory(candidates, []string{"chair"})

	// A: name+description (5), C: description only (2), B dropped
	assert.Len(t, filtered, 2)
	assert.Equal(t, "A", filtered[0].ID)
	assert.Equal(t, 5, filtered[0].MatchScore)
	assert.Equal(t, "C", filtered[1].ID)
	assert.Equal(t, 2, filtered[1].MatchScore)
}

func TestFilterByCategoryTiesBreakOnSimilarity(t *testing.T) {
	candidates := []Candidate{
		{ID: "low", Name: "Chair One", Similarity: 0.2},
		{ID: "high", Name: "Chair Two", Similarity: 0.7},
	}
	filtered := FilterByCategory(candidates, []string{"chair"})
	assert.Equal(t, "high", filtered[0].ID)
	assert.Equal(t, "low", filtered[1].ID)
}

func TestFilterByCategoryNoKeywordsPassThrough(t *testing.T) {
	candidates := []Candidate{{ID: "A"}, {ID: "B"}}
	assert.Equal(t, candidates, FilterByCategory(candidates, nil))
}

func TestFilterByCategoryCanEmpty(t *testing.T) {
	candidates := []Candidate{{ID: "A", Name: "Desk Lamp"}}
	assert.Empty(t, FilterByCategory(candidates, []string{"chair"}))
}

func TestFilterByPrice(t *testing.T) {
	candidates := []Candidate{
		{ID: "cheap", Price: 99.99},
		{ID: "exact", Price: 200},
		{ID: "expensive", Price: 999.99},
	}

	filtered := FilterByPrice(candidates, 200)
	assert.Len(t, filtered, 2)
	assert.Equal(t, "cheap", filtered[0].ID)
	assert.Equal(t, "exact", filtered[1].ID)

	// no ceiling passes everything through
	assert.Equal(t, candidates, FilterByPrice(candidates, 0))
	assert.Equal(t, candidates, FilterByPrice(candidates, -1))

	// a ceiling below every price may empty the list
	assert.Empty(t, FilterByPrice(candidates, 10))
}
