package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront-support/server/internal/catalog"
	"github.com/storefront-support/server/internal/session"
)

type stubEmbedder struct {
	vec   []float64
	err   error
	calls int
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vec, nil
}

func testCatalog(t *testing.T) *catalog.MemoryStore {
	t.Helper()
	store := catalog.NewMemoryStore()
	ctx := context.Background()
	products := []catalog.Product{
		{
			ID: "PROD-100", Name: "Budget Laptop", Category: "Electronics",
			Description: "Everyday laptop for school and office work",
			Keywords:    []string{"laptop", "computer"},
			Price:       549.99, Embedding: []float64{1, 0},
		},
		{
			ID: "PROD-101", Name: "ProBook Laptop 15", Category: "Electronics",
			Description: "High-performance laptop with Intel i7",
			Keywords:    []string{"laptop", "computer", "probook"},
			Price:       999.99, Embedding: []float64{0.9, 0.1},
		},
		{
			ID: "PROD-102", Name: "Wireless Headphones Pro", Category: "Electronics",
			Description: "Premium noise-canceling wireless audio",
			Keywords:    []string{"headphones", "audio"},
			Price:       199.99, Embedding: []float64{0, 1},
		},
		{
			ID: "PROD-103", Name: "Ergonomic Office Chair", Category: "Furniture",
			Description: "Premium chair with lumbar support",
			Keywords:    []string{"chair", "office"},
			Price:       449.99,
		},
	}
	for _, p := range products {
		require.NoError(t, store.PutProduct(ctx, p))
	}
	return store
}

func testTurn(t *testing.T) session.TurnContext {
	t.Helper()
	turn, err := session.NewTurnContext("conv-1", "CUST-001", "test")
	require.NoError(t, err)
	return turn
}

func TestSearchAppliesCategoryAndPriceConstraints(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), &stubEmbedder{vec: []float64{1, 0}}, sessions)

	results, err := engine.Search(context.Background(), testTurn(t), "laptops under $600", 0, 0)
	require.NoError(t, err)

	// both laptops pass the category filter, only the budget one the ceiling
	require.Len(t, results, 1)
	assert.Equal(t, "PROD-100", results[0].ID)
}

func TestSearchPriceFilterDegradesToCategoryList(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), &stubEmbedder{vec: []float64{1, 0}}, sessions)

	// ceiling below every laptop: the price filter would empty the result,
	// so the category-filtered list survives
	results, err := engine.Search(context.Background(), testTurn(t), "laptops under $300", 0, 0)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "PROD-100", results[0].ID)
	assert.Equal(t, "PROD-101", results[1].ID)
}

func TestSearchCategoryFilterDegradesToRanked(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), &stubEmbedder{vec: []float64{1, 0}}, sessions)

	// "microphone" extracts category keywords that match no product, so the
	// ranked candidates survive unfiltered
	results, err := engine.Search(context.Background(), testTurn(t), "microphone", 0, 0)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "PROD-100", results[0].ID)
}

func TestSearchExcludesProductsWithoutEmbeddings(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), &stubEmbedder{vec: []float64{1, 0}}, sessions)

	results, err := engine.Search(context.Background(), testTurn(t), "microphone", 0, 0)
	require.NoError(t, err)

	for _, c := range results {
		assert.NotEqual(t, "PROD-103", c.ID, "product without embedding entered the ranking pool")
	}
}

func TestSearchRespectsLimit(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), &stubEmbedder{vec: []float64{1, 0}}, sessions)

	results, err := engine.Search(context.Background(), testTurn(t), "microphone", 1, 0)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchEmbeddingFailureDegradesToEmpty(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	embedder := &stubEmbedder{err: &ProviderError{Kind: KindRateLimited, Err: errors.New("quota")}}
	engine := NewEngine(testCatalog(t), embedder, sessions)

	results, err := engine.Search(context.Background(), testTurn(t), "laptop", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchWithoutEmbedderReturnsEmpty(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), nil, sessions)

	assert.False(t, engine.SemanticEnabled())
	results, err := engine.Search(context.Background(), testTurn(t), "laptop", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchWritesProductMemory(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), &stubEmbedder{vec: []float64{1, 0}}, sessions)
	turn := testTurn(t)

	_, err := engine.Search(context.Background(), turn, "laptops under $300", 0, 0)
	require.NoError(t, err)

	mem, err := sessions.Load(context.Background(), turn.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, "PROD-100", mem.LastProductID)
	assert.Equal(t, "Budget Laptop", mem.LastProductName)
	assert.Equal(t, "laptops under $300", mem.LastQuery)
	assert.Equal(t, []string{"PROD-100", "PROD-101"}, mem.ProductIDs)
	assert.Empty(t, mem.DetailedIDs)
}

func TestSearchOverwritesPreviousMemory(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), &stubEmbedder{vec: []float64{1, 0}}, sessions)
	turn := testTurn(t)
	ctx := context.Background()

	_, err := engine.Search(ctx, turn, "laptops", 0, 0)
	require.NoError(t, err)

	// second search replaces the memory wholesale
	_, err = engine.KeywordSearch(ctx, turn, "headphones", 0)
	require.NoError(t, err)

	mem, err := sessions.Load(ctx, turn.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, "PROD-102", mem.LastProductID)
	assert.Equal(t, "headphones", mem.LastQuery)
	assert.Equal(t, []string{"PROD-102"}, mem.ProductIDs)
}

func TestKeywordSearchPluralNormalization(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), nil, sessions)
	ctx := context.Background()

	// plural query matches singular names
	results, err := engine.KeywordSearch(ctx, testTurn(t), "laptops", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// singular query also tries the plural form
	results, err = engine.KeywordSearch(ctx, testTurn(t), "headphone", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "PROD-102", results[0].ID)
}

func TestKeywordSearchExactKeywordMatch(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), nil, sessions)

	results, err := engine.KeywordSearch(context.Background(), testTurn(t), "probook", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "PROD-101", results[0].ID)
}

func TestKeywordSearchNoMatches(t *testing.T) {
	sessions := session.NewInMemoryStore(time.Minute)
	engine := NewEngine(testCatalog(t), nil, sessions)
	turn := testTurn(t)

	results, err := engine.KeywordSearch(context.Background(), turn, "blender", 0)
	require.NoError(t, err)
	assert.Empty(t, results)

	// an empty result never touches the memory
	_, err = sessions.Load(context.Background(), turn.ConversationID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}
