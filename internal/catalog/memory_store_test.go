package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSeedAndLookup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, Seed(ctx, store))

	products, err := store.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)

	// deterministic ordering by id
	assert.Equal(t, "PROD-001", products[0].ID)
	assert.Equal(t, "PROD-006", products[5].ID)

	product, err := store.Product(ctx, "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, "ProBook Laptop 15", product.Name)
	assert.Equal(t, 999.99, product.Price)
	// the demo seed carries no embeddings; they come from the offline job
	assert.False(t, product.HasEmbedding())

	_, err = store.Product(ctx, "PROD-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreInventory(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, Seed(ctx, store))

	inv, err := store.Inventory(ctx, "PROD-001")
	require.NoError(t, err)
	assert.Equal(t, 45, inv.TotalStock)
	assert.Equal(t, 20, inv.Warehouses["US-West"])

	_, err = store.Inventory(ctx, "PROD-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreReviews(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, Seed(ctx, store))

	rs, err := store.Reviews(ctx, "PROD-002")
	require.NoError(t, err)
	assert.Equal(t, 4.7, rs.AvgRating)
	assert.Equal(t, 512, rs.TotalReviews)
	assert.Len(t, rs.RecentReviews, 2)

	// seeded catalog has products without review summaries
	_, err = store.Reviews(ctx, "PROD-004")
	assert.ErrorIs(t, err, ErrNotFound)
}
