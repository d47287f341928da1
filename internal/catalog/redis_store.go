package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	errx "github.com/storefront-support/server/internal/core/error"
	logx "github.com/storefront-support/server/pkg/logger"
)

const productIndexKey = "catalog:products"

// RedisStore keeps the catalog in Redis as JSON values with a set of product
// ids as the index. Embeddings are stored inline with the product document.
type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func productKey(id string) string   { return fmt.Sprintf("catalog:product:%s", id) }
func inventoryKey(id string) string { return fmt.Sprintf("catalog:inventory:%s", id) }
func reviewsKey(id string) string   { return fmt.Sprintf("catalog:reviews:%s", id) }

func (s *RedisStore) Products(ctx context.Context) ([]Product, error) {
	ids, err := s.rdb.SMembers(ctx, productIndexKey).Result()
	if err != nil {
		logx.Error().Err(err).Msg("failed to read product index")
		return nil, errx.WrapRedis(err)
	}

	products := make([]Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.Product(ctx, id)
		if err != nil {
			// index entry without a document; skip rather than fail the scan
			logx.Warn().Str("product_id", id).Err(err).Msg("indexed product missing")
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *RedisStore) Product(ctx context.Context, id string) (Product, error) {
	raw, err := s.rdb.Get(ctx, productKey(id)).Result()
	if err == redis.Nil {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, errx.WrapRedis(err)
	}

	var p Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Product{}, fmt.Errorf("unmarshal product %s: %w", id, err)
	}
	return p, nil
}

func (s *RedisStore) Inventory(ctx context.Context, id string) (Inventory, error) {
	raw, err := s.rdb.Get(ctx, inventoryKey(id)).Result()
	if err == redis.Nil {
		return Inventory{}, ErrNotFound
	}
	if err != nil {
		return Inventory{}, errx.WrapRedis(err)
	}

	var inv Inventory
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		return Inventory{}, fmt.Errorf("unmarshal inventory %s: %w", id, err)
	}
	return inv, nil
}

func (s *RedisStore) Reviews(ctx context.Context, id string) (ReviewSummary, error) {
	raw, err := s.rdb.Get(ctx, reviewsKey(id)).Result()
	if err == redis.Nil {
		return ReviewSummary{}, ErrNotFound
	}
	if err != nil {
		return ReviewSummary{}, errx.WrapRedis(err)
	}

	var rs ReviewSummary
	if err := json.Unmarshal([]byte(raw), &rs); err != nil {
		return ReviewSummary{}, fmt.Errorf("unmarshal reviews %s: %w", id, err)
	}
	return rs, nil
}

// PutProduct writes a product document and registers it in the index.
// Used by the seeding path; the search engine never writes.
func (s *RedisStore) PutProduct(ctx context.Context, p Product) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal product %s: %w", p.ID, err)
	}
	if err := s.rdb.Set(ctx, productKey(p.ID), b, 0).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	if err := s.rdb.SAdd(ctx, productIndexKey, p.ID).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

// PutInventory writes an inventory document.
func (s *RedisStore) PutInventory(ctx context.Context, inv Inventory) error {
	b, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("marshal inventory %s: %w", inv.ProductID, err)
	}
	if err := s.rdb.Set(ctx, inventoryKey(inv.ProductID), b, 0).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

// PutReviews writes a review summary document.
func (s *RedisStore) PutReviews(ctx context.Context, rs ReviewSummary) error {
	b, err := json.Marshal(rs)
	if err != nil {
		return fmt.Errorf("marshal reviews %s: %w", rs.ProductID, err)
	}
	if err := s.rdb.Set(ctx, reviewsKey(rs.ProductID), b, 0).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
