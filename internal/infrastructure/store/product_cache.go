package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/contract"
	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/mikiasgoitom/BazaarHub/internal/infrastructure/metrics"
)

// ProductCacheStore keeps products in redis keyed by id.
type ProductCacheStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewProductCacheStore(rdb redis.Cmdable, ttl time.Duration) *ProductCacheStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ProductCacheStore{rdb: rdb, ttl: ttl}
}

var _ contract.IProductCache = (*ProductCacheStore)(nil)

func productKey(id string) string { return fmt.Sprintf("product:id:%s", id) }

func (c *ProductCacheStore) GetProduct(ctx context.Context, id string) (*entity.Product, bool, error) {
	b, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheMisses.Inc()
			return nil, false, nil
		}
		return nil, false, err
	}
	var p entity.Product
	if err := json.Unmarshal(b, &p); err != nil {
		// treat a corrupt entry as a miss
		metrics.CacheMisses.Inc()
		return nil, false, nil
	}
	metrics.CacheHits.Inc()
	return &p, true, nil
}

func (c *ProductCacheStore) SetProduct(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, productKey(product.ID), data, c.ttl).Err()
}

func (c *ProductCacheStore) InvalidateProduct(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, productKey(id)).Err()
}
