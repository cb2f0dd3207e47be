package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const productCacheTTL = time.Minute

// CachedProducts is a read-through cache in front of the product store.
// A nil redis client disables caching entirely; every miss or marshalling
// problem falls back to the store.
type CachedProducts struct {
	store *ProductStore
	rdb   *redis.Client
	log   *zap.Logger
}

func NewCachedProducts(store *ProductStore, rdb *redis.Client, log *zap.Logger) *CachedProducts {
	return &CachedProducts{store: store, rdb: rdb, log: log}
}

func (c *CachedProducts) GetProduct(ctx context.Context, id string) (*Product, error) {
	key := "product:" + id

	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
			var p Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := c.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.rdb != nil && p != nil {
		if data, err := json.Marshal(p); err == nil {
			if err := c.rdb.Set(ctx, key, data, productCacheTTL).Err(); err != nil {
				c.log.Warn("product cache write failed", zap.String("product_id", id), zap.Error(err))
			}
		}
	}

	return p, nil
}

// Invalidate drops a cached product, used after catalog writes.
func (c *CachedProducts) Invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, "product:"+id).Err(); err != nil {
		c.log.Warn("product cache invalidate failed", zap.String("product_id", id), zap.Error(err))
	}
}
