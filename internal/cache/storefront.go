// Package cache is a read-through redis cache in front of the public
// storefront queries. Redis being down or unconfigured degrades to the
// database silently; the cache is never authoritative.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"matajer.app/internal/modules/products"
)

const storefrontTTL = 5 * time.Minute

type StorefrontCache struct {
	rdb    *redis.Client // nil disables caching
	repo   *products.Repo
	logger *slog.Logger
}

func NewStorefrontCache(rdb *redis.Client, repo *products.Repo, logger *slog.Logger) *StorefrontCache {
	return &StorefrontCache{rdb: rdb, repo: repo, logger: logger}
}

// ListInStock serves the storefront product list, cached per store and page.
func (c *StorefrontCache) ListInStock(ctx context.Context, storeID string, limit, offset int) ([]products.Product, error) {
	if c.rdb == nil {
		return c.repo.ListInStock(ctx, storeID, limit, offset)
	}

	key := fmt.Sprintf("storefront:%s:products:%d:%d", storeID, limit, offset)

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var items []products.Product
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		c.logger.Warn("cache_unmarshal_failed", slog.String("key", key))
	} else if err != redis.Nil {
		c.logger.Warn("cache_get_failed", slog.String("key", key), slog.Any("err", err))
	}

	items, err := c.repo.ListInStock(ctx, storeID, limit, offset)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := c.rdb.Set(ctx, key, data, storefrontTTL).Err(); err != nil {
			c.logger.Warn("cache_set_failed", slog.String("key", key), slog.Any("err", err))
		}
	}
	return items, nil
}

// Invalidate drops every cached page of a store after a product mutation.
func (c *StorefrontCache) Invalidate(ctx context.Context, storeID string) {
	if c.rdb == nil {
		return
	}
	pattern := fmt.Sprintf("storefront:%s:products:*", storeID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("cache_del_failed", slog.String("key", iter.Val()), slog.Any("err", err))
		}
	}
}
