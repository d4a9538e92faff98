package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gostore/admin/app/models"
)

const productCacheTTL = 5 * time.Minute

// ProductCache keeps each store's unfiltered product listing in
// Redis. It is best-effort: every failure falls back to the database
// and is only logged. A nil client disables caching entirely.
type ProductCache struct {
	client *redis.Client
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func (c *ProductCache) key(storeID string) string {
	return "products:" + storeID
}

func (c *ProductCache) Get(ctx context.Context, storeID string) ([]models.Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, c.key(storeID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("ProductCache.Get: %v", err)
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		log.Printf("ProductCache.Get: corrupt cache entry for store %s: %v", storeID, err)
		return nil, false
	}
	return products, true
}

func (c *ProductCache) Set(ctx context.Context, storeID string, products []models.Product) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(products)
	if err != nil {
		log.Printf("ProductCache.Set: %v", err)
		return
	}
	if err := c.client.Set(ctx, c.key(storeID), payload, productCacheTTL).Err(); err != nil {
		log.Printf("ProductCache.Set: %v", err)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, storeID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.key(storeID)).Err(); err != nil {
		log.Printf("ProductCache.Invalidate: %v", err)
	}
}
