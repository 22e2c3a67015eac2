// Package cache implements the revalidation-window store behind API reads.
// Entries live under endpoint-derived keys, carry resource tags, and are
// dropped wholesale by tag when an admin mutation touches the resource.
package cache

import (
	"context"
	"time"
)

// Revalidation windows. Catalog data changes often enough to warrant the
// short window; categories, tariffs and brand lists rarely move.
const (
	TTLCatalog = 60 * time.Second
	TTLConfig  = 300 * time.Second
)

// Resource tags attached to cached entries.
const (
	TagCategories = "categories"
	TagServices   = "services"
	TagPrices     = "prices"
	TagProducts   = "products"
	TagWorks      = "works"
	TagMasters    = "masters"
)

// Store is the cache backend. The in-process implementation is the default;
// the Redis one exists for multi-instance deployments where all replicas
// must see an invalidation at once.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string)
	DeleteByTag(ctx context.Context, tag string)
	Flush(ctx context.Context)
}
