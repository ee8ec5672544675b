package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Validate connectivity at startup
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

// VendorCache stores raw vendor API response bodies keyed by request URL,
// so re-running an import does not refetch barcodes already seen inside
// the TTL window. A nil *VendorCache is valid and disables caching, which
// keeps the adapters free of "is the cache configured" branches.
type VendorCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewVendorCache(rdb *redis.Client, ttl time.Duration) *VendorCache {
	if rdb == nil {
		return nil
	}
	return &VendorCache{rdb: rdb, ttl: ttl}
}

func (c *VendorCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, "vendor:"+key).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *VendorCache) Set(ctx context.Context, key string, body []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, "vendor:"+key, body, c.ttl).Err(); err != nil {
		// Cache writes are best effort; the fetch already succeeded.
		log.Warn().Err(err).Str("key", key).Msg("vendor cache write failed")
	}
}
