package catalog

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 15 * time.Minute

// Cached is a read-through redis layer in front of another Searcher. The
// backend is deterministic for a given query, so hits and misses are cached
// alike; ErrUnavailable is never cached. With a nil client every search goes
// straight to the backend.
type Cached struct {
	backend Searcher
	rdb     *redis.Client
	ttl     time.Duration
}

func NewCached(backend Searcher, rdb *redis.Client) *Cached {
	return &Cached{backend: backend, rdb: rdb, ttl: cacheTTL}
}

func (c *Cached) Search(ctx context.Context, query string) ([]Product, error) {
	if c.rdb == nil {
		return c.backend.Search(ctx, query)
	}

	key := cacheKey(query)
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var products []Product
		if jerr := json.Unmarshal([]byte(raw), &products); jerr == nil {
			return products, nil
		}
		log.Printf("catalog cache: corrupt entry %s, refetching", key)
	} else if err != redis.Nil {
		log.Printf("catalog cache: get %s: %v", key, err)
	}

	products, err := c.backend.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if buf, jerr := json.Marshal(products); jerr == nil {
		if serr := c.rdb.Set(ctx, key, buf, c.ttl).Err(); serr != nil {
			log.Printf("catalog cache: set %s: %v", key, serr)
		}
	}
	return products, nil
}

func cacheKey(query string) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(query))))
	return "catalog:search:" + hex.EncodeToString(sum[:])
}
