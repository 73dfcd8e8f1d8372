// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/domain/entity"
	"github.com/wmastover/labupops-lead-qualifier/internal/feature/places/usecase"
)

// CachingGeocoder decorates a Geocoder with Redis caching. Town coordinates
// never move, so repeated pipeline runs over the same town skip the Geocoding
// API entirely.
type CachingGeocoder struct {
	inner     usecase.Geocoder
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingGeocoder decorates a Geocoder with Redis caching.
// If ttl is 0, it defaults to 24 hours. If namespace is empty, it uses "geocode".
func NewCachingGeocoder(rdb *redis.Client, ttl time.Duration, inner usecase.Geocoder, namespace string) *CachingGeocoder {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "geocode"
	}
	return &CachingGeocoder{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Geocode resolves a town name, checking the cache first and falling back to
// the underlying geocoder.
func (c *CachingGeocoder) Geocode(ctx context.Context, town string) (entity.LatLng, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Geocode(ctx, town)
	}

	key := c.cacheKey(town)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var loc entity.LatLng
		if err := json.Unmarshal(b, &loc); err == nil {
			return loc, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the Geocoding API
	loc, err := c.inner.Geocode(ctx, town)
	if err != nil {
		return entity.LatLng{}, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(loc); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return loc, nil
}

// cacheKey generates a cache key for a town lookup.
func (c *CachingGeocoder) cacheKey(town string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(town))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return strings.ToLower(s)
}
