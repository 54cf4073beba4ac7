package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Asfa64/DOC-ASFA/internal/api/metrics"
	"github.com/Asfa64/DOC-ASFA/internal/core/domain"
)

// DefaultCacheTTL is the button-list validity window, matching the 30
// minute cache the dashboard client originally kept.
const DefaultCacheTTL = 30 * time.Minute

const buttonsCacheKey = "cache:buttons"

// ButtonCache is the Redis-backed TTL cache of the launcher-button list.
// Staleness is purely time-based (the key expires) plus explicit
// invalidation after local mutations.
type ButtonCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewButtonCache wraps client with the given validity window. A
// non-positive ttl falls back to DefaultCacheTTL.
func NewButtonCache(client *redis.Client, ttl time.Duration) *ButtonCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ButtonCache{client: client, ttl: ttl}
}

// Get returns the cached list and true on a hit. An absent or expired key
// is a miss, not an error.
func (c *ButtonCache) Get(ctx context.Context) ([]domain.Button, bool, error) {
	data, err := c.client.Get(ctx, buttonsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ButtonCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var buttons []domain.Button
	if err := json.Unmarshal(data, &buttons); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		metrics.ButtonCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.ButtonCacheTotal.WithLabelValues("hit").Inc()
	return buttons, true, nil
}

// Set stores the list and restarts the TTL window.
func (c *ButtonCache) Set(ctx context.Context, buttons []domain.Button) error {
	data, err := json.Marshal(buttons)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, buttonsCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list so the next read refetches.
func (c *ButtonCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, buttonsCacheKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
