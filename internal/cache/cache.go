package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// Cache wraps a Redis client and provides a JSON get/set layer for resolver
// responses. Resolver output is slow-moving (weather, seasonal listings), so
// a short TTL keeps it fresh without hammering providers.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New constructs a Cache with a 10-minute TTL.
func New(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// Key builds a normalized cache key from a kind and identifier, e.g.
// Key("weather", "Goa") → "weather:goa".
func Key(kind, id string) string {
	return kind + ":" + strings.ToLower(strings.TrimSpace(id))
}

// Get unmarshals the cached value for key into dst. The bool reports whether
// the key was present; a miss is not an error.
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), dst); err != nil {
		return false, fmt.Errorf("unmarshaling cached value for %s: %w", key, err)
	}
	return true, nil
}

// Set stores val under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshaling value for %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete removes the cached entry for key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}
